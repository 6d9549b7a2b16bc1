/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package config

import (
	"fmt"
	"path/filepath"
	"sync"
)

// ServerRuntime holds the configuration the server was started with and the home directory that
// relative file paths in it are resolved against.
type ServerRuntime struct {
	ServerHome string `yaml:"server_home"`
	Config     Config `yaml:"config"`
}

var (
	runtimeConfig *ServerRuntime
	once          sync.Once
)

// InitializeServerRuntime records the server home, made absolute, and the loaded configuration.
// Only the first call takes effect.
func InitializeServerRuntime(serverHome string, config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: configuration is required", ErrInvalidConfig)
	}
	if serverHome == "" {
		return fmt.Errorf("%w: server home is required", ErrInvalidConfig)
	}
	home, err := filepath.Abs(serverHome)
	if err != nil {
		return fmt.Errorf("failed to resolve server home %q: %w", serverHome, err)
	}

	once.Do(func() {
		runtimeConfig = &ServerRuntime{
			ServerHome: home,
			Config:     *config,
		}
	})
	return nil
}

// GetServerRuntime returns the ServerRuntime configuration.
func GetServerRuntime() *ServerRuntime {
	if runtimeConfig == nil {
		panic("ServerRuntime is not initialized")
	}
	return runtimeConfig
}

// ResolvePath returns file unchanged when it is empty or absolute, and joined to home otherwise.
func ResolvePath(home, file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(home, file)
}

// ResetServerRuntime resets the ServerRuntime.
// This should only be used in tests to reset the singleton state.
func ResetServerRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
