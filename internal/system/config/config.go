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

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

const (
	// PageSourceTypeWikipedia selects the MediaWiki API page source.
	PageSourceTypeWikipedia = "wikipedia"
	// PageSourceTypeDatabase selects the SQL backed page source.
	PageSourceTypeDatabase = "database"
)

const (
	defaultServerHostname       = "localhost"
	defaultServerPort           = 4949
	defaultMaxConnections       = 32
	defaultRequestTimeout       = 600
	defaultManagementPort       = 8090
	defaultPageCacheSize        = 256
	defaultPageCacheTTL         = 12 * 3600
	defaultLinkCacheSize        = 4096
	defaultLinkCacheTTL         = 3600
	defaultAnalyticsWindow      = 30
	defaultPathTimeout          = 300
	defaultWikipediaEndpoint    = "https://en.wikipedia.org/w/api.php"
	defaultWikipediaTimeout     = 30
	defaultWikipediaRateLimit   = 10
	defaultWikipediaBurst       = 5
	defaultWikipediaUserAgent   = "WikiMediator/1.0 (https://github.com/asgardeo/wikimediator)"
	defaultWikipediaSearchLimit = 500
)

// ErrInvalidConfig is returned when a loaded configuration violates a constraint.
var ErrInvalidConfig = errors.New("invalid configuration")

// ServerConfig holds the request server configuration details.
type ServerConfig struct {
	Hostname       string    `yaml:"hostname"`
	Port           int       `yaml:"port"`
	MaxConnections int       `yaml:"max_connections"`
	RequestTimeout int       `yaml:"request_timeout"`
	TLS            TLSConfig `yaml:"tls"`
}

// TLSConfig holds the certificate used to serve the request listener over TLS. Paths are
// relative to the server home directory.
type TLSConfig struct {
	Enabled  bool   `yaml:"enabled"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// ManagementConfig holds the management HTTP server configuration details.
type ManagementConfig struct {
	Disabled       bool     `yaml:"disabled"`
	Hostname       string   `yaml:"hostname"`
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// CacheProperty holds the configuration of an individual cache. TTL is in seconds.
type CacheProperty struct {
	Disabled bool `yaml:"disabled"`
	Size     int  `yaml:"size"`
	TTL      int  `yaml:"ttl"`
}

// CacheConfig holds the configuration of the page and link caches.
type CacheConfig struct {
	Page  CacheProperty `yaml:"page"`
	Links CacheProperty `yaml:"links"`
}

// AnalyticsConfig holds the analytics configuration details. Window is in seconds.
type AnalyticsConfig struct {
	Window int `yaml:"window"`
}

// GraphConfig holds the graph exploration configuration details. PathTimeout is in seconds.
type GraphConfig struct {
	PathTimeout int `yaml:"path_timeout"`
}

// WikipediaConfig holds the MediaWiki API client configuration details.
type WikipediaConfig struct {
	Endpoint       string  `yaml:"endpoint"`
	UserAgent      string  `yaml:"user_agent"`
	Timeout        int     `yaml:"timeout"`
	RateLimit      float64 `yaml:"rate_limit"`
	Burst          int     `yaml:"burst"`
	MaxSearchLimit int     `yaml:"max_search_limit"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// PageSourceConfig holds the configuration of the upstream page source.
type PageSourceConfig struct {
	Type      string          `yaml:"type"`
	Wikipedia WikipediaConfig `yaml:"wikipedia"`
	Database  DataSource      `yaml:"database"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Management ManagementConfig `yaml:"management"`
	Cache      CacheConfig      `yaml:"cache"`
	Analytics  AnalyticsConfig  `yaml:"analytics"`
	Graph      GraphConfig      `yaml:"graph"`
	PageSource PageSourceConfig `yaml:"page_source"`
}

// LoadConfig loads the configurations from the specified YAML file, applies defaults and validates them.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills every unset value with its default.
func (c *Config) ApplyDefaults() {
	if c.Server.Hostname == "" {
		c.Server.Hostname = defaultServerHostname
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultServerPort
	}
	if c.Server.MaxConnections == 0 {
		c.Server.MaxConnections = defaultMaxConnections
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}

	if c.Management.Hostname == "" {
		c.Management.Hostname = defaultServerHostname
	}
	if c.Management.Port == 0 {
		c.Management.Port = defaultManagementPort
	}

	applyCacheDefaults(&c.Cache.Page, defaultPageCacheSize, defaultPageCacheTTL)
	applyCacheDefaults(&c.Cache.Links, defaultLinkCacheSize, defaultLinkCacheTTL)

	if c.Analytics.Window == 0 {
		c.Analytics.Window = defaultAnalyticsWindow
	}
	if c.Graph.PathTimeout == 0 {
		c.Graph.PathTimeout = defaultPathTimeout
	}

	if c.PageSource.Type == "" {
		c.PageSource.Type = PageSourceTypeWikipedia
	}
	wiki := &c.PageSource.Wikipedia
	if wiki.Endpoint == "" {
		wiki.Endpoint = defaultWikipediaEndpoint
	}
	if wiki.UserAgent == "" {
		wiki.UserAgent = defaultWikipediaUserAgent
	}
	if wiki.Timeout == 0 {
		wiki.Timeout = defaultWikipediaTimeout
	}
	if wiki.RateLimit == 0 {
		wiki.RateLimit = defaultWikipediaRateLimit
	}
	if wiki.Burst == 0 {
		wiki.Burst = defaultWikipediaBurst
	}
	if wiki.MaxSearchLimit == 0 {
		wiki.MaxSearchLimit = defaultWikipediaSearchLimit
	}
}

func applyCacheDefaults(property *CacheProperty, size, ttl int) {
	if property.Size == 0 {
		property.Size = size
	}
	if property.TTL == 0 {
		property.TTL = ttl
	}
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d is out of range", ErrInvalidConfig, c.Server.Port)
	}
	if c.Server.MaxConnections < 0 {
		return fmt.Errorf("%w: max_connections must be positive", ErrInvalidConfig)
	}
	if c.Server.TLS.Enabled && (c.Server.TLS.CertFile == "" || c.Server.TLS.KeyFile == "") {
		return fmt.Errorf("%w: tls requires cert_file and key_file", ErrInvalidConfig)
	}
	if c.Management.Port < 0 || c.Management.Port > 65535 {
		return fmt.Errorf("%w: management port %d is out of range", ErrInvalidConfig, c.Management.Port)
	}
	for name, property := range map[string]CacheProperty{"page": c.Cache.Page, "links": c.Cache.Links} {
		if property.Disabled {
			continue
		}
		if property.Size < 0 || property.TTL < 0 {
			return fmt.Errorf("%w: %s cache size and ttl must be positive", ErrInvalidConfig, name)
		}
	}
	if c.Analytics.Window < 0 {
		return fmt.Errorf("%w: analytics window must be positive", ErrInvalidConfig)
	}
	if c.Graph.PathTimeout < 0 {
		return fmt.Errorf("%w: path_timeout must be positive", ErrInvalidConfig)
	}

	switch c.PageSource.Type {
	case PageSourceTypeWikipedia:
		if c.PageSource.Wikipedia.RateLimit < 0 || c.PageSource.Wikipedia.Burst < 0 {
			return fmt.Errorf("%w: wikipedia rate_limit and burst must be positive", ErrInvalidConfig)
		}
	case PageSourceTypeDatabase:
		if c.PageSource.Database.Type == "" {
			return fmt.Errorf("%w: database page source requires a data source type", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown page source type %q", ErrInvalidConfig, c.PageSource.Type)
	}
	return nil
}
