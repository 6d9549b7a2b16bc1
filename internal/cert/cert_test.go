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

package cert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/wikimediator/internal/system/config"
)

type CertTestSuite struct {
	suite.Suite
	home string
}

func TestCertSuite(t *testing.T) {
	suite.Run(t, new(CertTestSuite))
}

func (suite *CertTestSuite) SetupTest() {
	suite.home = suite.T().TempDir()
}

func (suite *CertTestSuite) writeKeyPair(certFile, keyFile string) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	suite.Require().NoError(err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		DNSNames:     []string{"localhost"},
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	suite.Require().NoError(err)
	keyDER, err := x509.MarshalECPrivateKey(key)
	suite.Require().NoError(err)

	suite.Require().NoError(os.MkdirAll(filepath.Dir(filepath.Join(suite.home, certFile)), 0o755))
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.home, certFile),
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.home, keyFile),
		pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}), 0o600))
}

func (suite *CertTestSuite) TestGetTLSConfig() {
	suite.writeKeyPair("repository/resources/security/server.cert", "repository/resources/security/server.key")

	tlsConfig, err := GetTLSConfig(config.TLSConfig{
		Enabled:  true,
		CertFile: "repository/resources/security/server.cert",
		KeyFile:  "repository/resources/security/server.key",
	}, suite.home)

	suite.Require().NoError(err)
	assert.Len(suite.T(), tlsConfig.Certificates, 1)
}

func (suite *CertTestSuite) TestMissingFiles() {
	_, err := GetTLSConfig(config.TLSConfig{CertFile: "missing.cert", KeyFile: "missing.key"}, suite.home)

	assert.ErrorIs(suite.T(), err, ErrCertificateNotFound)
}

func (suite *CertTestSuite) TestInvalidKeyPair() {
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.home, "bad.cert"), []byte("not a cert"), 0o600))
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.home, "bad.key"), []byte("not a key"), 0o600))

	_, err := GetTLSConfig(config.TLSConfig{CertFile: "bad.cert", KeyFile: "bad.key"}, suite.home)

	assert.Error(suite.T(), err)
	assert.NotErrorIs(suite.T(), err, ErrCertificateNotFound)
}
