package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYML = `api:
  environment: "test"
  base_url: "localhost:9999"
  port: "9999"
  jwt_signing_key: "test-key"
  allowed_cors_domains: "localhost, example.com"

gin:
  mode: "test"

postgres:
  host: "localhost"
  port: "5432"
  user: "postgres"
  password: "postgres"
  db: "raffles_test"
  ssl_mode: "disable"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYML), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeTestConfig(t))

	require.NoError(t, err)
	assert.Equal(t, "test", conf.API.Environment)
	assert.Equal(t, "9999", conf.API.Port)
	assert.Equal(t, "test-key", conf.API.JWTSigningKey)
	assert.Equal(t, "raffles_test", conf.Postgres.DB)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

	assert.Error(t, err)
}

func TestParseCORSDomains(t *testing.T) {
	conf := &APIConfig{AllowedCORSDomains: "localhost, example.com"}

	assert.Equal(t, []string{"localhost", "example.com"}, conf.ParseCORSDomains())
}
