package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-sdk/internal/infrastructure/config"
)

// isolate runs the test from an empty directory so no config.yaml or .env
// from the repository is picked up
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	for _, name := range []string{"ACCOUNT_TOKEN", "AGENT_TOKEN", "ST_API_AGENT_TOKEN", "ST_API_ACCOUNT_TOKEN", "ST_API_BASE_URL", "ST_LOGGING_LEVEL"} {
		t.Setenv(name, "")
	}
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "https://api.spacetraders.io/v2", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Debug())
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "localhost:9090", cfg.Metrics.Address())
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Empty(t, cfg.API.AgentToken)
}

func TestLoadConfig_FromFile(t *testing.T) {
	// Arrange
	dir := isolate(t)
	path := writeFile(t, dir, "spacetraders.yaml", `
api:
  base_url: http://localhost:8080/v2
  agent_token: file-token
  timeout: 5s
logging:
  level: debug
metrics:
  enabled: true
  port: 9191
`)

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/v2", cfg.API.BaseURL)
	assert.Equal(t, "file-token", cfg.API.AgentToken)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.Logging.Debug())
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9191, cfg.Metrics.Port)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "spacetraders.yaml", "api:\n  agent_token: file-token\n")
	t.Setenv("ST_API_AGENT_TOKEN", "env-token")
	t.Setenv("ST_API_TIMEOUT", "45s")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.API.AgentToken)
	assert.Equal(t, 45*time.Second, cfg.API.Timeout)
}

func TestLoadConfig_UnprefixedTokens(t *testing.T) {
	isolate(t)
	t.Setenv("ACCOUNT_TOKEN", "account")
	t.Setenv("AGENT_TOKEN", "agent")

	cfg, err := config.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "account", cfg.API.AccountToken)
	assert.Equal(t, "agent", cfg.API.AgentToken)
}

func TestLoadConfig_PrefixedTokenWins(t *testing.T) {
	isolate(t)
	t.Setenv("AGENT_TOKEN", "plain")
	t.Setenv("ST_API_AGENT_TOKEN", "prefixed")

	cfg, err := config.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.API.AgentToken)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, ".env", "AGENT_TOKEN=from-dotenv\n")
	t.Cleanup(func() { _ = os.Unsetenv("AGENT_TOKEN") })
	require.NoError(t, os.Unsetenv("AGENT_TOKEN"))

	cfg, err := config.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.API.AgentToken)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := config.LoadConfig(filepath.Join(dir, "missing.yaml"))

	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad base url", "api:\n  base_url: not a url\n"},
		{"bad log level", "logging:\n  level: loud\n"},
		{"privileged metrics port", "metrics:\n  port: 80\n"},
		{"relative metrics path", "metrics:\n  path: metrics\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := writeFile(t, dir, "spacetraders.yaml", tt.content)

			_, err := config.LoadConfig(path)

			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

func TestLoadConfigOrDefault_FallsBack(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "spacetraders.yaml", "logging:\n  level: loud\n")

	cfg := config.LoadConfigOrDefault(path)

	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestValidateConfig_HidesTokens(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.API.BaseURL = "::"
	cfg.API.AgentToken = "secret"

	err := config.ValidateConfig(cfg)

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret")
	assert.Contains(t, err.Error(), "Config.API.BaseURL")
}
