package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simcoder/strapi-cms-mcp/pkg/rest"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{EnvURL, EnvToken, EnvTimeout, EnvLogLevel} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)

	t.Setenv(EnvURL, "http://localhost:1337")
	t.Setenv(EnvToken, "secret")
	t.Setenv(EnvTimeout, "5s")

	cfg, err := Load("", "")

	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://localhost:1337", cfg.URL)
	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", "")

	require.NoError(t, err)
	assert.Equal(t, rest.DefaultTimeout, cfg.Timeout)
	assert.Error(t, cfg.Validate())
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	// godotenv does not override variables that are already set, so unset them.
	for _, key := range []string{EnvURL, EnvToken} {
		require.NoError(t, os.Unsetenv(key))
	}

	t.Cleanup(func() {
		os.Unsetenv(EnvURL)
		os.Unsetenv(EnvToken)
	})

	path := writeFile(t, "test.env", "STRAPI_API_URL=https://cms.example.com\nSTRAPI_API_TOKEN=from-file\n")

	cfg, err := Load(path, "")

	require.NoError(t, err)
	assert.Equal(t, "https://cms.example.com", cfg.URL)
	assert.Equal(t, "from-file", cfg.Token)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"), "")
	assert.Error(t, err)
}

func TestLoad_ConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "json",
			file:    "config.json",
			content: `{"url":"http://file:1337","token":"file-token","timeout":"10s","headers":{"X-Tenant":"a"},"logLevel":"debug"}`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: "url: http://file:1337\n" +
				"token: file-token\n" +
				"timeout: 10s\n" +
				"headers:\n" +
				"  X-Tenant: a\n" +
				"logLevel: debug\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			cfg, err := Load("", writeFile(t, tt.file, tt.content))

			require.NoError(t, err)
			assert.Equal(t, "http://file:1337", cfg.URL)
			assert.Equal(t, "file-token", cfg.Token)
			assert.Equal(t, 10*time.Second, cfg.Timeout)
			assert.Equal(t, map[string]string{"X-Tenant": "a"}, cfg.Headers)
			assert.Equal(t, "debug", cfg.LogLevel)
		})
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)

	t.Setenv(EnvToken, "env-token")

	cfg, err := Load("", writeFile(t, "config.yaml", "url: http://file:1337\ntoken: file-token\n"))

	require.NoError(t, err)
	assert.Equal(t, "http://file:1337", cfg.URL)
	assert.Equal(t, "env-token", cfg.Token)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)

	_, err := Load("", writeFile(t, "config.yaml", "url: [unterminated\n"))
	assert.Error(t, err)

	_, err = Load("", writeFile(t, "config.yaml", "timeout: soon\n"))
	assert.Error(t, err)

	t.Setenv(EnvTimeout, "later")

	_, err = Load("", "")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "complete", cfg: Config{URL: "http://x", Token: "t"}},
		{name: "missing url", cfg: Config{Token: "t"}, wantErr: "STRAPI_API_URL required"},
		{name: "missing token", cfg: Config{URL: "http://x"}, wantErr: "STRAPI_API_TOKEN required"},
		{name: "missing both", cfg: Config{}, wantErr: "STRAPI_API_URL and STRAPI_API_TOKEN required"},
		{name: "negative timeout", cfg: Config{URL: "http://x", Token: "t", Timeout: -time.Second}, wantErr: "timeout must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
