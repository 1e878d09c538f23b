package config

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/simcoder/strapi-cms-mcp/pkg/rest"
)

const (
	EnvURL      = "STRAPI_API_URL"
	EnvToken    = "STRAPI_API_TOKEN"
	EnvTimeout  = "STRAPI_TIMEOUT"
	EnvLogLevel = "STRAPI_LOG_LEVEL"
)

type Config struct {
	URL   string
	Token string

	Timeout time.Duration
	Headers map[string]string

	LogLevel string
}

// File is the on-disk shape of a config file.
type File struct {
	URL   string `json:"url" yaml:"url"`
	Token string `json:"token" yaml:"token"`

	Timeout string            `json:"timeout" yaml:"timeout"`
	Headers map[string]string `json:"headers" yaml:"headers"`

	LogLevel string `json:"logLevel" yaml:"logLevel"`
}

func Default() *Config {
	return &Config{
		Timeout:  rest.DefaultTimeout,
		LogLevel: "info",
	}
}

// Load builds the configuration from an optional .env file, an optional config
// file and the process environment, in increasing order of precedence.
func Load(envFile, path string) (*Config, error) {
	cfg := Default()

	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	if path != "" {
		f, err := Parse(path)

		if err != nil {
			return nil, err
		}

		if err := cfg.apply(f); err != nil {
			return nil, errors.Wrapf(err, "config file %s", path)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, errors.Wrap(err, "environment")
	}

	return cfg, nil
}

func Parse(path string) (*File, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	var file File

	if err := json.Unmarshal(data, &file); err == nil {
		return &file, nil
	}

	file = File{}

	if err := yaml.Unmarshal(data, &file); err == nil {
		return &file, nil
	}

	return nil, errors.Newf("failed to parse config file %s", path)
}

func (c *Config) Validate() error {
	var missing []string

	if c.URL == "" {
		missing = append(missing, EnvURL)
	}

	if c.Token == "" {
		missing = append(missing, EnvToken)
	}

	if len(missing) > 0 {
		return errors.Newf("%s required", strings.Join(missing, " and "))
	}

	if c.Timeout < 0 {
		return errors.Newf("timeout must not be negative (got %s)", c.Timeout)
	}

	return nil
}

func loadEnvFile(envFile string) error {
	if envFile != "" {
		return errors.Wrapf(godotenv.Load(envFile), "loading %s", envFile)
	}

	if _, err := os.Stat(".env"); err == nil {
		return errors.Wrap(godotenv.Load(".env"), "loading .env")
	}

	return nil
}

func (c *Config) apply(f *File) error {
	if f.URL != "" {
		c.URL = f.URL
	}

	if f.Token != "" {
		c.Token = f.Token
	}

	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)

		if err != nil {
			return errors.Wrap(err, "timeout")
		}

		c.Timeout = d
	}

	if len(f.Headers) > 0 {
		c.Headers = f.Headers
	}

	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}

	return nil
}

func (c *Config) applyEnv() error {
	return c.apply(&File{
		URL:   os.Getenv(EnvURL),
		Token: os.Getenv(EnvToken),

		Timeout: os.Getenv(EnvTimeout),

		LogLevel: os.Getenv(EnvLogLevel),
	})
}
