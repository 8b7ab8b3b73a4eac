package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/Gabolonhez/Portfolio/internal/i18n"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nesting levels: PORTFOLIO_FETCH__MAX_ATTEMPTS sets fetch.max_attempts.
const EnvPrefix = "PORTFOLIO_"

// LoadEnvFile loads KEY=VALUE pairs from path into the process
// environment without overriding variables that are already set. A
// missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTFOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.SiteRoot == "" {
		return fmt.Errorf("site_root is required")
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil {
			return fmt.Errorf("invalid base_url %q: %w", c.BaseURL, err)
		}
		switch u.Scheme {
		case "http", "https", "file":
		default:
			return fmt.Errorf("invalid base_url %q: scheme must be http, https or file", c.BaseURL)
		}
	}
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}
	if c.Data.PT == "" || c.Data.EN == "" {
		return fmt.Errorf("data.pt and data.en are required")
	}

	if c.Fetch.MaxAttempts < 1 {
		return fmt.Errorf("fetch.max_attempts must be at least 1")
	}
	if c.Fetch.BaseDelayMS < 0 {
		return fmt.Errorf("fetch.base_delay_ms must be non-negative")
	}
	if c.Fetch.TimeoutMS <= 0 {
		return fmt.Errorf("fetch.timeout_ms must be positive")
	}

	if c.Preferences.Path == "" {
		return fmt.Errorf("preferences.path is required")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}

	if c.Identity.Name == "" {
		return fmt.Errorf("identity.name is required")
	}

	return nil
}

// ResolveBaseURL returns the URL profile documents are fetched from. When
// base_url is unset it is the site root as a file URL.
func (c *Config) ResolveBaseURL() (string, error) {
	if c.BaseURL != "" {
		return c.BaseURL, nil
	}
	abs, err := filepath.Abs(c.SiteRoot)
	if err != nil {
		return "", fmt.Errorf("resolving site_root: %w", err)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs) + "/"}
	return u.String(), nil
}

// DataPaths maps each language to its document path.
func (c *Config) DataPaths() map[i18n.Lang]string {
	return map[i18n.Lang]string{i18n.PT: c.Data.PT, i18n.EN: c.Data.EN}
}

// BaseDelay returns the fetch retry base delay.
func (c *Config) BaseDelay() time.Duration {
	return time.Duration(c.Fetch.BaseDelayMS) * time.Millisecond
}

// Timeout returns the per-attempt fetch timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutMS) * time.Millisecond
}

// OutputFor returns the output path for lang. With perLanguage set the
// language code is inserted before the extension, so dist/index.html
// becomes dist/index.en.html.
func (c *Config) OutputFor(lang i18n.Lang, perLanguage bool) string {
	if !perLanguage {
		return c.Output
	}
	ext := filepath.Ext(c.Output)
	return strings.TrimSuffix(c.Output, ext) + "." + string(lang) + ext
}
