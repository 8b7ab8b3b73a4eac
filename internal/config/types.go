package config

import "github.com/Gabolonhez/Portfolio/internal/profile"

// Config is the top-level portfolio configuration, corresponding to
// .portfolio.yml.
type Config struct {
	SiteRoot    string            `yaml:"site_root" koanf:"site_root"`
	BaseURL     string            `yaml:"base_url" koanf:"base_url"`
	Page        string            `yaml:"page" koanf:"page"`
	Output      string            `yaml:"output" koanf:"output"`
	Data        DataConfig        `yaml:"data" koanf:"data"`
	Fetch       FetchConfig       `yaml:"fetch" koanf:"fetch"`
	Preferences PreferencesConfig `yaml:"preferences" koanf:"preferences"`
	Render      RenderConfig      `yaml:"render" koanf:"render"`
	Server      ServerConfig      `yaml:"server" koanf:"server"`
	Identity    profile.Identity  `yaml:"identity" koanf:"identity"`
}

// DataConfig holds the per-language profile document paths, relative to
// the base URL.
type DataConfig struct {
	PT string `yaml:"pt" koanf:"pt"`
	EN string `yaml:"en" koanf:"en"`
}

// FetchConfig controls the profile fetch retry loop.
type FetchConfig struct {
	MaxAttempts int `yaml:"max_attempts" koanf:"max_attempts"`
	BaseDelayMS int `yaml:"base_delay_ms" koanf:"base_delay_ms"`
	TimeoutMS   int `yaml:"timeout_ms" koanf:"timeout_ms"`
}

// PreferencesConfig locates the preference database. The special path
// ":memory:" keeps preferences for the lifetime of the process only.
type PreferencesConfig struct {
	Path string `yaml:"path" koanf:"path"`
}

// RenderConfig holds renderer options.
type RenderConfig struct {
	MarkdownDescriptions bool `yaml:"markdown_descriptions" koanf:"markdown_descriptions"`
}

// ServerConfig holds dev server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
