package config

import "github.com/Gabolonhez/Portfolio/internal/profile"

// MemoryPreferences is the preferences path that disables persistence.
const MemoryPreferences = ":memory:"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteRoot: ".",
		Output:   "dist/index.html",
		Data: DataConfig{
			PT: profile.DefaultPathPT,
			EN: profile.DefaultPathEN,
		},
		Fetch: FetchConfig{
			MaxAttempts: profile.DefaultMaxAttempts,
			BaseDelayMS: int(profile.DefaultBaseDelay.Milliseconds()),
			TimeoutMS:   10000,
		},
		Preferences: PreferencesConfig{Path: ".portfolio/preferences.db"},
		Server:      ServerConfig{Port: 8080},
		Identity:    profile.DefaultIdentity(),
	}
}
