package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Gabolonhez/Portfolio/internal/config"
	"github.com/Gabolonhez/Portfolio/internal/dom"
	"github.com/Gabolonhez/Portfolio/internal/i18n"
	"github.com/Gabolonhez/Portfolio/internal/prefs"
	"github.com/Gabolonhez/Portfolio/internal/profile"
	"github.com/Gabolonhez/Portfolio/internal/render"
	"github.com/Gabolonhez/Portfolio/internal/site"
	"github.com/Gabolonhez/Portfolio/internal/storage"
)

// loadConfig loads .env, then the config file and environment overrides,
// and validates the result.
func loadConfig() (*config.Config, error) {
	if err := config.LoadEnvFile(".env"); err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `portfolio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds a development logger with --verbose and a production
// logger limited to warnings otherwise.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}

// openPreferences opens the configured preference backend.
func openPreferences(cfg *config.Config) (*prefs.Store, io.Closer, error) {
	if cfg.Preferences.Path == config.MemoryPreferences {
		store, err := prefs.Open(storage.NewMemory())
		return store, io.NopCloser(nil), err
	}
	db, err := storage.OpenSQLite(cfg.Preferences.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening preferences: %w", err)
	}
	store, err := prefs.Open(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return store, db, nil
}

// newFetcher creates the profile fetcher for cfg.
func newFetcher(cfg *config.Config, logger *zap.Logger) (*profile.Fetcher, error) {
	base, err := cfg.ResolveBaseURL()
	if err != nil {
		return nil, err
	}
	f := profile.NewFetcher(base,
		profile.WithTimeout(cfg.Timeout()),
		profile.WithLogger(logger),
	)
	f.Paths = cfg.DataPaths()
	f.MaxAttempts = cfg.Fetch.MaxAttempts
	f.BaseDelay = cfg.BaseDelay()
	f.Identity = cfg.Identity
	return f, nil
}

// hostPage returns the host page source: the configured page, or the
// embedded default page.
func hostPage(cfg *config.Config, lang i18n.Lang) ([]byte, error) {
	if cfg.Page == "" {
		return site.DefaultPage(lang, cfg.Identity.Name)
	}
	path := cfg.Page
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.SiteRoot, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading host page: %w", err)
	}
	return data, nil
}

// loadPage parses the host page into a target set.
func loadPage(cfg *config.Config, lang i18n.Lang) (*dom.Page, error) {
	raw, err := hostPage(cfg, lang)
	if err != nil {
		return nil, err
	}
	return dom.ParsePage(bytes.NewReader(raw))
}

// writePage renders page to path, creating parent directories.
func writePage(page *dom.Page, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("serializing page: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// printReport summarizes one render on stderr.
func printReport(rep render.Report, path string) {
	fmt.Fprintf(os.Stderr, "Rendered %s to %s (%d sections)\n", rep.Lang, path, len(rep.Sections))
	if rep.Fallback {
		fmt.Fprintf(os.Stderr, "  Warning: using fallback profile: %v\n", rep.Cause)
	}
	for _, f := range rep.Failures {
		fmt.Fprintf(os.Stderr, "  Warning: %v\n", f)
	}
}
