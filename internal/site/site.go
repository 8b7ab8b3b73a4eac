// Package site ties the preference store to the renderer: it runs the
// initial load, handles the language and theme toggles and keeps the
// toggle indicators on the page in sync with the stored preferences.
package site

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Gabolonhez/Portfolio/internal/dom"
	"github.com/Gabolonhez/Portfolio/internal/i18n"
	"github.com/Gabolonhez/Portfolio/internal/prefs"
	"github.com/Gabolonhez/Portfolio/internal/render"
)

// Theme toggle icons. The icon shows the theme a click switches to.
const (
	DarkModeIcon  = "./assets/images/dark-mode.png"
	LightModeIcon = "./assets/images/light-mode.png"
)

// Site is one rendered page with its preferences.
type Site struct {
	prefs   *prefs.Store
	orch    *render.Orchestrator
	targets dom.Targets
	logger  *zap.Logger
}

// New creates a Site and binds the theme and language indicators of t to
// store. The indicators are applied immediately.
func New(store *prefs.Store, orch *render.Orchestrator, t dom.Targets, logger *zap.Logger) *Site {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Site{prefs: store, orch: orch, targets: t, logger: logger}
	store.Bind(prefs.Theme, s.applyTheme)
	store.Bind(prefs.Language, s.applyLanguage)
	return s
}

// Start renders the page in the stored language.
func (s *Site) Start(ctx context.Context) (render.Report, error) {
	return s.orch.Load(ctx, s.prefs.Language())
}

// SetLanguage switches the page to lang. When lang is already active
// nothing is fetched or rendered and changed is false.
func (s *Site) SetLanguage(ctx context.Context, lang i18n.Lang) (rep render.Report, changed bool, err error) {
	if _, err := i18n.Parse(string(lang)); err != nil {
		return rep, false, err
	}
	if s.prefs.Language() == lang {
		return rep, false, nil
	}
	if err := s.prefs.Set(prefs.Language, string(lang)); err != nil {
		return rep, false, fmt.Errorf("switching language: %w", err)
	}
	s.logger.Info("language switched", zap.String("lang", string(lang)))
	rep, err = s.orch.Load(ctx, lang)
	return rep, true, err
}

// ToggleTheme flips between the dark and light themes and returns the new
// theme. It does not re-render content.
func (s *Site) ToggleTheme() (string, error) {
	theme, err := s.prefs.Toggle(prefs.Theme)
	if err != nil {
		return "", fmt.Errorf("toggling theme: %w", err)
	}
	return theme, nil
}

func (s *Site) applyTheme(theme string) {
	body := s.targets.Body()
	body.RemoveClass("dark-mode")
	body.RemoveClass("light-mode")
	body.AddClass(theme + "-mode")

	icon := DarkModeIcon
	if theme == prefs.Dark {
		icon = LightModeIcon
	}
	dom.WithNode(s.targets, render.IDThemeToggle, func(n dom.Node) { n.SetAttr("src", icon) })
}

func (s *Site) applyLanguage(lang string) {
	s.targets.Body().SetAttr("lang", lang)
	buttons := map[string]string{
		render.IDButtonPT: string(i18n.PT),
		render.IDButtonEN: string(i18n.EN),
	}
	for id, code := range buttons {
		active := code == lang
		dom.WithNode(s.targets, id, func(n dom.Node) {
			n.SetAttr("aria-pressed", fmt.Sprint(active))
			if active {
				n.AddClass("active")
			} else {
				n.RemoveClass("active")
			}
		})
	}
}
