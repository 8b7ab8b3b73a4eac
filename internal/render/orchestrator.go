package render

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gabolonhez/Portfolio/internal/dom"
	"github.com/Gabolonhez/Portfolio/internal/i18n"
	"github.com/Gabolonhez/Portfolio/internal/profile"
)

// ErrStale is returned by Load when a newer Load started before this one
// finished fetching. Its document is discarded.
var ErrStale = errors.New("render: superseded by a newer load")

// Source resolves the profile document for a language.
// Implemented by profile.Fetcher.
type Source interface {
	Fetch(ctx context.Context, lang i18n.Lang) (profile.Result, error)
}

// SectionError records the failure of one section.
type SectionError struct {
	Section string
	Err     error
}

func (e *SectionError) Error() string { return fmt.Sprintf("section %s: %v", e.Section, e.Err) }
func (e *SectionError) Unwrap() error { return e.Err }

// Report describes one completed Load.
type Report struct {
	ID       string
	Lang     i18n.Lang
	Fallback bool
	Cause    error // fetch failure behind a fallback
	Sections []string
	Failures []*SectionError
}

// Err joins the section failures, or returns nil.
func (r Report) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// Orchestrator sequences loading state, fetch, section renders and the
// error banner for one target set.
type Orchestrator struct {
	source   Source
	targets  dom.Targets
	format   *Formatter
	sections []Section
	logger   *zap.Logger

	// OnSection, when set, is called after each section with its position.
	OnSection func(done, total int, name string)

	gen atomic.Uint64
	mu  sync.Mutex
}

// NewOrchestrator creates an Orchestrator rendering into t.
func NewOrchestrator(src Source, t dom.Targets, f *Formatter, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if f == nil {
		f = NewFormatter(false)
	}
	return &Orchestrator{
		source:   src,
		targets:  t,
		format:   f,
		sections: Sections,
		logger:   logger,
	}
}

// Load fetches the document for lang and renders every section. It can be
// called repeatedly; when calls overlap, only the most recently started one
// renders and the others return ErrStale. A section failure does not stop
// the remaining sections; failures are reported in the Report and shown in
// an error banner.
func (o *Orchestrator) Load(ctx context.Context, lang i18n.Lang) (Report, error) {
	gen := o.gen.Add(1)
	rep := Report{ID: uuid.NewString(), Lang: lang}
	log := o.logger.With(zap.String("run", rep.ID), zap.String("lang", string(lang)))

	o.mu.Lock()
	o.markLoading(lang)
	o.mu.Unlock()

	res, err := o.source.Fetch(ctx, lang)
	if err != nil {
		if o.gen.Load() != gen {
			return rep, ErrStale
		}
		o.mu.Lock()
		defer o.mu.Unlock()
		o.clearLoading()
		o.showError(lang, err)
		log.Error("loading profile failed", zap.Error(err))
		return rep, fmt.Errorf("loading profile: %w", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.gen.Load() != gen {
		log.Debug("discarding stale profile")
		return rep, ErrStale
	}

	rep.Fallback = res.IsFallback()
	rep.Cause = res.Cause()

	env := NewEnv(res.Document(), lang, o.targets, o.format)
	for i, s := range o.sections {
		if err := runSection(s, env); err != nil {
			rep.Failures = append(rep.Failures, &SectionError{Section: s.Name, Err: err})
			log.Error("section failed", zap.String("section", s.Name), zap.Error(err))
		}
		rep.Sections = append(rep.Sections, s.Name)
		if o.OnSection != nil {
			o.OnSection(i+1, len(o.sections), s.Name)
		}
	}
	o.clearLoading()

	if err := rep.Err(); err != nil {
		o.showError(lang, err)
		return rep, nil
	}
	log.Info("profile rendered", zap.Bool("fallback", rep.Fallback))
	return rep, nil
}

// runSection renders one section, converting a panic into an error.
func runSection(s Section, env *Env) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.Render(env)
}

func (o *Orchestrator) markLoading(lang i18n.Lang) {
	markup := `<span class="loading-spinner"></span> ` + esc(i18n.For(lang).Loading)
	for _, id := range LoadingTargets {
		dom.WithNode(o.targets, id, func(n dom.Node) {
			n.SetHTML(markup)
			n.AddClass("loading")
		})
	}
}

func (o *Orchestrator) clearLoading() {
	for _, id := range LoadingTargets {
		dom.WithNode(o.targets, id, func(n dom.Node) { n.RemoveClass("loading") })
	}
}

// showError prepends a dismissable banner with a reload action.
func (o *Orchestrator) showError(lang i18n.Lang, err error) {
	c := i18n.For(lang)
	o.targets.Prepend(fmt.Sprintf(
		`<div class="error-notification" role="alert"><p><strong>%s:</strong> %s</p><button onclick="location.reload()">%s</button><button class="dismiss" onclick="this.parentElement.remove()" aria-label="close">×</button></div>`,
		esc(c.ErrorLoading), esc(err.Error()), esc(c.Retry)))
}
