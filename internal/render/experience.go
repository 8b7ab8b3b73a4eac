package render

import (
	"fmt"
	"strings"

	"github.com/Gabolonhez/Portfolio/internal/dom"
	"github.com/Gabolonhez/Portfolio/internal/profile"
)

// experienceEntries prefers the about timeline over the legacy list.
func experienceEntries(d *profile.Document) []profile.Experience {
	// An empty timeline counts as absent and falls through to the legacy list.
	if d.About != nil && len(d.About.Timeline) > 0 {
		return d.About.Timeline
	}
	return d.ProfessionalExperience
}

// ExperienceTimeline renders the career timeline.
func ExperienceTimeline(env *Env) error {
	entries := experienceEntries(env.Doc)
	if len(entries) == 0 {
		dom.SetHTML(env.Targets, IDExperience, `<p>`+esc(env.Chrome.NoExperience)+`</p>`)
		return nil
	}

	var b strings.Builder
	for i, e := range entries {
		class := "timeline-item"
		if e.Current {
			class += " current"
		}
		fmt.Fprintf(&b, `<div class="%s" style="animation-delay: %.1fs">`, class, float64(i*2)/10)
		b.WriteString(`<div class="timeline-date">` + esc(e.When()) + `</div>`)
		b.WriteString(`<div class="timeline-role">` + esc(e.Title()) + `</div>`)
		if e.Company != "" {
			b.WriteString(`<div class="timeline-company">` + esc(e.Company) + `</div>`)
		}
		desc, err := env.Format.Rich(e.Description)
		if err != nil {
			return fmt.Errorf("experience %q: %w", e.Title(), err)
		}
		b.WriteString(`<div class="timeline-description">` + desc + `</div>`)
		if len(e.Technologies) > 0 {
			b.WriteString(`<div class="timeline-tech">`)
			for _, tech := range e.Technologies {
				b.WriteString(`<span class="timeline-tech-tag">` + esc(tech) + `</span>`)
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
	}
	dom.SetHTML(env.Targets, IDExperience, b.String())
	return nil
}
