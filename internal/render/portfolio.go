package render

import (
	"fmt"
	"strings"

	"github.com/Gabolonhez/Portfolio/internal/dom"
	"github.com/Gabolonhez/Portfolio/internal/profile"
)

const placeholderIcon = "💻"

// Portfolio renders the project cards, or the "no projects" placeholder
// when the list is empty or absent.
func Portfolio(env *Env) error {
	c := env.Chrome
	if len(env.Doc.Portfolio) == 0 {
		dom.SetHTML(env.Targets, IDPortfolio,
			`<div class="portfolio-empty"><p>`+esc(c.NoProjects)+`</p></div>`)
		return nil
	}

	var b strings.Builder
	for _, p := range env.Doc.Portfolio {
		card, err := projectCard(env, p)
		if err != nil {
			return fmt.Errorf("project %q: %w", p.Name, err)
		}
		b.WriteString(card)
	}
	dom.SetHTML(env.Targets, IDPortfolio, b.String())
	return nil
}

// projectCard emits, in order: featured badge, status badge, thumbnail or
// placeholder, title, description, stats, technology tags and links. Each
// part depends only on the presence of its field.
func projectCard(env *Env, p profile.Project) (string, error) {
	c := env.Chrome
	var b strings.Builder
	b.WriteString("<li>")

	if p.Featured {
		b.WriteString(`<div class="featured-badge">` + esc(c.Featured) + `</div>`)
	}
	if p.Status != "" {
		fmt.Fprintf(&b, `<div class="status-badge %s">%s</div>`, esc(p.Status), esc(c.Status(p.Status)))
	}

	b.WriteString(`<div class="project-thumbnail">`)
	if thumb := SafeURL(p.Thumbnail); thumb != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="%s" loading="lazy" onerror="this.style.display='none'; this.nextElementSibling.style.display='flex';">`,
			esc(thumb), esc(p.Name))
		b.WriteString(`<div class="placeholder-icon" style="display:none;">` + placeholderIcon + `</div>`)
	} else {
		b.WriteString(`<div class="placeholder-icon">` + placeholderIcon + `</div>`)
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div class="project-content">`)
	if p.GitHub != "" {
		b.WriteString(`<h3 class="github">` + esc(p.Name) + `</h3>`)
	} else {
		b.WriteString(`<h3>` + esc(p.Name) + `</h3>`)
	}

	if p.Description != "" {
		desc, err := env.Format.Paragraph(p.Description, "project-description")
		if err != nil {
			return "", err
		}
		b.WriteString(desc)
	}

	if len(p.Stats) > 0 {
		b.WriteString(`<div class="project-stats">`)
		for _, s := range p.Stats {
			fmt.Fprintf(&b, `<div class="stat-badge">%s %s</div>`, esc(s.Value), esc(s.Label))
		}
		b.WriteString(`</div>`)
	}

	if len(p.Technologies) > 0 {
		b.WriteString(`<div class="project-tags">`)
		for _, tech := range p.Technologies {
			b.WriteString(`<span class="tech-tag">` + esc(tech) + `</span>`)
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(`<div class="project-links">`)
	if u := SafeURL(p.URL); u != "" {
		fmt.Fprintf(&b, `<a href="%s" class="project-link demo primary" target="_blank" rel="noopener noreferrer"><span>%s</span></a>`,
			esc(u), esc(c.ViewDemo))
	}
	if u := SafeURL(p.GitHub); u != "" {
		fmt.Fprintf(&b, `<a href="%s" class="project-link github secondary" target="_blank" rel="noopener noreferrer"><span>%s</span></a>`,
			esc(u), esc(c.GitHub))
	}
	b.WriteString(`</div>`)

	b.WriteString(`</div></li>`)
	return b.String(), nil
}
