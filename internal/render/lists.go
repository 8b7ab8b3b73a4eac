package render

import (
	"fmt"
	"strings"

	"github.com/Gabolonhez/Portfolio/internal/dom"
)

// SoftSkills renders the personal-skills heading and list.
func SoftSkills(env *Env) error {
	d := env.Doc
	if d.SkillsTitles != nil {
		dom.SetText(env.Targets, IDSkillsPersonal, d.SkillsTitles.SkillsPersonal)
	}
	if d.Skills == nil {
		return nil
	}
	var b strings.Builder
	for _, s := range d.Skills.SoftSkills {
		b.WriteString("<li>" + esc(s) + "</li>")
	}
	dom.SetHTML(env.Targets, IDSoftSkills, b.String())
	return nil
}

// HardSkills renders the technical-skills heading and the skill items with
// their logo, name and localized level badge.
func HardSkills(env *Env) error {
	d, c := env.Doc, env.Chrome
	if d.SkillsTitles != nil {
		dom.SetText(env.Targets, IDSkillsTech, d.SkillsTitles.SkillsTech)
	}
	if d.Skills == nil {
		return nil
	}
	var b strings.Builder
	for _, s := range d.Skills.HardSkills {
		name := esc(s.Name)
		badge := ""
		if s.Level != "" {
			badge = fmt.Sprintf(`<span class="skill-level %s">%s</span>`, esc(s.Level), esc(c.Level(s.Level)))
		}
		fmt.Fprintf(&b, `<li class="skill-item"><img src="%s" alt="%s" title="%s" loading="lazy"><span class="skill-name">%s</span>%s</li>`,
			esc(SafeURL(s.Logo)), name, name, name, badge)
	}
	dom.SetHTML(env.Targets, IDHardSkills, b.String())
	return nil
}

// EducationList renders one item per course.
func EducationList(env *Env) error {
	if env.Doc.Education == nil {
		return nil
	}
	var b strings.Builder
	for _, e := range env.Doc.Education {
		desc, err := env.Format.Paragraph(e.Description, "")
		if err != nil {
			return fmt.Errorf("education %q: %w", e.Name, err)
		}
		fmt.Fprintf(&b, `<li><h3 class="title">%s</h3><p class="period">%s</p>%s</li>`,
			esc(e.Name), esc(e.Period), desc)
	}
	dom.SetHTML(env.Targets, IDEducation, b.String())
	return nil
}

// LanguageList renders one item per spoken language.
func LanguageList(env *Env) error {
	if env.Doc.Languages == nil {
		return nil
	}
	var b strings.Builder
	for _, l := range env.Doc.Languages {
		b.WriteString("<li>" + esc(l) + "</li>")
	}
	dom.SetHTML(env.Targets, IDLanguages, b.String())
	return nil
}
