package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Gabolonhez/Portfolio/internal/dom"
	"github.com/Gabolonhez/Portfolio/internal/i18n"
	"github.com/Gabolonhez/Portfolio/internal/profile"
)

// Env is what every section renderer receives.
type Env struct {
	Doc     *profile.Document
	Lang    i18n.Lang
	Chrome  i18n.Chrome
	Targets dom.Targets
	Format  *Formatter
}

// NewEnv builds the render environment for one pass.
func NewEnv(doc *profile.Document, lang i18n.Lang, t dom.Targets, f *Formatter) *Env {
	return &Env{Doc: doc, Lang: lang, Chrome: i18n.For(lang), Targets: t, Format: f}
}

// SectionFunc renders one sub-tree of the document. It fully replaces the
// content of its targets and skips targets that do not exist.
type SectionFunc func(env *Env) error

// Section is a named renderer.
type Section struct {
	Name   string
	Render SectionFunc
}

// Sections is the fixed render order.
var Sections = []Section{
	{Name: "profile", Render: ProfileInfo},
	{Name: "soft-skills", Render: SoftSkills},
	{Name: "hard-skills", Render: HardSkills},
	{Name: "education", Render: EducationList},
	{Name: "languages", Render: LanguageList},
	{Name: "portfolio", Render: Portfolio},
	{Name: "experience", Render: ExperienceTimeline},
	{Name: "contact", Render: Contact},
	{Name: "accordion-titles", Render: AccordionTitles},
	{Name: "about", Render: About},
	{Name: "need-website", Render: NeedWebsite},
}

// ProfileInfo renders the identity fields and the hero block.
func ProfileInfo(env *Env) error {
	d, t, c := env.Doc, env.Targets, env.Chrome

	dom.WithNode(t, IDPhoto, func(n dom.Node) {
		n.SetAttr("src", SafeURL(d.Photo))
		n.SetAttr("alt", d.Name)
	})
	dom.SetText(t, IDName, d.Name)
	dom.WithNode(t, IDJobTitle, typing(d.JobTitle))
	if d.Tagline != "" {
		dom.WithNode(t, IDTagline, typing(d.Tagline))
	}

	if d.Hero != nil && d.Hero.Stats != nil {
		s := d.Hero.Stats
		dom.SetText(t, IDHeroExperience, string(s.Experience))
		dom.SetText(t, IDHeroExperienceLabel, s.ExperienceLabel)
		dom.SetText(t, IDHeroProjects, string(s.Projects))
		dom.SetText(t, IDHeroProjectsLabel, s.ProjectsLabel)
		dom.SetText(t, IDHeroTechnologies, string(s.Technologies))
		dom.SetText(t, IDHeroTechnologiesLabel, s.TechnologiesLabel)
	}
	if d.Hero != nil && d.Hero.CTAs != nil {
		ctas := d.Hero.CTAs
		dom.SetText(t, IDHeroCTAProjects, ctas.Projects)
		dom.SetText(t, IDHeroCTACV, ctas.CV)
		dom.SetText(t, IDHeroCTAContact, ctas.Contact)
	}

	dom.SetText(t, IDJob, d.Job)
	dom.SetText(t, IDLocation, d.Location)

	dom.WithNode(t, IDPhone, func(n dom.Node) {
		n.SetText(d.Phone)
		n.SetAttr("href", "tel:"+dialable(d.Phone))
		title := fmt.Sprintf(c.CallTitle, d.Phone)
		n.SetAttr("title", title)
		n.SetAttr("aria-label", title)
	})
	dom.WithNode(t, IDEmail, func(n dom.Node) {
		n.SetText(d.Email)
		n.SetAttr("href", "mailto:"+d.Email)
		title := fmt.Sprintf(c.EmailTitle, d.Email)
		n.SetAttr("title", title)
		n.SetAttr("aria-label", title)
	})
	return nil
}

// typing sets text and restarts the typing animation class.
func typing(text string) func(dom.Node) {
	return func(n dom.Node) {
		n.SetText(text)
		n.RemoveClass("typing")
		if text != "" {
			n.AddClass("typing")
		}
	}
}

// dialable keeps only digits and '+' of a phone number.
func dialable(phone string) string {
	return strings.Map(func(r rune) rune {
		if r == '+' || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, phone)
}

// stripSpace removes all whitespace.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Contact renders the contact labels and links.
func Contact(env *Env) error {
	d, t := env.Doc, env.Targets

	var labels profile.ContactLabels
	if d.ContactLabels != nil {
		labels = *d.ContactLabels
	}
	dom.SetText(t, IDContactEmailLabel, labels.Email)
	dom.SetText(t, IDContactPhoneLabel, labels.Phone)
	dom.SetText(t, IDContactLocationLabel, labels.Location)
	dom.SetText(t, IDContactConnectText, labels.ConnectText)

	dom.WithNode(t, IDContactEmail, func(n dom.Node) {
		n.SetText(d.Email)
		n.SetAttr("href", "mailto:"+d.Email)
	})
	dom.WithNode(t, IDContactPhone, func(n dom.Node) {
		n.SetText(d.Phone)
		n.SetAttr("href", "tel:"+stripSpace(d.Phone))
	})
	dom.SetText(t, IDContactLocation, d.Location)
	return nil
}

// AccordionTitles renders the section headings.
func AccordionTitles(env *Env) error {
	var titles profile.AccordionTitles
	if env.Doc.AccordionTitles != nil {
		titles = *env.Doc.AccordionTitles
	}
	t := env.Targets
	dom.SetText(t, IDSkillsTitle, titles.Skills)
	dom.SetText(t, IDEducationTitle, titles.Education)
	dom.SetText(t, IDLanguagesTitle, titles.Languages)
	dom.SetText(t, IDPortfolioTitle, titles.Portfolio)
	dom.SetText(t, IDExperienceTitle, titles.ProfessionalExperience)
	dom.SetText(t, IDContactTitle, titles.Contact)
	return nil
}

// About renders the about block when the document has one.
func About(env *Env) error {
	a := env.Doc.About
	if a == nil {
		return nil
	}
	dom.SetText(env.Targets, IDAboutTitle, a.Title)
	desc, err := env.Format.Rich(a.Description)
	if err != nil {
		return fmt.Errorf("about description: %w", err)
	}
	dom.SetHTML(env.Targets, IDAboutDescription, desc)
	return nil
}

// NeedWebsite renders the website call-to-action.
func NeedWebsite(env *Env) error {
	var w profile.NeedWebsite
	if env.Doc.NeedWebsite != nil {
		w = *env.Doc.NeedWebsite
	}
	dom.SetText(env.Targets, IDWebsiteTitle, w.Title)
	dom.SetText(env.Targets, IDWebsiteDescription, w.Description)
	dom.SetText(env.Targets, IDWebsiteButton, w.ButtonText)
	return nil
}
