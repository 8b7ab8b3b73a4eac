package profile

import "github.com/Gabolonhez/Portfolio/internal/i18n"

// Identity is the owner information the fallback document is built from.
// Job and Location are keyed by language.
type Identity struct {
	Name     string               `yaml:"name" koanf:"name"`
	Photo    string               `yaml:"photo" koanf:"photo"`
	Phone    string               `yaml:"phone" koanf:"phone"`
	Email    string               `yaml:"email" koanf:"email"`
	Job      map[i18n.Lang]string `yaml:"job" koanf:"job"`
	Location map[i18n.Lang]string `yaml:"location" koanf:"location"`
}

// DefaultIdentity returns the identity used when none is configured.
func DefaultIdentity() Identity {
	return Identity{
		Name:  "Gabriel Bolonhez",
		Photo: "./src/images/Me.png",
		Phone: "+55 (11) 94367-8485",
		Email: "gbbolonhez@gmail.com",
		Job: map[i18n.Lang]string{
			i18n.PT: "Desenvolvedor Front-end | QA",
			i18n.EN: "Front-end Developer | QA",
		},
		Location: map[i18n.Lang]string{
			i18n.PT: "São Bernardo do Campo, São Paulo, Brasil",
			i18n.EN: "São Bernardo do Campo, São Paulo, Brazil",
		},
	}
}

// localized picks the value for lang, then the default language, then any.
func localized(m map[i18n.Lang]string, lang i18n.Lang) string {
	if v, ok := m[lang]; ok {
		return v
	}
	if v, ok := m[i18n.Default]; ok {
		return v
	}
	for _, v := range m {
		return v
	}
	return ""
}

// fallbackTitles holds the localized accordion titles and contact labels
// of the fallback document.
var fallbackTitles = map[i18n.Lang]struct {
	titles AccordionTitles
	labels ContactLabels
}{
	i18n.PT: {
		titles: AccordionTitles{
			Skills:                 "Habilidades",
			Education:              "Formação",
			Languages:              "Idiomas",
			Portfolio:              "Projetos",
			ProfessionalExperience: "Experiência",
			Contact:                "Contato",
		},
		labels: ContactLabels{
			Email:       "Email",
			Phone:       "Telefone",
			Location:    "Localização",
			ConnectText: "Conecte-se comigo:",
		},
	},
	i18n.EN: {
		titles: AccordionTitles{
			Skills:                 "Skills",
			Education:              "Education",
			Languages:              "Languages",
			Portfolio:              "Projects",
			ProfessionalExperience: "Experience",
			Contact:                "Contact",
		},
		labels: ContactLabels{
			Email:       "Email",
			Phone:       "Phone",
			Location:    "Location",
			ConnectText: "Connect with me:",
		},
	},
}

// Fallback synthesizes the minimal document for lang: identity fields,
// empty collections and localized titles and labels.
func Fallback(id Identity, lang i18n.Lang) *Document {
	loc, ok := fallbackTitles[lang]
	if !ok {
		loc = fallbackTitles[i18n.Default]
	}
	titles := loc.titles
	labels := loc.labels
	return &Document{
		Name:                   id.Name,
		Photo:                  id.Photo,
		Job:                    localized(id.Job, lang),
		Location:               localized(id.Location, lang),
		Phone:                  id.Phone,
		Email:                  id.Email,
		Skills:                 &Skills{HardSkills: []HardSkill{}, SoftSkills: []string{}},
		Education:              []Education{},
		Languages:              []string{},
		Portfolio:              []Project{},
		ProfessionalExperience: []Experience{},
		AccordionTitles:        &titles,
		ContactLabels:          &labels,
	}
}
