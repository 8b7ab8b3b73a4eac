package i18n

import "fmt"

// Lang identifies a supported site language.
type Lang string

const (
	PT Lang = "pt"
	EN Lang = "en"
)

// Default is the language used when no preference has been stored.
const Default = PT

// Supported lists the languages in toggle order.
var Supported = []Lang{PT, EN}

// Parse validates s as a supported language code.
func Parse(s string) (Lang, error) {
	switch Lang(s) {
	case PT, EN:
		return Lang(s), nil
	default:
		return "", fmt.Errorf("unsupported language %q: must be one of pt, en", s)
	}
}

// Chrome holds the UI strings that are chosen by the active language
// rather than read from the profile document.
type Chrome struct {
	Loading      string
	ErrorLoading string
	Retry        string

	LevelBasic        string
	LevelIntermediate string
	LevelAdvanced     string

	StatusCompleted  string
	StatusInProgress string
	Featured         string
	ViewDemo         string
	GitHub           string
	NoProjects       string
	NoExperience     string

	CallTitle  string // formatted with the phone number
	EmailTitle string // formatted with the email address
}

var chrome = map[Lang]Chrome{
	PT: {
		Loading:      "Carregando...",
		ErrorLoading: "Erro ao carregar dados",
		Retry:        "Tentar novamente",

		LevelBasic:        "Básico",
		LevelIntermediate: "Intermediário",
		LevelAdvanced:     "Avançado",

		StatusCompleted:  "Concluído",
		StatusInProgress: "Em Desenvolvimento",
		Featured:         "⭐ Destaque",
		ViewDemo:         "Ver Demo",
		GitHub:           "GitHub",
		NoProjects:       "Nenhum projeto disponível no momento.",
		NoExperience:     "Nenhuma experiência disponível.",

		CallTitle:  "Ligar para %s",
		EmailTitle: "Enviar email para %s",
	},
	EN: {
		Loading:      "Loading...",
		ErrorLoading: "Error loading data",
		Retry:        "Try again",

		LevelBasic:        "Basic",
		LevelIntermediate: "Intermediate",
		LevelAdvanced:     "Advanced",

		StatusCompleted:  "Completed",
		StatusInProgress: "In Progress",
		Featured:         "⭐ Featured",
		ViewDemo:         "View Demo",
		GitHub:           "GitHub",
		NoProjects:       "No projects available at the moment.",
		NoExperience:     "No experience available.",

		CallTitle:  "Call %s",
		EmailTitle: "Send email to %s",
	},
}

// For returns the chrome strings for lang, falling back to the default
// language for unknown codes.
func For(lang Lang) Chrome {
	if c, ok := chrome[lang]; ok {
		return c
	}
	return chrome[Default]
}

// Level returns the localized badge text for a hard-skill level. Unknown
// levels are returned unchanged.
func (c Chrome) Level(level string) string {
	switch level {
	case "basic":
		return c.LevelBasic
	case "intermediate":
		return c.LevelIntermediate
	case "advanced":
		return c.LevelAdvanced
	default:
		return level
	}
}

// Status returns the localized badge text for a project status. Anything
// other than "completed" is shown as in progress.
func (c Chrome) Status(status string) string {
	if status == "completed" {
		return c.StatusCompleted
	}
	return c.StatusInProgress
}
