package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectSiteRoot returns the first candidate directory that already holds
// a Portuguese profile document, or ".".
func detectSiteRoot(candidates ...string) string {
	for _, dir := range candidates {
		if _, err := os.Stat(filepath.Join(dir, DefaultConfig().Data.PT)); err == nil {
			return dir
		}
	}
	return "."
}

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to portfolio! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site root.
	rootPrompt := promptui.Prompt{
		Label:   "Site root (directory containing src/data)",
		Default: detectSiteRoot(".", "site", "public"),
	}
	root, err := rootPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site root: %w", err)
	}
	cfg.SiteRoot = root

	// 2. Data source.
	sourcePrompt := promptui.Select{
		Label: "Where are the profile documents served from?",
		Items: []string{
			"site root: read the JSON files from disk",
			"remote URL: fetch over HTTP(S)",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data source: %w", err)
	}
	if sourceIdx == 1 {
		urlPrompt := promptui.Prompt{
			Label:    "Base URL",
			Validate: validateBaseURL,
		}
		base, err := urlPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("base url: %w", err)
		}
		cfg.BaseURL = base
	}

	// 3. Owner identity for the offline fallback.
	namePrompt := promptui.Prompt{
		Label:   "Your name (shown when the profile cannot be loaded)",
		Default: cfg.Identity.Name,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	cfg.Identity.Name = name

	phonePrompt := promptui.Prompt{
		Label:   "Phone",
		Default: cfg.Identity.Phone,
	}
	phone, err := phonePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("phone: %w", err)
	}
	cfg.Identity.Phone = phone

	emailPrompt := promptui.Prompt{
		Label:    "Email",
		Default:  cfg.Identity.Email,
		Validate: validateEmail,
	}
	email, err := emailPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("email: %w", err)
	}
	cfg.Identity.Email = email

	// 4. Dev server port.
	portPrompt := promptui.Prompt{
		Label:    "Dev server port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 5. Markdown descriptions.
	mdPrompt := promptui.Select{
		Label: "Render descriptions as Markdown?",
		Items: []string{"no", "yes"},
	}
	mdIdx, _, err := mdPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("markdown: %w", err)
	}
	cfg.Render.MarkdownDescriptions = mdIdx == 1

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateBaseURL(s string) error {
	c := DefaultConfig()
	c.BaseURL = s
	return c.Validate()
}

func validatePort(s string) error {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}

func validateEmail(s string) error {
	at := strings.Index(s, "@")
	if at < 1 || at == len(s)-1 || strings.ContainsAny(s, " \t") {
		return fmt.Errorf("enter an address like name@example.com")
	}
	return nil
}
