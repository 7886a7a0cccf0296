package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// WizardResult is what the init wizard collected.
type WizardResult struct {
	Config *Config
	// WriteContent asks the caller to write a starter content file to
	// Config.ContentFile.
	WriteContent bool
}

// RunWizard runs an interactive configuration wizard and saves the
// resulting Config to path.
func RunWizard(path string) (*WizardResult, error) {
	fmt.Println("Welcome to nailbar! Let's configure your salon site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port to serve the site on",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 2. Content file.
	contentPrompt := promptui.Prompt{
		Label:   "Content file (services, contact, gallery)",
		Default: cfg.ContentFile,
	}
	cfg.ContentFile, err = contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}

	writeContent := false
	if _, statErr := os.Stat(cfg.ContentFile); os.IsNotExist(statErr) {
		starterPrompt := promptui.Select{
			Label: "Content file does not exist. Create a starter file?",
			Items: []string{"yes", "no"},
		}
		_, answer, err := starterPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("starter content: %w", err)
		}
		writeContent = answer == "yes"
	}

	// 3. Gallery directory.
	galleryPrompt := promptui.Prompt{
		Label:   "Gallery image directory (leave blank to use the content file list)",
		Default: "",
	}
	galleryDir, err := galleryPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("gallery dir: %w", err)
	}
	cfg.GalleryDir = strings.TrimSpace(galleryDir)

	// 4. Allowed origins.
	originsPrompt := promptui.Prompt{
		Label:   "Allowed CORS origins (comma separated, * for any)",
		Default: strings.Join(cfg.HTTP.AllowedOrigins, ","),
	}
	origins, err := originsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("allowed origins: %w", err)
	}
	cfg.HTTP.AllowedOrigins = SplitAndTrim(origins)

	// 5. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{
			"console: human readable",
			"json:    for log collectors",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	cfg.Log.Format = []LogFormat{LogFormatConsole, LogFormatJSON}[formatIdx]

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return &WizardResult{Config: cfg, WriteContent: writeContent}, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// SplitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func SplitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
