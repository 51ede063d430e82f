package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to exhibits-admin! Let's configure your dashboard.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Backend URL.
	backendPrompt := promptui.Prompt{
		Label:   "Exhibits backend URL",
		Default: defaults.BackendURL,
	}
	backendURL, err := backendPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("backend url: %w", err)
	}

	// 2. Listen port.
	portPrompt := promptui.Prompt{
		Label:   "Dashboard listen port",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 3. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory (sessions, drafts, activity log)",
		Default: defaults.DataDir,
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 4. Session lifetime.
	ttlPrompt := promptui.Select{
		Label: "Session lifetime",
		Items: []string{"4 hours", "12 hours", "24 hours"},
	}
	ttlIdx, _, err := ttlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("session lifetime: %w", err)
	}
	ttls := []int{4, 12, 24}

	cfg := &Config{
		BackendURL:      backendURL,
		Port:            port,
		DataDir:         dataDir,
		SessionTTLHours: ttls[ttlIdx],
		MaxUploadMB:     defaults.MaxUploadMB,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
