package commands

import (
	"os"

	"pcagent/internal/config"
	"pcagent/internal/ui"
)

// RunToken prints the pairing token, generating one if needed. With rotate
// set, a fresh token replaces the stored one.
func RunToken(rotate bool) {
	cfg, err := config.LoadConfig()
	if err != nil {
		ui.ShowError("Failed to load config", err)
		os.Exit(1)
	}

	if rotate || cfg.Token == "" {
		token, err := config.GenerateToken()
		if err != nil {
			ui.ShowError("Failed to generate token", err)
			os.Exit(1)
		}
		cfg.Token = token
		if err := config.SaveConfig(cfg); err != nil {
			ui.ShowError("Failed to save config", err)
			os.Exit(1)
		}
		if rotate {
			ui.ShowSuccess("Pairing token rotated")
		}
	}

	ui.ShowInfo("Token: %s", cfg.Token)
	ui.ShowInfo("Enter this token in the phone app to pair")
}
