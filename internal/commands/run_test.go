package commands

import (
	"testing"

	"pcagent/internal/config"
)

func TestApplyFlags(t *testing.T) {
	defer func() {
		flagRelayURL, flagToken, flagModel, flagNoAI = "", "", "", false
	}()

	tests := []struct {
		name  string
		setup func()
		cfg   config.Config
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name:  "relay url and token override config",
			setup: func() { flagRelayURL = "ws://localhost:9000"; flagToken = "abc123" },
			cfg:   config.Config{RelayURL: "wss://example.com", Token: "old"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.RelayURL != "ws://localhost:9000" {
					t.Errorf("RelayURL = %q", cfg.RelayURL)
				}
				if cfg.Token != "abc123" {
					t.Errorf("Token = %q", cfg.Token)
				}
			},
		},
		{
			name:  "model flag targets ollama by default",
			setup: func() { flagModel = "qwen2.5" },
			cfg:   config.Config{OllamaModel: "llama3.2"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.OllamaModel != "qwen2.5" {
					t.Errorf("OllamaModel = %q", cfg.OllamaModel)
				}
			},
		},
		{
			name:  "model flag targets anthropic when selected",
			setup: func() { flagModel = "claude-3-5-haiku-latest" },
			cfg:   config.Config{Interpreter: "anthropic"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.AnthropicModel != "claude-3-5-haiku-latest" {
					t.Errorf("AnthropicModel = %q", cfg.AnthropicModel)
				}
				if cfg.OllamaModel != "" {
					t.Errorf("OllamaModel = %q, want empty", cfg.OllamaModel)
				}
			},
		},
		{
			name:  "no-ai flag disables AI",
			setup: func() { flagNoAI = true },
			cfg:   config.Config{},
			check: func(t *testing.T, cfg *config.Config) {
				if !cfg.DisableAI {
					t.Error("DisableAI = false, want true")
				}
			},
		},
		{
			name:  "empty flags leave config untouched",
			setup: func() {},
			cfg:   config.Config{RelayURL: "wss://example.com", Token: "keep"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.RelayURL != "wss://example.com" || cfg.Token != "keep" {
					t.Errorf("config changed: %+v", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagRelayURL, flagToken, flagModel, flagNoAI = "", "", "", false
			tt.setup()
			cfg := tt.cfg
			applyFlags(&cfg)
			tt.check(t, &cfg)
		})
	}
}
