package config

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultRelayURL is the public relay used when no endpoint is configured.
	DefaultRelayURL = "wss://phone-controller-1.onrender.com"

	// DefaultOllamaModel is used for local AI interpretation when unset.
	DefaultOllamaModel = "llama3.2"

	// DefaultOllamaHost is the local Ollama HTTP endpoint.
	DefaultOllamaHost = "http://127.0.0.1:11434"
)

// Config is the persisted agent configuration.
type Config struct {
	RelayURL string `json:"relayUrl,omitempty"`
	Token    string `json:"token,omitempty"` // pairing token; regenerated per start if empty

	Interpreter    string `json:"interpreter,omitempty"` // "ollama" (default) or "anthropic"
	OllamaHost     string `json:"ollamaHost,omitempty"`
	OllamaModel    string `json:"ollamaModel,omitempty"`
	AnthropicModel string `json:"anthropicModel,omitempty"`
	DisableAI      bool   `json:"disableAi,omitempty"`

	// CreditRefresh is a cron expression that regrants AI credits while the
	// agent is running (e.g. "@daily"). Empty disables the schedule.
	CreditRefresh       string `json:"creditRefresh,omitempty"`
	CreditRefreshAmount int    `json:"creditRefreshAmount,omitempty"`

	Notify        bool   `json:"notify,omitempty"` // desktop notifications for controller events
	WebhookURL    string `json:"webhookUrl,omitempty"`
	WebhookFormat string `json:"webhookFormat,omitempty"` // "slack", "feishu", "dingtalk", ...
}

var ConfigPath string

func init() {
	homeDir, _ := os.UserHomeDir()
	ConfigPath = filepath.Join(homeDir, ".pcagent", "config.json")
}

// LoadConfig reads the config file and applies environment overrides.
// A missing file is not an error; defaults plus environment are returned.
func LoadConfig() (*Config, error) {
	// A project-local .env is honored before reading the environment.
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(ConfigPath)
	if err == nil {
		if jsonErr := json.Unmarshal(data, &cfg); jsonErr != nil {
			return nil, jsonErr
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnv(&cfg)
	cfg.applyDefaults()
	return &cfg, nil
}

// SaveConfig writes the config back to disk, creating the directory if needed.
func SaveConfig(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(ConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(ConfigPath, data, 0600)
}

// applyEnv overlays environment variables onto the config.
func applyEnv(cfg *Config) {
	if v := os.Getenv("RELAY_URL"); v != "" {
		cfg.RelayURL = v
	}
	if v := os.Getenv("PCAGENT_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("OLLAMA_HOST"); v != "" {
		cfg.OllamaHost = v
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		cfg.OllamaModel = v
	}
	// Containerized environments have no display or local model; AI is off.
	if os.Getenv("DOCKER_CONTAINER") != "" || isTruthy(os.Getenv("PCAGENT_NO_AI")) {
		cfg.DisableAI = true
	}
}

func (c *Config) applyDefaults() {
	if c.RelayURL == "" {
		c.RelayURL = DefaultRelayURL
	}
	if c.Interpreter == "" {
		c.Interpreter = "ollama"
	}
	if c.OllamaHost == "" {
		c.OllamaHost = DefaultOllamaHost
	}
	if c.OllamaModel == "" {
		c.OllamaModel = DefaultOllamaModel
	}
	if c.CreditRefreshAmount <= 0 {
		c.CreditRefreshAmount = 100
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// GenerateToken returns a short URL-safe pairing token.
func GenerateToken() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
