package commands

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/robfig/cron/v3"
	"golang.org/x/term"

	"pcagent/internal/automation"
	"pcagent/internal/config"
	"pcagent/internal/interp"
	"pcagent/internal/notify"
	"pcagent/internal/relay"
	"pcagent/internal/tui"
	"pcagent/internal/ui"
)

// RunAgent connects to the relay and serves commands until interrupted.
func RunAgent() {
	cfg, err := config.LoadConfig()
	if err != nil {
		ui.ShowError("Failed to load config", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	if cfg.Token == "" {
		token, err := config.GenerateToken()
		if err != nil {
			ui.ShowError("Failed to generate pairing token", err)
			os.Exit(1)
		}
		cfg.Token = token
		if err := config.SaveConfig(cfg); err != nil {
			log.Printf("[run] could not persist token: %v", err)
		}
	}

	aliases, err := automation.Load(aliasesPath())
	if err != nil {
		log.Printf("[run] alias overrides ignored: %v", err)
		aliases = automation.Builtin()
	}
	backend := automation.NewLocal(aliases)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	adapter := selectAdapter(ctx, cfg)
	processor := interp.NewProcessor(backend, aliases, adapter)

	engine := relay.New(cfg.RelayURL, cfg.Token)
	if err := relay.RegisterCommandHandlers(engine, processor); err != nil {
		ui.ShowError("Failed to register handlers", err)
		os.Exit(1)
	}

	if cfg.CreditRefresh != "" {
		c := cron.New()
		amount := cfg.CreditRefreshAmount
		if _, err := c.AddFunc(cfg.CreditRefresh, func() {
			bal := processor.Credits().Add(amount)
			log.Printf("[run] credit refresh: +%d, balance %d", amount, bal)
		}); err != nil {
			log.Printf("[run] invalid credit refresh schedule %q: %v", cfg.CreditRefresh, err)
		} else {
			c.Start()
			defer c.Stop()
		}
	}

	notifier := buildNotifier(cfg)

	aiName := ""
	if adapter != nil {
		aiName = adapter.Name()
	}

	if flagHeadless || !term.IsTerminal(int(os.Stdin.Fd())) {
		engine.OnEvent(func(ev relay.Event) { notifyEvent(notifier, ev) })
		showBanner(cfg, aliases, processor, aiName)
		if err := engine.Run(ctx); err != nil && ctx.Err() == nil {
			ui.ShowError("Relay session ended", err)
			os.Exit(1)
		}
		return
	}

	events := make(chan relay.Event, 16)
	engine.OnEvent(func(ev relay.Event) {
		notifyEvent(notifier, ev)
		select {
		case events <- ev:
		default: // dashboard lagging; drop rather than stall the session
		}
	})

	go func() {
		defer close(events)
		if err := engine.Run(ctx); err != nil && ctx.Err() == nil {
			log.Printf("[run] relay session ended: %v", err)
		}
	}()

	err = tui.Run(tui.Options{
		RelayURL: cfg.RelayURL,
		Token:    cfg.Token,
		AIName:   aiName,
		Events:   events,
		Credits:  processor.Credits().Balance,
		OnQuit:   stop,
	})
	if err != nil {
		ui.ShowError("Dashboard error", err)
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config) {
	if flagRelayURL != "" {
		cfg.RelayURL = flagRelayURL
	}
	if flagToken != "" {
		cfg.Token = flagToken
	}
	if flagModel != "" {
		if cfg.Interpreter == "anthropic" {
			cfg.AnthropicModel = flagModel
		} else {
			cfg.OllamaModel = flagModel
		}
	}
	if flagNoAI {
		cfg.DisableAI = true
	}
}

func aliasesPath() string {
	return filepath.Join(filepath.Dir(config.ConfigPath), "aliases.yaml")
}

// selectAdapter picks the AI interpreter, or nil when AI is disabled or
// unavailable. The agent still works without one via rule-based parsing.
func selectAdapter(ctx context.Context, cfg *config.Config) interp.Adapter {
	if cfg.DisableAI {
		return nil
	}
	switch cfg.Interpreter {
	case "anthropic":
		adapter, err := interp.NewAnthropic(cfg.AnthropicModel)
		if err != nil {
			log.Printf("[run] anthropic interpreter unavailable: %v", err)
			return nil
		}
		return adapter
	default:
		adapter := interp.NewOllama(cfg.OllamaHost, cfg.OllamaModel)
		if !adapter.Reachable(ctx) {
			log.Printf("[run] ollama not reachable at %s, falling back to rule-based parsing", cfg.OllamaHost)
			return nil
		}
		return adapter
	}
}

func buildNotifier(cfg *config.Config) notify.Notifier {
	var ns []notify.Notifier
	if cfg.Notify {
		ns = append(ns, notify.NewDesktopNotifier())
	}
	if cfg.WebhookURL != "" {
		ns = append(ns, notify.NewWebhookNotifier(cfg.WebhookURL, cfg.WebhookFormat))
	}
	if len(ns) == 0 {
		return nil
	}
	return notify.NewMultiNotifier(ns...)
}

func notifyEvent(n notify.Notifier, ev relay.Event) {
	if n == nil {
		return
	}
	var msg string
	switch ev.Kind {
	case relay.EventPhoneConnected:
		msg = "Phone connected"
	case relay.EventPhoneDisconnected:
		msg = "Phone disconnected"
	default:
		return
	}
	if err := n.Send(notify.Notification{Title: "PC Agent", Message: msg, Sound: true}); err != nil {
		log.Printf("[run] notification failed: %v", err)
	}
}

func showBanner(cfg *config.Config, aliases *automation.Aliases, p *interp.Processor, aiName string) {
	ui.ShowHeader("PC Agent")
	ui.ShowInfo("Token: %s", cfg.Token)
	ui.ShowInfo("Relay: %s", cfg.RelayURL)
	if p.AIEnabled() {
		ui.ShowInfo("AI: %s (%d credits)", aiName, p.Credits().Balance())
	} else {
		ui.ShowWarning("AI disabled; rule-based parsing only")
	}
	ui.ShowInfo("Apps: %s", strings.Join(aliases.AppNames(), ", "))
	ui.ShowInfo("Sites: %s", strings.Join(aliases.SiteNames(), ", "))
	ui.ShowInfo("Press Ctrl+C to stop")
}
