package relay

import (
	"context"
	"errors"
	"fmt"

	"pcagent/internal/interp"
)

// CommandResponse answers an ai_command envelope.
type CommandResponse struct {
	OK               bool   `json:"ok"`
	Message          string `json:"message"`
	AIUsed           bool   `json:"ai_used"`
	CreditsRemaining int    `json:"credits_remaining"`
}

// CreditsResponse answers a check_credits envelope.
type CreditsResponse struct {
	OK        bool   `json:"ok"`
	Message   string `json:"message"`
	Credits   int    `json:"credits"`
	AIEnabled bool   `json:"ai_enabled"`
}

// AddCreditsResponse answers an add_credits envelope.
type AddCreditsResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Credits int    `json:"credits"`
}

// RegisterCommandHandlers wires the interpretation subsystem into the
// engine's dispatch table.
func RegisterCommandHandlers(e *Engine, p *interp.Processor) error {
	handlers := map[string]Handler{
		TypeAICommand:    aiCommandHandler(p),
		TypeCheckCredits: checkCreditsHandler(p),
		TypeAddCredits:   addCreditsHandler(p),
	}
	for envType, h := range handlers {
		if err := e.Handle(envType, h); err != nil {
			return err
		}
	}
	return nil
}

// aiCommandHandler interprets natural-language text and executes it.
func aiCommandHandler(p *interp.Processor) Handler {
	return func(ctx context.Context, env Envelope) (any, error) {
		if env.Text == "" {
			return nil, errors.New("No text provided")
		}

		res := p.ProcessCommand(ctx, env.Text)
		return CommandResponse{
			OK:               res.OK,
			Message:          res.Message,
			AIUsed:           res.AIUsed,
			CreditsRemaining: res.CreditsRemaining,
		}, nil
	}
}

// checkCreditsHandler reads the credit balance; no intent resolution.
func checkCreditsHandler(p *interp.Processor) Handler {
	return func(ctx context.Context, env Envelope) (any, error) {
		credits := p.Credits().Balance()
		return CreditsResponse{
			OK:        true,
			Message:   fmt.Sprintf("You have %d credits remaining", credits),
			Credits:   credits,
			AIEnabled: p.AIEnabled(),
		}, nil
	}
}

// addCreditsHandler tops up the credit balance; no intent resolution.
func addCreditsHandler(p *interp.Processor) Handler {
	return func(ctx context.Context, env Envelope) (any, error) {
		if env.Amount <= 0 {
			return nil, errors.New("Invalid credit amount")
		}

		balance := p.Credits().Add(env.Amount)
		return AddCreditsResponse{
			OK:      true,
			Message: fmt.Sprintf("Added %d credits", env.Amount),
			Credits: balance,
		}, nil
	}
}
