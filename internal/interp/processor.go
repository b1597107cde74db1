package interp

import (
	"context"
	"log"

	"pcagent/internal/automation"
)

// Result is the outcome of interpreting and executing one command.
type Result struct {
	OK               bool
	Message          string
	AIUsed           bool
	CreditsRemaining int
}

// Processor resolves free text into an Intent and executes it, choosing
// between the AI interpreter and the rule-based fallback per request.
type Processor struct {
	backend  automation.Backend
	resolver *Resolver
	adapter  Adapter // nil when AI is disabled or unavailable
	credits  *CreditAccount
}

// NewProcessor wires a processor over the given backend and alias tables.
// A nil adapter disables AI interpretation entirely.
func NewProcessor(backend automation.Backend, aliases *automation.Aliases, adapter Adapter) *Processor {
	return &Processor{
		backend:  backend,
		resolver: NewResolver(aliases),
		adapter:  adapter,
		credits:  NewCreditAccount(),
	}
}

// AIEnabled reports whether an AI interpreter is configured.
func (p *Processor) AIEnabled() bool { return p.adapter != nil }

// Credits exposes the account for administrative requests.
func (p *Processor) Credits() *CreditAccount { return p.credits }

// ProcessCommand interprets text and executes the resolved intent.
//
// Routing: when an adapter is configured and the balance covers the call,
// the AI attempt is made and the cost debited immediately, whether or not
// the attempt succeeds. Any adapter or parse failure falls straight back to
// the rule-based resolver for the same request; the debit stands.
func (p *Processor) ProcessCommand(ctx context.Context, text string) Result {
	if p.adapter != nil && p.credits.TryDebit(CostPerAICall) {
		log.Printf("[interp] interpreting with %s: %q", p.adapter.Name(), text)

		reply, err := p.adapter.Infer(ctx, systemPrompt, text)
		if err != nil {
			log.Printf("[interp] AI failed: %v, falling back to rules", err)
			return p.fallback(text)
		}

		intent, err := parseIntent(reply)
		if err != nil {
			log.Printf("[interp] AI reply unparsable: %v, falling back to rules", err)
			return p.fallback(text)
		}

		return p.execute(intent, true)
	}

	if p.adapter != nil {
		log.Printf("[interp] out of credits (%d remaining), using rules only", p.credits.Balance())
	}
	return p.fallback(text)
}

// fallback resolves text with the rule-based resolver. It never consults
// the AI and never debits credits.
func (p *Processor) fallback(text string) Result {
	intent, err := p.resolver.Resolve(text)
	if err != nil {
		return Result{
			OK:               false,
			Message:          err.Error(),
			CreditsRemaining: p.credits.Balance(),
		}
	}
	return p.execute(intent, false)
}

// execute runs the intent against the automation backend.
func (p *Processor) execute(intent *Intent, aiUsed bool) Result {
	var outcome automation.Outcome
	switch intent.Kind {
	case KindOpenApp:
		outcome = p.backend.OpenApp(intent.AppName)
	case KindCloseApp:
		outcome = p.backend.CloseApp(intent.AppName)
	case KindOpenWebsite:
		outcome = p.backend.OpenWebsite(intent.URL)
	case KindTypeText:
		outcome = p.backend.TypeText(intent.Text)
	case KindPressKey:
		outcome = p.backend.PressKey(intent.Key)
	default:
		outcome = automation.Outcome{
			Status:  automation.StatusError,
			Message: "Unknown intent: " + string(intent.Kind),
		}
	}

	return Result{
		OK:               outcome.OK(),
		Message:          outcome.Message,
		AIUsed:           aiUsed,
		CreditsRemaining: p.credits.Balance(),
	}
}
