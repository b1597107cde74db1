package interp

import "context"

// Adapter converts natural language into the interpreter's reply text.
// Implementations may be unreachable or return unparsable output; the
// Processor falls back to rule-based resolution in either case.
type Adapter interface {
	// Name identifies the adapter in logs and diagnostics.
	Name() string

	// Infer sends the instruction prompt plus the user's text and returns
	// the raw model reply.
	Infer(ctx context.Context, system, user string) (string, error)
}
