package relay

import "context"

// Envelope types exchanged with the relay.
const (
	TypeAuth         = "auth"
	TypeAuthResponse = "auth_response"
	TypeRelayStatus  = "relay_status"
	TypeAICommand    = "ai_command"
	TypeCheckCredits = "check_credits"
	TypeAddCredits   = "add_credits"
)

// Envelope is the discriminated wire message. It carries the union of
// payload fields used by the known envelope types; handlers read the
// fields their type defines.
type Envelope struct {
	Type  string `json:"type"`
	Token string `json:"token,omitempty"`

	// relay_status
	PhoneConnected *bool `json:"phone_connected,omitempty"`

	// ai_command
	Text string `json:"text,omitempty"`

	// add_credits
	Amount int `json:"amount,omitempty"`
}

// AuthAck acknowledges an inbound auth envelope.
type AuthAck struct {
	OK   bool   `json:"ok"`
	Auth bool   `json:"auth"`
	Type string `json:"type"`
}

// ErrorResponse reports a failed or unrecognized request.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Handler processes one inbound envelope and returns the response to send
// back on the same connection. A returned error becomes an ErrorResponse.
type Handler func(ctx context.Context, env Envelope) (any, error)
