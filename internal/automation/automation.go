package automation

import "time"

// Status classifies the outcome of an automation action.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Outcome is the result of a single OS automation action.
type Outcome struct {
	Status  Status
	Message string
}

// OK reports whether the action succeeded.
func (o Outcome) OK() bool { return o.Status == StatusSuccess }

func success(msg string) Outcome { return Outcome{Status: StatusSuccess, Message: msg} }
func failure(msg string) Outcome { return Outcome{Status: StatusError, Message: msg} }

// Backend executes atomic OS actions on the local machine.
type Backend interface {
	OpenApp(name string) Outcome
	CloseApp(name string) Outcome
	OpenWebsite(url string) Outcome
	TypeText(text string) Outcome
	PressKey(key string) Outcome
}

// Local is the Backend implementation for the machine the agent runs on.
type Local struct {
	aliases *Aliases

	// Delays before injecting input, giving the target window time to
	// regain focus after the user switches away from the controller.
	typeDelay  time.Duration
	pressDelay time.Duration
}

// NewLocal creates a Local backend using the given alias tables.
func NewLocal(aliases *Aliases) *Local {
	if aliases == nil {
		aliases = Builtin()
	}
	return &Local{
		aliases:    aliases,
		typeDelay:  1500 * time.Millisecond,
		pressDelay: 500 * time.Millisecond,
	}
}

// Aliases returns the alias tables the backend resolves against.
func (l *Local) Aliases() *Aliases { return l.aliases }
