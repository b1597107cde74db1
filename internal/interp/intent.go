package interp

import "fmt"

// Kind identifies what an Intent asks the automation backend to do.
type Kind string

const (
	KindOpenApp     Kind = "open_app"
	KindCloseApp    Kind = "close_app"
	KindOpenWebsite Kind = "open_website"
	KindTypeText    Kind = "type_text"
	KindPressKey    Kind = "press_key"
)

// Intent is a structured, executable representation of a user request.
// The JSON field names match what the AI interpreter is instructed to emit.
type Intent struct {
	Kind    Kind   `json:"intent"`
	AppName string `json:"app_name,omitempty"`
	URL     string `json:"url,omitempty"`
	Text    string `json:"text,omitempty"`
	Key     string `json:"key,omitempty"`
}

// Validate checks that the intent names a known kind and carries the
// parameter that kind requires.
func (in *Intent) Validate() error {
	switch in.Kind {
	case KindOpenApp, KindCloseApp:
		if in.AppName == "" {
			return fmt.Errorf("intent %s requires app_name", in.Kind)
		}
	case KindOpenWebsite:
		if in.URL == "" {
			return fmt.Errorf("intent %s requires url", in.Kind)
		}
	case KindTypeText:
		if in.Text == "" {
			return fmt.Errorf("intent %s requires text", in.Kind)
		}
	case KindPressKey:
		if in.Key == "" {
			return fmt.Errorf("intent %s requires key", in.Kind)
		}
	default:
		return fmt.Errorf("unknown intent: %s", in.Kind)
	}
	return nil
}
