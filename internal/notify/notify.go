package notify

import "strings"

// Notification is a short message surfaced to the machine's operator when
// something happens on the relay (controller paired, command executed).
type Notification struct {
	Title   string
	Message string
	Sound   bool
}

// Notifier delivers notifications.
type Notifier interface {
	Send(n Notification) error
	Name() string
}

// NewDesktopNotifier returns a platform-specific desktop notification sender.
func NewDesktopNotifier() Notifier {
	return newPlatformNotifier()
}

// MultiNotifier fans a notification out to several notifiers.
type MultiNotifier struct {
	notifiers []Notifier
}

// NewMultiNotifier creates a MultiNotifier from the given notifiers.
func NewMultiNotifier(ns ...Notifier) *MultiNotifier {
	return &MultiNotifier{notifiers: ns}
}

// Send dispatches to all registered notifiers, attempting every one and
// returning the first error encountered.
func (m *MultiNotifier) Send(n Notification) error {
	var firstErr error
	for _, notifier := range m.notifiers {
		if err := notifier.Send(n); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Name returns the combined name of the wrapped notifiers.
func (m *MultiNotifier) Name() string {
	names := make([]string, len(m.notifiers))
	for i, n := range m.notifiers {
		names[i] = n.Name()
	}
	return "multi(" + strings.Join(names, ",") + ")"
}
