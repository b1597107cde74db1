//go:build !darwin && !linux && !windows

package notify

// noopNotifier discards notifications on platforms without a desktop
// notification facility; the agent itself still runs there.
type noopNotifier struct{}

func newPlatformNotifier() Notifier {
	return &noopNotifier{}
}

func (n *noopNotifier) Send(_ Notification) error { return nil }
func (n *noopNotifier) Name() string              { return "noop" }
