//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
)

// darwinNotifier posts banner notifications through osascript so the
// operator sees phone pairing events without watching the terminal.
type darwinNotifier struct{}

func newPlatformNotifier() Notifier {
	return &darwinNotifier{}
}

func (d *darwinNotifier) Send(n Notification) error {
	script := fmt.Sprintf(`display notification %q with title %q`, n.Message, n.Title)
	if n.Sound {
		script += ` sound name "default"`
	}
	return exec.Command("osascript", "-e", script).Run()
}

func (d *darwinNotifier) Name() string { return "darwin" }
