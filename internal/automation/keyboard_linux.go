//go:build linux

package automation

import (
	"fmt"
	"os/exec"
	"strings"
)

// xdotoolKeys maps canonical key names to X keysyms.
var xdotoolKeys = map[string]string{
	"enter":     "Return",
	"escape":    "Escape",
	"delete":    "Delete",
	"control":   "ctrl",
	"windows":   "super",
	"command":   "super",
	"space":     "space",
	"tab":       "Tab",
	"backspace": "BackSpace",
	"caps lock": "Caps_Lock",
	"page up":   "Page_Up",
	"page down": "Page_Down",
	"home":      "Home",
	"end":       "End",
	"insert":    "Insert",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
}

func injectText(text string) error {
	path, err := exec.LookPath("xdotool")
	if err != nil {
		return fmt.Errorf("keyboard automation not available (xdotool not found)")
	}
	return exec.Command(path, "type", "--delay", "100", "--", text).Run()
}

func injectKey(parts []string) error {
	path, err := exec.LookPath("xdotool")
	if err != nil {
		return fmt.Errorf("keyboard automation not available (xdotool not found)")
	}

	keys := make([]string, len(parts))
	for i, part := range parts {
		if sym, ok := xdotoolKeys[part]; ok {
			part = sym
		}
		keys[i] = part
	}
	return exec.Command(path, "key", strings.Join(keys, "+")).Run()
}
