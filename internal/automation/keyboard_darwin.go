//go:build darwin

package automation

import (
	"fmt"
	"os/exec"
	"strings"
)

// darwinKeyCodes maps canonical key names to macOS virtual key codes for
// keys that cannot be sent with a plain keystroke.
var darwinKeyCodes = map[string]string{
	"enter":     "36",
	"escape":    "53",
	"delete":    "117",
	"backspace": "51",
	"tab":       "48",
	"space":     "49",
	"home":      "115",
	"end":       "119",
	"page up":   "116",
	"page down": "121",
	"up":        "126",
	"down":      "125",
	"left":      "123",
	"right":     "124",
}

// darwinModifiers maps modifier names to System Events modifier clauses.
var darwinModifiers = map[string]string{
	"control": "control down",
	"command": "command down",
	"windows": "command down",
	"alt":     "option down",
	"option":  "option down",
	"shift":   "shift down",
}

func injectText(text string) error {
	escaped := strings.ReplaceAll(text, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	script := fmt.Sprintf(`tell application "System Events" to keystroke "%s"`, escaped)
	return exec.Command("osascript", "-e", script).Run()
}

func injectKey(parts []string) error {
	var modifiers []string
	key := parts[len(parts)-1]
	for _, part := range parts[:len(parts)-1] {
		if m, ok := darwinModifiers[part]; ok {
			modifiers = append(modifiers, m)
		}
	}

	var action string
	if code, ok := darwinKeyCodes[key]; ok {
		action = "key code " + code
	} else {
		action = fmt.Sprintf(`keystroke "%s"`, key)
	}

	script := fmt.Sprintf(`tell application "System Events" to %s`, action)
	if len(modifiers) > 0 {
		script += " using {" + strings.Join(modifiers, ", ") + "}"
	}
	return exec.Command("osascript", "-e", script).Run()
}
