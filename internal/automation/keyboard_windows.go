//go:build windows

package automation

import (
	"fmt"
	"os/exec"
	"strings"
)

// sendKeysNames maps canonical key names to SendKeys codes.
var sendKeysNames = map[string]string{
	"enter":     "{ENTER}",
	"escape":    "{ESC}",
	"delete":    "{DELETE}",
	"backspace": "{BACKSPACE}",
	"tab":       "{TAB}",
	"space":     " ",
	"caps lock": "{CAPSLOCK}",
	"page up":   "{PGUP}",
	"page down": "{PGDN}",
	"home":      "{HOME}",
	"end":       "{END}",
	"insert":    "{INSERT}",
	"up":        "{UP}",
	"down":      "{DOWN}",
	"left":      "{LEFT}",
	"right":     "{RIGHT}",
}

// sendKeysModifiers maps modifier names to SendKeys prefixes.
var sendKeysModifiers = map[string]string{
	"control": "^",
	"alt":     "%",
	"shift":   "+",
}

func injectText(text string) error {
	return sendKeys(escapeSendKeys(text))
}

func injectKey(parts []string) error {
	var prefix strings.Builder
	key := parts[len(parts)-1]
	for _, part := range parts[:len(parts)-1] {
		if mod, ok := sendKeysModifiers[part]; ok {
			prefix.WriteString(mod)
		}
	}

	code, ok := sendKeysNames[key]
	if !ok {
		if len(key) >= 2 && key[0] == 'f' { // function keys: f1..f12
			code = "{" + strings.ToUpper(key) + "}"
		} else {
			code = escapeSendKeys(key)
		}
	}
	return sendKeys(prefix.String() + code)
}

func sendKeys(sequence string) error {
	script := fmt.Sprintf(
		`(New-Object -ComObject WScript.Shell).SendKeys(%q)`, sequence)
	return exec.Command("powershell", "-NoProfile", "-Command", script).Run()
}

// escapeSendKeys wraps SendKeys metacharacters in braces.
func escapeSendKeys(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '+', '^', '%', '~', '(', ')', '{', '}', '[', ']':
			b.WriteString("{" + string(r) + "}")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
