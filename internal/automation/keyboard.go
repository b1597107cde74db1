package automation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// keyAliases maps common key names to their canonical form.
var keyAliases = map[string]string{
	"return":   "enter",
	"esc":      "escape",
	"del":      "delete",
	"ctrl":     "control",
	"win":      "windows",
	"cmd":      "command",
	"spacebar": "space",
	"caps":     "caps lock",
	"capslock": "caps lock",
	"pageup":   "page up",
	"pagedown": "page down",
}

// NormalizeKey lowercases a key specifier and applies the alias table to
// each segment of a `+`-joined combination.
func NormalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return ""
	}

	parts := strings.Split(key, "+")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if mapped, ok := keyAliases[part]; ok {
			part = mapped
		}
		parts[i] = part
	}
	return strings.Join(parts, "+")
}

// TypeText injects literal text through the platform keyboard injector.
// A short delay lets the target window regain focus first.
func (l *Local) TypeText(text string) Outcome {
	if text == "" {
		return failure("no text given")
	}

	time.Sleep(l.typeDelay)
	if err := injectText(text); err != nil {
		return failure(fmt.Sprintf("Failed to type text: %v", err))
	}
	return success("Typed: " + truncate(text, 50))
}

// PressKey presses a single key or a `+`-joined combination.
func (l *Local) PressKey(key string) Outcome {
	normalized := NormalizeKey(key)
	if normalized == "" {
		return failure("no key given")
	}

	time.Sleep(l.pressDelay)
	parts := strings.Split(normalized, "+")
	if err := injectKey(parts); err != nil {
		return failure(fmt.Sprintf("Failed to press key: %v", err))
	}

	if len(parts) > 1 {
		return success("Pressed key combination: " + normalized)
	}
	return success("Pressed key: " + normalized)
}

// truncate shortens s to at most n runes. Cutting on a rune boundary keeps
// the result valid UTF-8.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
