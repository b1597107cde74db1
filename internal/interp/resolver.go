package interp

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"pcagent/internal/automation"
)

// Resolver is the deterministic, rule-based fallback used when the AI
// interpreter is unavailable, out of credits, or failed. It is a pure
// function of the lowercased input text and the fixed alias tables.
type Resolver struct {
	aliases *automation.Aliases
}

// NewResolver creates a resolver over the given alias tables.
func NewResolver(aliases *automation.Aliases) *Resolver {
	return &Resolver{aliases: aliases}
}

var (
	websiteKeywords = []string{"open", "go to", "visit", "browse"}
	openKeywords    = []string{"open", "launch", "start", "run"}
	closeKeywords   = []string{"close", "exit", "stop", "quit", "kill"}
	typeKeywords    = []string{"type ", "write "}
)

// Resolve maps free text to an Intent. Rules are evaluated in a fixed
// priority order; the first match wins. Unresolvable text yields an error
// carrying the user-facing message, never a partially filled intent.
func (r *Resolver) Resolve(text string) (*Intent, error) {
	lower := strings.ToLower(text)

	// Key presses: "press <key>" prefix.
	if strings.HasPrefix(lower, "press ") {
		key := strings.TrimSpace(afterKeyword(text, lower, "press ", 0))
		return &Intent{Kind: KindPressKey, Key: key}, nil
	}

	// Typed text: everything after the first "type " or "write ".
	for _, keyword := range typeKeywords {
		if idx := strings.Index(lower, keyword); idx >= 0 {
			payload := strings.TrimSpace(afterKeyword(text, lower, keyword, idx))
			return &Intent{Kind: KindTypeText, Text: payload}, nil
		}
	}

	// Known websites take priority over app launching. Alias tables are
	// walked in sorted order so identical input always resolves identically.
	if containsAny(lower, websiteKeywords) {
		for _, name := range r.aliases.SiteNames() {
			if strings.Contains(lower, name) {
				return &Intent{Kind: KindOpenWebsite, URL: r.aliases.Sites[name]}, nil
			}
		}
	}

	if containsAny(lower, openKeywords) {
		for _, name := range r.aliases.AppNames() {
			if strings.Contains(lower, name) {
				return &Intent{Kind: KindOpenApp, AppName: name}, nil
			}
		}
		return nil, fmt.Errorf(
			"AI credits exhausted. Only predefined apps/websites available. Apps: %s. Sites: %s",
			strings.Join(r.aliases.AppNames(), ", "),
			strings.Join(r.aliases.SiteNames(), ", "))
	}

	if containsAny(lower, closeKeywords) {
		for _, name := range r.aliases.AppNames() {
			if strings.Contains(lower, name) {
				return &Intent{Kind: KindCloseApp, AppName: name}, nil
			}
		}
		return nil, fmt.Errorf(
			"AI credits exhausted. Only predefined apps available: %s",
			strings.Join(r.aliases.AppNames(), ", "))
	}

	return nil, fmt.Errorf(
		"Could not understand command. Try 'open [app/website]', 'close [app]', 'type [text]', or 'press [key]'")
}

// afterKeyword returns the tail of text following the keyword match that
// starts at byte offset idx of the lowercased text. Lowercasing maps runes
// one to one but can change their byte lengths, so byte offsets into lower
// are translated to text through rune counts.
func afterKeyword(text, lower, keyword string, idx int) string {
	skip := utf8.RuneCountInString(lower[:idx]) + utf8.RuneCountInString(keyword)
	for i := range text {
		if skip == 0 {
			return text[i:]
		}
		skip--
	}
	return ""
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
