package interp

import (
	"strings"
	"testing"

	"pcagent/internal/automation"
)

func testAliases() *automation.Aliases {
	return &automation.Aliases{
		Apps: map[string]string{
			"notepad":    "notepad.exe",
			"calculator": "calc.exe",
			"browser":    "chrome.exe",
		},
		Sites: map[string]string{
			"youtube": "https://www.youtube.com",
			"google":  "https://www.google.com",
			"github":  "https://www.github.com",
		},
	}
}

func TestResolveRules(t *testing.T) {
	r := NewResolver(testAliases())

	tests := []struct {
		name string
		text string
		want Intent
	}{
		{"press prefix", "press enter", Intent{Kind: KindPressKey, Key: "enter"}},
		{"press combination", "press ctrl+c", Intent{Kind: KindPressKey, Key: "ctrl+c"}},
		{"type keyword", "type hello world", Intent{Kind: KindTypeText, Text: "hello world"}},
		{"write keyword", "please write this is a test", Intent{Kind: KindTypeText, Text: "this is a test"}},
		{"type preserves case", "type Hello World", Intent{Kind: KindTypeText, Text: "Hello World"}},
		{"open website", "open youtube", Intent{Kind: KindOpenWebsite, URL: "https://www.youtube.com"}},
		{"go to website", "go to google please", Intent{Kind: KindOpenWebsite, URL: "https://www.google.com"}},
		{"visit website", "visit github", Intent{Kind: KindOpenWebsite, URL: "https://www.github.com"}},
		{"site beats app", "open browser and go to youtube", Intent{Kind: KindOpenWebsite, URL: "https://www.youtube.com"}},
		{"open app", "open notepad", Intent{Kind: KindOpenApp, AppName: "notepad"}},
		{"launch app", "launch the calculator", Intent{Kind: KindOpenApp, AppName: "calculator"}},
		{"case insensitive", "OPEN NOTEPAD", Intent{Kind: KindOpenApp, AppName: "notepad"}},
		{"close app", "close notepad", Intent{Kind: KindCloseApp, AppName: "notepad"}},
		{"kill app", "kill the browser", Intent{Kind: KindCloseApp, AppName: "browser"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.text)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.text, err)
			}
			if *got != tt.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.text, *got, tt.want)
			}
		})
	}
}

// Lowercasing can change a rune's byte length (U+023A is two bytes, its
// lowercase U+2C65 is three), so keyword offsets found in the lowercased
// text must not be used to slice the original bytes directly.
func TestResolveLengthChangingLowercase(t *testing.T) {
	r := NewResolver(testAliases())

	tests := []struct {
		name string
		text string
		want Intent
	}{
		{"type after widening runes", strings.Repeat("Ⱥ", 6) + "type hello", Intent{Kind: KindTypeText, Text: "hello"}},
		{"write after widening runes", "ȺȺ please write Secret", Intent{Kind: KindTypeText, Text: "Secret"}},
		{"narrowing kelvin sign", "KK type ok", Intent{Kind: KindTypeText, Text: "ok"}},
		{"uppercase type keyword", "TYPE Mixed Case", Intent{Kind: KindTypeText, Text: "Mixed Case"}},
		{"uppercase press prefix", "PRESS Enter", Intent{Kind: KindPressKey, Key: "Enter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.text)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.text, err)
			}
			if *got != tt.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.text, *got, tt.want)
			}
		})
	}
}

func TestResolveFailures(t *testing.T) {
	r := NewResolver(testAliases())

	tests := []struct {
		name    string
		text    string
		wantSub string
	}{
		{"unknown app to open", "open supercollider", "Apps: "},
		{"open failure lists sites", "open supercollider", "Sites: "},
		{"unknown app to close", "close supercollider", "Only predefined apps available"},
		{"gibberish", "flarb the wozzle", "Could not understand command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(tt.text)
			if err == nil {
				t.Fatalf("Resolve(%q) succeeded, want error", tt.text)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Resolve(%q) error = %q, want substring %q", tt.text, err, tt.wantSub)
			}
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	r := NewResolver(testAliases())
	// Two known apps in one sentence: sorted table order decides.
	first, err := r.Resolve("open notepad and calculator")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		got, err := r.Resolve("open notepad and calculator")
		if err != nil {
			t.Fatal(err)
		}
		if *got != *first {
			t.Fatalf("resolution changed between calls: %+v vs %+v", got, first)
		}
	}
	if first.AppName != "calculator" {
		t.Errorf("AppName = %q, want calculator (first in sorted order)", first.AppName)
	}
}
