package automation

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Aliases maps friendly names to launchable commands and canonical URLs.
// These tables back the rule-based resolver when AI is unavailable.
type Aliases struct {
	Apps  map[string]string `yaml:"apps"`  // alias -> executable
	Sites map[string]string `yaml:"sites"` // alias -> canonical URL
}

var builtinSites = map[string]string{
	"google":    "https://www.google.com",
	"youtube":   "https://www.youtube.com",
	"facebook":  "https://www.facebook.com",
	"twitter":   "https://www.twitter.com",
	"instagram": "https://www.instagram.com",
	"reddit":    "https://www.reddit.com",
	"gmail":     "https://mail.google.com",
	"github":    "https://www.github.com",
}

var builtinAppsWindows = map[string]string{
	"notepad":        "notepad.exe",
	"calculator":     "calc.exe",
	"paint":          "mspaint.exe",
	"browser":        "chrome.exe",
	"file explorer":  "explorer.exe",
	"command prompt": "cmd.exe",
	"task manager":   "taskmgr.exe",
}

var builtinAppsDarwin = map[string]string{
	"notepad":       "TextEdit",
	"calculator":    "Calculator",
	"browser":       "Safari",
	"file explorer": "Finder",
	"terminal":      "Terminal",
	"music":         "Music",
}

var builtinAppsLinux = map[string]string{
	"notepad":       "gedit",
	"calculator":    "gnome-calculator",
	"browser":       "firefox",
	"file explorer": "nautilus",
	"terminal":      "gnome-terminal",
}

// Builtin returns the default alias tables for the current platform.
func Builtin() *Aliases {
	var apps map[string]string
	switch runtime.GOOS {
	case "windows":
		apps = builtinAppsWindows
	case "darwin":
		apps = builtinAppsDarwin
	default:
		apps = builtinAppsLinux
	}

	a := &Aliases{
		Apps:  make(map[string]string, len(apps)),
		Sites: make(map[string]string, len(builtinSites)),
	}
	for k, v := range apps {
		a.Apps[k] = v
	}
	for k, v := range builtinSites {
		a.Sites[k] = v
	}
	return a
}

// Load returns the builtin tables merged with user overrides from path.
// A missing override file is not an error.
func Load(path string) (*Aliases, error) {
	a := Builtin()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return a, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read aliases: %w", err)
	}

	var override Aliases
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse aliases: %w", err)
	}

	for k, v := range override.Apps {
		a.Apps[strings.ToLower(k)] = v
	}
	for k, v := range override.Sites {
		a.Sites[strings.ToLower(k)] = v
	}
	return a, nil
}

// AppNames returns the known app aliases, sorted for stable messages.
func (a *Aliases) AppNames() []string {
	names := make([]string, 0, len(a.Apps))
	for name := range a.Apps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SiteNames returns the known site aliases, sorted for stable messages.
func (a *Aliases) SiteNames() []string {
	names := make([]string, 0, len(a.Sites))
	for name := range a.Sites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
