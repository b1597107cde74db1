package commands

import (
	"fmt"

	"pcagent/internal/automation"
	"pcagent/internal/ui"
)

// RunAliases lists the app and website aliases the agent can act on,
// including any user overrides.
func RunAliases() {
	aliases, err := automation.Load(aliasesPath())
	if err != nil {
		ui.ShowWarning("Alias overrides ignored: %v", err)
		aliases = automation.Builtin()
	}

	ui.ShowHeader("App Aliases")
	for i, name := range aliases.AppNames() {
		ui.ShowItem(i+1, fmt.Sprintf("%s -> %s", name, aliases.Apps[name]))
	}
	fmt.Println()
	ui.ShowHeader("Site Aliases")
	for i, name := range aliases.SiteNames() {
		ui.ShowItem(i+1, fmt.Sprintf("%s -> %s", name, aliases.Sites[name]))
	}
	fmt.Println()
	ui.ShowInfo("Override with %s", aliasesPath())
}
