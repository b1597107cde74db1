package commands

import (
	"log"

	"pcagent/internal/automation"
	"pcagent/internal/mcpserver"
)

// RunMCP serves the automation tools over MCP stdio.
func RunMCP() error {
	aliases, err := automation.Load(aliasesPath())
	if err != nil {
		log.Printf("[mcp] alias overrides ignored: %v", err)
		aliases = automation.Builtin()
	}
	return mcpserver.RunServer(automation.NewLocal(aliases))
}
