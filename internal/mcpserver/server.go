package mcpserver

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"pcagent/internal/automation"
)

// RunServer starts the MCP server over stdio transport, exposing the
// local automation backend as tools.
func RunServer(backend *automation.Local) error {
	server := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "pcagent",
			Version: "1.0.0",
		},
		nil,
	)

	h := &toolHandlers{backend: backend}

	// Register tools
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "open_app",
		Description: "Open an application on this machine by name or alias",
	}, h.openApp)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "close_app",
		Description: "Close all running instances of an application by name or alias",
	}, h.closeApp)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "open_website",
		Description: "Open a website in the default browser by URL or site alias",
	}, h.openWebsite)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "type_text",
		Description: "Type text into the currently focused window",
	}, h.typeText)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "press_key",
		Description: "Press a key or key combination, e.g. 'enter' or 'ctrl+c'",
	}, h.pressKey)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "resolve_command",
		Description: "Resolve a natural-language command into a concrete automation intent without executing it",
	}, h.resolveCommand)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "list_aliases",
		Description: "List the app and website aliases known to this machine",
	}, h.listAliases)

	return server.Run(context.Background(), &mcpsdk.StdioTransport{})
}
