package mcpserver

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"pcagent/internal/automation"
	"pcagent/internal/interp"
)

type toolHandlers struct {
	backend *automation.Local
}

type actionOutput struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func outcomeResult(o automation.Outcome) actionOutput {
	return actionOutput{OK: o.OK(), Message: o.Message}
}

// open_app

type openAppInput struct {
	Name string `json:"name" jsonschema:"Application name or alias to open"`
}

func (h *toolHandlers) openApp(ctx context.Context, req *mcpsdk.CallToolRequest, input openAppInput) (*mcpsdk.CallToolResult, actionOutput, error) {
	if input.Name == "" {
		return nil, actionOutput{}, fmt.Errorf("name is required")
	}
	return nil, outcomeResult(h.backend.OpenApp(input.Name)), nil
}

// close_app

type closeAppInput struct {
	Name string `json:"name" jsonschema:"Application name or alias to close"`
}

func (h *toolHandlers) closeApp(ctx context.Context, req *mcpsdk.CallToolRequest, input closeAppInput) (*mcpsdk.CallToolResult, actionOutput, error) {
	if input.Name == "" {
		return nil, actionOutput{}, fmt.Errorf("name is required")
	}
	return nil, outcomeResult(h.backend.CloseApp(input.Name)), nil
}

// open_website

type openWebsiteInput struct {
	URL string `json:"url" jsonschema:"Website URL or site alias to open"`
}

func (h *toolHandlers) openWebsite(ctx context.Context, req *mcpsdk.CallToolRequest, input openWebsiteInput) (*mcpsdk.CallToolResult, actionOutput, error) {
	if input.URL == "" {
		return nil, actionOutput{}, fmt.Errorf("url is required")
	}
	url := input.URL
	if target, ok := h.backend.Aliases().Sites[strings.ToLower(url)]; ok {
		url = target
	}
	return nil, outcomeResult(h.backend.OpenWebsite(url)), nil
}

// type_text

type typeTextInput struct {
	Text string `json:"text" jsonschema:"Text to type into the focused window"`
}

func (h *toolHandlers) typeText(ctx context.Context, req *mcpsdk.CallToolRequest, input typeTextInput) (*mcpsdk.CallToolResult, actionOutput, error) {
	if input.Text == "" {
		return nil, actionOutput{}, fmt.Errorf("text is required")
	}
	return nil, outcomeResult(h.backend.TypeText(input.Text)), nil
}

// press_key

type pressKeyInput struct {
	Key string `json:"key" jsonschema:"Key or combination to press, e.g. 'enter' or 'ctrl+c'"`
}

func (h *toolHandlers) pressKey(ctx context.Context, req *mcpsdk.CallToolRequest, input pressKeyInput) (*mcpsdk.CallToolResult, actionOutput, error) {
	if input.Key == "" {
		return nil, actionOutput{}, fmt.Errorf("key is required")
	}
	return nil, outcomeResult(h.backend.PressKey(input.Key)), nil
}

// resolve_command

type resolveCommandInput struct {
	Text string `json:"text" jsonschema:"Natural-language command to resolve"`
}

type resolveCommandOutput struct {
	Intent  string `json:"intent"`
	AppName string `json:"app_name,omitempty"`
	URL     string `json:"url,omitempty"`
	Text    string `json:"text,omitempty"`
	Key     string `json:"key,omitempty"`
}

func (h *toolHandlers) resolveCommand(ctx context.Context, req *mcpsdk.CallToolRequest, input resolveCommandInput) (*mcpsdk.CallToolResult, resolveCommandOutput, error) {
	if input.Text == "" {
		return nil, resolveCommandOutput{}, fmt.Errorf("text is required")
	}
	resolver := interp.NewResolver(h.backend.Aliases())
	intent, err := resolver.Resolve(input.Text)
	if err != nil {
		return nil, resolveCommandOutput{}, err
	}
	return nil, resolveCommandOutput{
		Intent:  string(intent.Kind),
		AppName: intent.AppName,
		URL:     intent.URL,
		Text:    intent.Text,
		Key:     intent.Key,
	}, nil
}

// list_aliases

type listAliasesInput struct{}

type listAliasesOutput struct {
	Apps  []string `json:"apps"`
	Sites []string `json:"sites"`
}

func (h *toolHandlers) listAliases(ctx context.Context, req *mcpsdk.CallToolRequest, input listAliasesInput) (*mcpsdk.CallToolResult, listAliasesOutput, error) {
	a := h.backend.Aliases()
	return nil, listAliasesOutput{Apps: a.AppNames(), Sites: a.SiteNames()}, nil
}
