package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/uidoc"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type componentListResult struct {
	Components []*uidoc.Component `json:"components"`
	Total      int                `json:"total"`
}

type exampleListResult struct {
	Examples []*uidoc.Example `json:"examples"`
	Total    int              `json:"total"`
}

// AddListComponentsTool registers the list_components tool.
func AddListComponentsTool(s *server.MCPServer, service uidoc.ComponentService) {
	tool := mcp.NewTool(
		"list_components",
		mcp.WithDescription("List every component in the registry's documentation catalog. Returns each component's name, description, and documentation URL in catalog order."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	s.AddTool(tool, NewListComponentsHandler(service))
}

// NewListComponentsHandler creates the handler for the list_components tool.
func NewListComponentsHandler(service uidoc.ComponentService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		components, err := service.ListComponents(ctx)
		if err != nil {
			return toolError(err), nil
		}
		if components == nil {
			components = []*uidoc.Component{}
		}
		return marshalToolResult(componentListResult{Components: components, Total: len(components)})
	}
}

// AddGetComponentDetailsTool registers the get_component_details tool.
func AddGetComponentDetailsTool(s *server.MCPServer, service uidoc.ComponentService) {
	tool := mcp.NewTool(
		"get_component_details",
		mcp.WithDescription("Get the extracted documentation record for one component: description, installation command, usage snippet, source URL, and variant props."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Component name as it appears in the catalog (e.g. 'button')")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	s.AddTool(tool, NewGetComponentDetailsHandler(service))
}

// NewGetComponentDetailsHandler creates the handler for the
// get_component_details tool.
func NewGetComponentDetailsHandler(service uidoc.ComponentService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, errResult := stringArgument(request, "name")
		if errResult != nil {
			return errResult, nil
		}
		detail, err := service.GetComponentDetails(ctx, name)
		if err != nil {
			return toolError(err), nil
		}
		return marshalToolResult(detail)
	}
}

// AddGetComponentExamplesTool registers the get_component_examples tool.
func AddGetComponentExamplesTool(s *server.MCPServer, service uidoc.ComponentService) {
	tool := mcp.NewTool(
		"get_component_examples",
		mcp.WithDescription("Get a component's code examples in collection order, including usage and link snippets and the registry demo when available."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Component name as it appears in the catalog (e.g. 'button')")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	s.AddTool(tool, NewGetComponentExamplesHandler(service))
}

// NewGetComponentExamplesHandler creates the handler for the
// get_component_examples tool.
func NewGetComponentExamplesHandler(service uidoc.ComponentService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, errResult := stringArgument(request, "name")
		if errResult != nil {
			return errResult, nil
		}
		examples, err := service.GetComponentExamples(ctx, name)
		if err != nil {
			return toolError(err), nil
		}
		if examples == nil {
			examples = []*uidoc.Example{}
		}
		return marshalToolResult(exampleListResult{Examples: examples, Total: len(examples)})
	}
}

// AddSearchComponentsTool registers the search_components tool.
func AddSearchComponentsTool(s *server.MCPServer, service uidoc.ComponentService) {
	tool := mcp.NewTool(
		"search_components",
		mcp.WithDescription("Search the component catalog by name or description substring (case-insensitive). Returns matching components in catalog order."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Substring to match against component names and descriptions")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	s.AddTool(tool, NewSearchComponentsHandler(service))
}

// NewSearchComponentsHandler creates the handler for the search_components
// tool.
func NewSearchComponentsHandler(service uidoc.ComponentService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, errResult := stringArgument(request, "query")
		if errResult != nil {
			return errResult, nil
		}
		components, err := service.SearchComponents(ctx, query)
		if err != nil {
			return toolError(err), nil
		}
		if components == nil {
			components = []*uidoc.Component{}
		}
		return marshalToolResult(componentListResult{Components: components, Total: len(components)})
	}
}

// stringArgument extracts a string argument from a tool request. A present
// but empty value is returned as-is so the service's own validation decides.
func stringArgument(request mcp.CallToolRequest, key string) (string, *mcp.CallToolResult) {
	argsMap, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		return "", mcp.NewToolResultError("invalid arguments format")
	}
	value, ok := argsMap[key].(string)
	if !ok {
		return "", mcp.NewToolResultError(fmt.Sprintf("%s parameter is required", key))
	}
	return value, nil
}

// toolError converts a service error into a tool-level error result.
func toolError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(uidoc.ErrorMessage(err))
}

// marshalToolResult marshals a response to JSON and returns it as a text
// result.
func marshalToolResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
