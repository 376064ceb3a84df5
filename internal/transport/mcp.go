package transport

import (
	"context"
	"encoding/json"

	"github.com/hance08/zenith/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const ServerName = "Banking Server"

// NewMCPServer exposes every registry tool over the Model Context Protocol.
func NewMCPServer(registry *tools.Registry, version string) *server.MCPServer {
	s := server.NewMCPServer(ServerName, version, server.WithToolCapabilities(false))

	for _, t := range registry.Tools() {
		s.AddTool(mcpTool(t), mcpHandler(registry, t.Name))
	}
	return s
}

func mcpTool(t tools.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}

	for _, p := range t.Params {
		props := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			props = append(props, mcp.Required())
		}

		switch p.Type {
		case tools.ParamString:
			opts = append(opts, mcp.WithString(p.Name, props...))
		default:
			if def, ok := p.Default.(int); ok {
				props = append(props, mcp.DefaultNumber(float64(def)))
			}
			opts = append(opts, mcp.WithNumber(p.Name, props...))
		}
	}

	return mcp.NewTool(t.Name, opts...)
}

func mcpHandler(registry *tools.Registry, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := registry.Call(ctx, name, request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		body, err := json.Marshal(res)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(string(body)), nil
	}
}
