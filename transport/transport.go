// Package transport provides the session primitive used to talk to tool
// provider processes. The wire protocol is owned by the underlying MCP
// client library; this package only exposes the three operations the tool
// client needs: open a session, list the capabilities, call one by name.
package transport

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Session is a single initialized connection to a tool provider.
// Sessions are not reused: every discovery and every invocation gets its own.
type Session interface {
	// ListTools returns the provider's capability list in reported order.
	ListTools(ctx context.Context) ([]mcp.Tool, error)
	// CallTool executes the named capability with the given arguments and
	// returns the raw result.
	CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error)
	Close() error
}

// Dialer opens and initializes sessions for a server descriptor.
// Each Dial yields an independent session with its own lifetime.
type Dialer interface {
	Dial(ctx context.Context, srv Server) (Session, error)
}
