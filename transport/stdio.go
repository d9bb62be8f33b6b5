package transport

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/mark3labs/mcp-go/client"
	mcptransport "github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/mcptools", "transport")

// StdioDialer runs the tool provider as a subprocess and speaks MCP over its
// standard streams.
type StdioDialer struct {
	clientName    string
	clientVersion string
}

func NewStdioDialer() *StdioDialer {
	return &StdioDialer{
		clientName:    "mcptools",
		clientVersion: "1.0.0",
	}
}

// WithClientInfo sets the client identity reported during session initialization.
func (d *StdioDialer) WithClientInfo(name, version string) *StdioDialer {
	d.clientName = name
	d.clientVersion = version
	return d
}

// Dial starts the provider subprocess and initializes the MCP session.
func (d *StdioDialer) Dial(ctx context.Context, srv Server) (Session, error) {
	tr := mcptransport.NewStdio(srv.Command, srv.EnvSlice(), srv.Args...)
	cli := client.NewClient(tr)

	if err := cli.Start(ctx); err != nil {
		return nil, errors.WithMessagef(err, "failed to start client for %q", srv.Command)
	}

	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    d.clientName,
		Version: d.clientVersion,
	}
	initRequest.Params.Capabilities = mcp.ClientCapabilities{}

	serverInfo, err := cli.Initialize(ctx, initRequest)
	if err != nil {
		_ = cli.Close()
		return nil, errors.WithMessagef(err, "failed to initialize session for %q", srv.Command)
	}

	logger.ContextKV(ctx, xlog.DEBUG,
		"server", serverInfo.ServerInfo.Name,
		"version", serverInfo.ServerInfo.Version,
	)

	return &stdioSession{
		cli:  cli,
		caps: serverInfo.Capabilities,
	}, nil
}

type stdioSession struct {
	cli  *client.Client
	caps mcp.ServerCapabilities
}

func (s *stdioSession) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	// Providers without tool support report an empty list, not an error.
	if s.caps.Tools == nil {
		return nil, nil
	}
	result, err := s.cli.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, err
	}
	return result.Tools, nil
}

func (s *stdioSession) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = args
	return s.cli.CallTool(ctx, request)
}

func (s *stdioSession) Close() error {
	return s.cli.Close()
}
