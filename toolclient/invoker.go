package toolclient

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"
)

// newInvoker synthesizes the invoke callable for one discovered tool.
// The tool name and server descriptor are captured by value so descriptors
// from one discovery pass never alias each other. Each call validates
// arguments first, then opens its own session, so a failing or slow call
// cannot corrupt another in-flight invocation.
func (c *Client) newInvoker(name string) InvokeFunc {
	server := c.server
	return func(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
		if sch, ok := c.toolSchema(name); ok {
			// local check, fails fast before any subprocess is started
			if err := c.validate(sch, args); err != nil {
				return nil, err
			}
		}

		ctx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		sess, err := c.dialer.Dial(ctx, server)
		if err != nil {
			return nil, invocationError(err, name, "failed to open session")
		}
		defer func() {
			_ = sess.Close()
		}()

		result, err := sess.CallTool(ctx, name, args)
		if err != nil {
			return nil, invocationError(err, name, "call failed")
		}
		return result, nil
	}
}

// invocationError classifies a remote call failure, keeping the original
// cause's message. Deadline misses map to ErrInvocationTimeout, everything
// else to ErrInvocation. No retry happens at this layer.
func invocationError(err error, name, msg string) error {
	wrapped := errors.WithMessagef(err, "%s: tool %q", msg, name)
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Mark(wrapped, ErrInvocationTimeout)
	}
	return errors.Mark(wrapped, ErrInvocation)
}
