package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/effective-security/mcptools/toolclient"
)

// Remote exposes one discovered tool descriptor as an ITool. The input is a
// JSON object of keyword arguments; the MCP result is flattened to text so
// agent frameworks can treat remote tools like local ones.
type Remote struct {
	desc *toolclient.ToolDescriptor
}

var _ ITool = (*Remote)(nil)

func NewRemote(desc *toolclient.ToolDescriptor) *Remote {
	return &Remote{desc: desc}
}

func (t *Remote) Name() string {
	return t.desc.Name
}

func (t *Remote) Description() string {
	return t.desc.Description
}

func (t *Remote) Parameters() any {
	return t.desc.InputSchema
}

func (t *Remote) Call(ctx context.Context, input string) (string, error) {
	var args map[string]any
	if strings.TrimSpace(input) != "" {
		if err := json.Unmarshal([]byte(input), &args); err != nil {
			return "", errors.WithMessage(ErrFailedUnmarshalInput, err.Error())
		}
	}

	result, err := t.desc.Invoke(ctx, args)
	if err != nil {
		return "", err
	}
	return flattenResult(result)
}

// flattenResult converts an MCP call result to a plain string: the first
// text content verbatim, any other content JSON-encoded.
func flattenResult(result *mcp.CallToolResult) (string, error) {
	if result == nil {
		return "", nil
	}
	if result.IsError {
		if len(result.Content) > 0 {
			if text, ok := mcp.AsTextContent(result.Content[0]); ok {
				return "", errors.Errorf("tool execution failed: %s", text.Text)
			}
		}
		return "", errors.New("tool execution failed")
	}
	if len(result.Content) == 0 {
		return "", nil
	}
	if text, ok := mcp.AsTextContent(result.Content[0]); ok {
		return text.Text, nil
	}

	js, err := json.Marshal(result.Content[0])
	if err != nil {
		return "", errors.Wrap(err, "failed to encode tool result")
	}
	return string(js), nil
}
