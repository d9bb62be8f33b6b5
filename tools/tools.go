// Package tools adapts discovered tool descriptors to the tool interface
// consumed by agent frameworks, and provides prompt helpers over tool sets.
package tools

import (
	"github.com/effective-security/mcptools/llmutils"
	"github.com/effective-security/mcptools/toolclient"
)

type toolDescription struct {
	Name        string `json:"Name" yaml:"Name"`
	Description string `json:"Description" yaml:"Description"`
}

type toolsDescription struct {
	Tools []toolDescription `json:"Tools" yaml:"Tools"`
}

// GetDescriptions returns a JSON block describing the tools,
// suitable for inclusion in a prompt.
func GetDescriptions(list ...ITool) string {
	var d toolsDescription
	for _, tool := range list {
		d.Tools = append(d.Tools, toolDescription{
			Name:        tool.Name(),
			Description: tool.Description(),
		})
	}
	return llmutils.BackticksJSON(llmutils.ToJSONIndent(d))
}

// NewRemoteSet adapts every descriptor from one discovery pass.
func NewRemoteSet(descs []*toolclient.ToolDescriptor) []ITool {
	list := make([]ITool, len(descs))
	for i, desc := range descs {
		list[i] = NewRemote(desc)
	}
	return list
}
