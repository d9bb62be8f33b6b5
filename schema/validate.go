// Package schema implements the pre-flight argument check performed before a
// remote tool call. Only the top-level required list of a tool's input schema
// is consulted; no type checking and no rejection of extra arguments.
package schema

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// ValidationError reports a required argument missing from a tool invocation.
type ValidationError struct {
	Parameter string
}

func (e *ValidationError) Error() string {
	return "missing required parameter: " + e.Parameter
}

// Validate checks the supplied arguments against a tool's input schema.
func Validate(sch mcp.ToolInputSchema, args map[string]any) error {
	return ValidateRequired(sch.Required, args)
}

// ValidateRequired returns a ValidationError naming the first required
// argument absent from args. An empty required list always succeeds, and
// supersets of the required keys are accepted.
func ValidateRequired(required []string, args map[string]any) error {
	for _, name := range required {
		if _, ok := args[name]; !ok {
			return &ValidationError{Parameter: name}
		}
	}
	return nil
}
