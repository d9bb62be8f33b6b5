package llmutils_test

import (
	"testing"

	"github.com/effective-security/mcptools/llmutils"
	"github.com/stretchr/testify/assert"
)

func Test_ToJSON(t *testing.T) {
	val := map[string]any{"name": "echo"}
	assert.Equal(t, `{"name":"echo"}`, llmutils.ToJSON(val))
	assert.Equal(t, "{\n\t\"name\": \"echo\"\n}", llmutils.ToJSONIndent(val))
	assert.Equal(t, "{\n\t\"name\": \"echo\"\n}", llmutils.JSONIndent(`{"name":"echo"}`))
}

func Test_BackticksJSON(t *testing.T) {
	assert.Equal(t, "\n```json\n{}\n```\n", llmutils.BackticksJSON("{}\n"))
}
