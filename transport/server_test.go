package transport_test

import (
	"testing"

	"github.com/effective-security/mcptools/transport"
	"github.com/stretchr/testify/assert"
)

func Test_EnvSlice(t *testing.T) {
	srv := transport.Server{
		Command: "uvx",
		Args:    []string{"weather-server"},
	}
	assert.Nil(t, srv.EnvSlice())

	srv.Env = map[string]string{
		"API_KEY":  "secret",
		"ENDPOINT": "https://api.example.com",
		"DEBUG":    "1",
	}
	exp := []string{
		"API_KEY=secret",
		"DEBUG=1",
		"ENDPOINT=https://api.example.com",
	}
	assert.Equal(t, exp, srv.EnvSlice())
	// order is deterministic across calls
	assert.Equal(t, srv.EnvSlice(), srv.EnvSlice())
}
