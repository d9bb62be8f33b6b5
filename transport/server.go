package transport

import (
	"fmt"
	"sort"
)

// Server describes how to launch and reach one tool provider process.
// It is supplied once at client construction and treated as immutable.
type Server struct {
	// Command is the executable starting the provider process.
	Command string `json:"command" yaml:"command" validate:"required"`
	// Args are passed to the command in order.
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`
	// Env entries are overlaid on the inherited process environment at
	// session-open time; an explicit entry wins on conflict.
	Env map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
}

// EnvSlice returns the explicit environment entries as "key=value" pairs in
// deterministic order. The stdio transport appends them after the inherited
// process environment, so the explicit value wins for a duplicated key.
func (s Server) EnvSlice() []string {
	if len(s.Env) == 0 {
		return nil
	}
	keys := make([]string, 0, len(s.Env))
	for key := range s.Env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, key := range keys {
		env = append(env, fmt.Sprintf("%s=%s", key, s.Env[key]))
	}
	return env
}
