package toolclient

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrDiscovery is reported when listing a server's tools fails.
	ErrDiscovery = errors.New("tool discovery failed")
	// ErrInvocation is reported for transport or protocol failures during a remote call.
	ErrInvocation = errors.New("tool invocation failed")
	// ErrInvocationTimeout is reported when a bounded remote call misses its deadline.
	ErrInvocationTimeout = errors.New("tool invocation timed out")
)
