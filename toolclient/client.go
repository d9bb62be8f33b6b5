// Package toolclient discovers and invokes the capabilities of external tool
// provider processes. A Client turns a server descriptor into a cached,
// validated set of callable tool descriptors: discovery consults the metadata
// cache before opening a transport session, and every invocation runs on its
// own session so concurrent calls never share state.
package toolclient

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/effective-security/xlog"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/effective-security/mcptools/schema"
	"github.com/effective-security/mcptools/store"
	"github.com/effective-security/mcptools/transport"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/mcptools", "toolclient")

const (
	// DefaultTimeout bounds each session-open, list and call operation.
	DefaultTimeout = 15 * time.Second
	// DefaultCacheTTL is how long a discovered tool list stays warm.
	DefaultCacheTTL = time.Hour
)

// ValidateFunc checks invocation arguments against a tool's input schema.
// It runs before any I/O; the default checks required argument names only.
type ValidateFunc func(sch mcp.ToolInputSchema, args map[string]any) error

// InvokeFunc performs one bounded remote call of a discovered tool and
// returns the raw result reported by the provider.
type InvokeFunc func(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error)

// ToolDescriptor is one discovered capability with its bound invoker.
// It holds no live resources: each Invoke opens and closes its own session.
type ToolDescriptor struct {
	Name        string
	Description string
	InputSchema mcp.ToolInputSchema
	Invoke      InvokeFunc
}

// Client discovers and invokes the tools of a single server descriptor.
// A Client is safe for concurrent use; many invocations may be in flight at
// once, for the same or different tools.
type Client struct {
	server   transport.Server
	dialer   transport.Dialer
	cache    store.MetadataStore
	validate ValidateFunc
	timeout  time.Duration
	cacheTTL time.Duration

	mu       sync.RWMutex
	registry map[string]mcp.ToolInputSchema
}

// Option configures a Client.
type Option func(*Client)

// WithDialer replaces the default stdio dialer.
func WithDialer(d transport.Dialer) Option {
	return func(c *Client) {
		c.dialer = d
	}
}

// WithCache replaces the default in-memory metadata cache. The cache is the
// only state a client shares with other clients or processes.
func WithCache(s store.MetadataStore) Option {
	return func(c *Client) {
		c.cache = s
	}
}

// WithTimeout bounds each discovery and invocation operation.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithCacheTTL sets the TTL for cached discovery results.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cacheTTL = ttl
	}
}

// WithValidator replaces the default required-keys argument check.
// Deeper JSON-Schema validation changes which calls are accepted, so it is
// opt-in.
func WithValidator(v ValidateFunc) Option {
	return func(c *Client) {
		c.validate = v
	}
}

// New creates a tool client for the given server descriptor.
func New(server transport.Server, ops ...Option) *Client {
	c := &Client{
		server:   server,
		dialer:   transport.NewStdioDialer(),
		cache:    store.NewMemoryStore(),
		validate: schema.Validate,
		timeout:  DefaultTimeout,
		cacheTTL: DefaultCacheTTL,
		registry: make(map[string]mcp.ToolInputSchema),
	}
	for _, op := range ops {
		op(c)
	}
	return c
}

// cacheKey derives the cache entry key from the command and its arguments.
// Environment variables are excluded: two descriptors that differ only in
// env share one cache entry. Callers needing isolation should use separate
// cache instances.
func (c *Client) cacheKey() string {
	h := xxhash.New()
	_, _ = h.WriteString(c.server.Command)
	for _, arg := range c.server.Args {
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(arg)
	}
	return "tools/" + strconv.FormatUint(h.Sum64(), 16)
}

// toolSchema returns the registered input schema for the named tool.
// Tools absent from the registry are invoked without validation.
func (c *Client) toolSchema(name string) (mcp.ToolInputSchema, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sch, ok := c.registry[name]
	return sch, ok
}
