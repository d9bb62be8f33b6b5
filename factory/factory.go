// Package factory creates tool clients for a set of named provider servers
// from one configuration file. All clients share a single metadata cache,
// which is the only state clients ever share.
package factory

import (
	"context"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"

	"github.com/effective-security/mcptools/store"
	"github.com/effective-security/mcptools/toolclient"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/mcptools", "factory")

type Factory interface {
	// ServerNames returns the configured server names in sorted order.
	ServerNames() []string
	// Client returns the tool client for a named server.
	Client(name string) (*toolclient.Client, error)
	// DiscoverAll enumerates the tools of every configured server.
	// Servers that fail discovery are logged and skipped, so one broken
	// provider does not hide the others.
	DiscoverAll(ctx context.Context) (map[string][]*toolclient.ToolDescriptor, error)
}

// Load returns a factory from the config file location.
func Load(location string, ops ...toolclient.Option) (Factory, error) {
	cfg, err := LoadConfig(location)
	if err != nil {
		return nil, err
	}
	return New(cfg, ops...)
}

type factory struct {
	cfg *Config
	ops []toolclient.Option

	lock    sync.Mutex
	clients map[string]*toolclient.Client
}

// New creates a tool client factory. The provided options are applied to
// every client, after a shared in-memory cache, so callers may override the
// cache backend for all clients at once.
func New(cfg *Config, ops ...toolclient.Option) (Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	shared := make([]toolclient.Option, 0, len(ops)+1)
	shared = append(shared, toolclient.WithCache(store.NewMemoryStore()))
	shared = append(shared, ops...)

	f := &factory{
		cfg:     cfg,
		ops:     shared,
		clients: make(map[string]*toolclient.Client),
	}
	return f, nil
}

func (f *factory) ServerNames() []string {
	names := make([]string, 0, len(f.cfg.MCPServers))
	for name := range f.cfg.MCPServers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (f *factory) Client(name string) (*toolclient.Client, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if c, ok := f.clients[name]; ok {
		return c, nil
	}
	srv, ok := f.cfg.MCPServers[name]
	if !ok {
		return nil, errors.Errorf("unknown MCP server: %s", name)
	}
	c := toolclient.New(srv, f.ops...)
	f.clients[name] = c
	return c, nil
}

func (f *factory) DiscoverAll(ctx context.Context) (map[string][]*toolclient.ToolDescriptor, error) {
	results := make(map[string][]*toolclient.ToolDescriptor)
	for _, name := range f.ServerNames() {
		client, err := f.Client(name)
		if err != nil {
			return nil, err
		}
		descriptors, err := client.DiscoverTools(ctx)
		if err != nil {
			logger.ContextKV(ctx, xlog.ERROR, "reason", "discover", "server", name, "err", err.Error())
			continue
		}
		results[name] = descriptors
		logger.ContextKV(ctx, xlog.DEBUG, "server", name, "tools", len(descriptors))
	}
	return results, nil
}
