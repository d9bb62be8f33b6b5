package toolclient

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolRecord is the serialized form of one discovered tool.
type toolRecord struct {
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	InputSchema mcp.ToolInputSchema `json:"input_schema"`
}

// DiscoverTools returns the server's tool descriptors in the order the
// server reports them. With a warm cache entry no transport session is
// opened at all; on a miss one discovery session fetches the list under the
// client timeout and the serialized result is cached with the configured
// TTL. Discovery failures are not retried and leave no registry state.
func (c *Client) DiscoverTools(ctx context.Context) ([]*ToolDescriptor, error) {
	key := c.cacheKey()

	data, found, err := c.cache.Get(ctx, key)
	if err != nil {
		// a broken cache degrades to a fetch
		logger.ContextKV(ctx, xlog.WARNING, "reason", "cache_get", "key", key, "err", err.Error())
	}
	if found {
		var records []toolRecord
		uerr := json.Unmarshal(data, &records)
		if uerr == nil {
			logger.ContextKV(ctx, xlog.DEBUG, "cache", "hit", "key", key, "tools", len(records))
			return c.buildDescriptors(records), nil
		}
		// a corrupt entry degrades to a fetch
		logger.ContextKV(ctx, xlog.WARNING, "reason", "cache_decode", "key", key, "err", uerr.Error())
	}

	records, err := c.fetchTools(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(records); err == nil {
		if err := c.cache.Set(ctx, key, data, c.cacheTTL); err != nil {
			logger.ContextKV(ctx, xlog.WARNING, "reason", "cache_set", "key", key, "err", err.Error())
		}
	}

	logger.ContextKV(ctx, xlog.DEBUG, "cache", "miss", "key", key, "tools", len(records))
	return c.buildDescriptors(records), nil
}

// fetchTools opens one discovery session and requests the tool list,
// bounded by the client timeout.
func (c *Client) fetchTools(ctx context.Context) ([]toolRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	sess, err := c.dialer.Dial(ctx, c.server)
	if err != nil {
		return nil, errors.Mark(errors.WithMessagef(err, "failed to open session for %q", c.server.Command), ErrDiscovery)
	}
	defer func() {
		_ = sess.Close()
	}()

	tools, err := sess.ListTools(ctx)
	if err != nil {
		return nil, errors.Mark(errors.WithMessagef(err, "failed to list tools for %q", c.server.Command), ErrDiscovery)
	}

	records := make([]toolRecord, len(tools))
	for i, tool := range tools {
		records[i] = toolRecord{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.InputSchema,
		}
	}
	return records, nil
}

// buildDescriptors replaces the in-memory registry and synthesizes one
// descriptor per tool. The registry is consulted by invokers only to decide
// whether to validate arguments; it never gates invocation itself.
func (c *Client) buildDescriptors(records []toolRecord) []*ToolDescriptor {
	registry := make(map[string]mcp.ToolInputSchema, len(records))
	for _, record := range records {
		registry[record.Name] = record.InputSchema
	}
	c.mu.Lock()
	c.registry = registry
	c.mu.Unlock()

	descriptors := make([]*ToolDescriptor, len(records))
	for i, record := range records {
		descriptors[i] = &ToolDescriptor{
			Name:        record.Name,
			Description: record.Description,
			InputSchema: record.InputSchema,
			Invoke:      c.newInvoker(record.Name),
		}
	}
	return descriptors
}
