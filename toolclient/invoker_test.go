package toolclient_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effective-security/mcptools/schema"
	"github.com/effective-security/mcptools/toolclient"
	"github.com/effective-security/mcptools/transport"
)

func discoverEcho(t *testing.T, dialer *fakeDialer, ops ...toolclient.Option) *toolclient.ToolDescriptor {
	t.Helper()
	ops = append([]toolclient.Option{toolclient.WithDialer(dialer)}, ops...)
	client := toolclient.New(
		transport.Server{Command: "uvx", Args: []string{"echo-server"}},
		ops...,
	)
	descs, err := client.DiscoverTools(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, descs)
	require.Equal(t, "echo", descs[0].Name)
	return descs[0]
}

func Test_Invoke_ValidationBeforeTransport(t *testing.T) {
	dialer := &fakeDialer{tools: echoTools()}
	echo := discoverEcho(t, dialer)
	require.Equal(t, 1, dialer.dialCount())

	_, err := echo.Invoke(context.Background(), map[string]any{"verbose": true})
	require.Error(t, err)

	var verr *schema.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "text", verr.Parameter)
	assert.EqualError(t, err, "missing required parameter: text")

	// validation failed locally: no new session was opened
	assert.Equal(t, 1, dialer.dialCount())
	assert.Empty(t, dialer.recordedCalls())
}

func Test_Invoke_EndToEnd(t *testing.T) {
	result := mcp.NewToolResultText("hi")
	dialer := &fakeDialer{tools: echoTools(), result: result}
	echo := discoverEcho(t, dialer)

	res, err := echo.Invoke(context.Background(), map[string]any{"text": "hi"})
	require.NoError(t, err)
	// the raw result is returned unchanged
	assert.Same(t, result, res)

	calls := dialer.recordedCalls()
	require.Equal(t, 1, len(calls))
	assert.Equal(t, "echo", calls[0].Name)
	assert.Equal(t, map[string]any{"text": "hi"}, calls[0].Args)

	// one session for discovery, one per invocation
	assert.Equal(t, 2, dialer.dialCount())

	_, err = echo.Invoke(context.Background(), map[string]any{"text": "again"})
	require.NoError(t, err)
	assert.Equal(t, 3, dialer.dialCount())
}

func Test_Invoke_Timeout(t *testing.T) {
	dialer := &fakeDialer{tools: echoTools(), callDelay: 5 * time.Second}
	echo := discoverEcho(t, dialer, toolclient.WithTimeout(100*time.Millisecond))

	started := time.Now()
	_, err := echo.Invoke(context.Background(), map[string]any{"text": "hi"})
	elapsed := time.Since(started)

	require.Error(t, err)
	assert.True(t, errors.Is(err, toolclient.ErrInvocationTimeout))
	assert.False(t, errors.Is(err, toolclient.ErrInvocation))
	assert.Less(t, elapsed, time.Second, "the call must abort at the deadline, not run to completion")
}

func Test_Invoke_TransportError(t *testing.T) {
	dialer := &fakeDialer{
		tools:   echoTools(),
		callErr: errors.New("protocol violation: unexpected frame"),
	}
	echo := discoverEcho(t, dialer)

	_, err := echo.Invoke(context.Background(), map[string]any{"text": "hi"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, toolclient.ErrInvocation))
	assert.Contains(t, err.Error(), "protocol violation: unexpected frame")

	// session-open failures are invocation errors too
	dialer.callErr = nil
	dialer.dialErr = errors.New("spawn failed")
	_, err = echo.Invoke(context.Background(), map[string]any{"text": "hi"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, toolclient.ErrInvocation))
	assert.Contains(t, err.Error(), "spawn failed")
}

func Test_Invoke_UnregisteredToolSkipsValidation(t *testing.T) {
	// A tool that disappears from the registry is still invocable; only the
	// argument check is skipped.
	dialer := &fakeDialer{tools: echoTools()}
	client := toolclient.New(
		transport.Server{Command: "uvx", Args: []string{"echo-server"}},
		toolclient.WithDialer(dialer),
		toolclient.WithCacheTTL(time.Nanosecond),
	)
	descs, err := client.DiscoverTools(context.Background())
	require.NoError(t, err)
	echo := descs[0]

	// the second discovery replaces the registry with a different tool set
	dialer.tools = []mcp.Tool{{Name: "other"}}
	_, err = client.DiscoverTools(context.Background())
	require.NoError(t, err)

	_, err = echo.Invoke(context.Background(), nil)
	require.NoError(t, err)

	calls := dialer.recordedCalls()
	require.Equal(t, 1, len(calls))
	assert.Equal(t, "echo", calls[0].Name)
}

func Test_Invoke_Concurrent(t *testing.T) {
	dialer := &fakeDialer{tools: echoTools()}
	echo := discoverEcho(t, dialer)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = echo.Invoke(context.Background(), map[string]any{"text": "hi"})
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
	}
	// one discovery session plus one independent session per invocation
	assert.Equal(t, 1+workers, dialer.dialCount())
	assert.Equal(t, workers, len(dialer.recordedCalls()))
}
