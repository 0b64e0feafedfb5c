// internal/session/session_test.go
package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/calyptra/storesuite/internal/config"
)

// -- Error Taxonomy Tests --

func TestStartupError(t *testing.T) {
	cause := errors.New("executable file not found")
	err := &StartupError{Stage: "launch", Err: cause}

	assert.Contains(t, err.Error(), "launch")
	assert.Contains(t, err.Error(), "executable file not found")
	assert.ErrorIs(t, err, cause, "StartupError must unwrap to its cause")

	var se *StartupError
	assert.ErrorAs(t, error(err), &se)
}

func TestWaitTimeoutError(t *testing.T) {
	err := &WaitTimeoutError{
		Target:    "id=Email",
		Condition: "element visible",
		Timeout:   10 * time.Second,
		Err:       context.DeadlineExceeded,
	}

	assert.Contains(t, err.Error(), "10s")
	assert.Contains(t, err.Error(), "element visible")
	assert.Contains(t, err.Error(), "id=Email")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWrapTimeout(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, wrapTimeout(nil, "x", "y", time.Second))
	})

	t.Run("deadline expiry becomes WaitTimeoutError", func(t *testing.T) {
		err := wrapTimeout(context.DeadlineExceeded, "css=.alert", "element visible", 3*time.Second)
		var wte *WaitTimeoutError
		require.ErrorAs(t, err, &wte)
		assert.Equal(t, "css=.alert", wte.Target)
		assert.Equal(t, 3*time.Second, wte.Timeout)
	})

	t.Run("other errors pass through unchanged", func(t *testing.T) {
		cause := errors.New("tab crashed")
		err := wrapTimeout(cause, "x", "y", time.Second)
		assert.Same(t, cause, err)

		var wte *WaitTimeoutError
		assert.False(t, errors.As(err, &wte))
	})
}

// -- Session State Tests --

func newBareSession(t *testing.T, waits config.WaitConfig) *Session {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	s := newSession(ctx, cancel, zap.NewNop(), waits)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func testWaits() config.WaitConfig {
	return config.WaitConfig{
		Timeout:       10 * time.Second,
		OptionalField: 3 * time.Second,
		PollInterval:  250 * time.Millisecond,
		Startup:       30 * time.Second,
	}
}

func TestSessionAuthenticationState(t *testing.T) {
	s := newBareSession(t, testWaits())

	assert.False(t, s.Authenticated(), "A fresh session starts unauthenticated")

	s.MarkAuthenticated(true)
	assert.True(t, s.Authenticated())

	s.MarkAuthenticated(false)
	assert.False(t, s.Authenticated())
}

func TestSessionCloseIsIdempotent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSession(ctx, cancel, zap.NewNop(), testWaits())

	released := 0
	s.onClose = func() { released++ }

	require.NoError(t, s.Close(context.Background()))
	require.NoError(t, s.Close(context.Background()))
	assert.Equal(t, 1, released, "The manager must be signalled exactly once")
}

func TestOpContextHonorsSoonerCallerDeadline(t *testing.T) {
	s := newBareSession(t, testWaits())

	callerCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, opCancel, timeout := s.opContext(callerCtx)
	defer opCancel()

	assert.LessOrEqual(t, timeout, time.Second, "Caller's earlier deadline must win")
}

func TestOpContextDefaultsToConfiguredTimeout(t *testing.T) {
	s := newBareSession(t, testWaits())

	_, opCancel, timeout := s.opContext(context.Background())
	defer opCancel()

	assert.Equal(t, 10*time.Second, timeout)
}

func TestSessionIDIsStable(t *testing.T) {
	s := newBareSession(t, testWaits())
	require.NotEmpty(t, s.ID())
	assert.Equal(t, s.ID(), s.ID())
}
