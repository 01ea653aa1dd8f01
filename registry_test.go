package absplit

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndAssign(t *testing.T) {
	registry := NewRegistry()
	splitter := fiftyFifty(t, "pricing_test_2024_q1")

	require.NoError(t, registry.Register("pricing-q1", splitter))
	require.Equal(t, 1, registry.Len())

	got, ok := registry.Lookup("pricing-q1")
	require.True(t, ok)
	require.Same(t, splitter, got)

	label, err := registry.Assign("pricing-q1", 12345)
	require.NoError(t, err)

	want, err := splitter.Assign(12345)
	require.NoError(t, err)
	require.Equal(t, want, label)
}

func TestRegistry_Validation(t *testing.T) {
	registry := NewRegistry()
	splitter := fiftyFifty(t, "salt")

	t.Run("empty name", func(t *testing.T) {
		err := registry.Register("", splitter)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("nil splitter", func(t *testing.T) {
		err := registry.Register("exp", nil)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("duplicate name", func(t *testing.T) {
		require.NoError(t, registry.Register("exp", splitter))
		err := registry.Register("exp", splitter)
		require.ErrorIs(t, err, ErrExperimentExists)
	})

	t.Run("unknown experiment", func(t *testing.T) {
		_, err := registry.Assign("missing", 1)
		require.ErrorIs(t, err, ErrExperimentNotFound)
	})
}

func TestRegistry_WarnsOnSaltReuse(t *testing.T) {
	logger := &recordingLogger{}
	registry := NewRegistry(WithRegistryLogger(logger))

	require.NoError(t, registry.Register("pricing-q1", fiftyFifty(t, "shared_salt")))
	require.Empty(t, logger.messages())

	require.NoError(t, registry.Register("checkout-v2", fiftyFifty(t, "shared_salt")))

	messages := logger.messages()
	require.Len(t, messages, 1)
	require.True(t, strings.Contains(messages[0], "salt reused"), "got %q", messages[0])
}

func TestRegistry_Deregister(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register("exp", fiftyFifty(t, "salt")))
	registry.Deregister("exp")

	_, ok := registry.Lookup("exp")
	require.False(t, ok)
	require.Equal(t, 0, registry.Len())

	// Unknown names are a no-op.
	registry.Deregister("missing")

	// The salt is free again; re-registering does not warn.
	logger := &recordingLogger{}
	withLogger := NewRegistry(WithRegistryLogger(logger))
	require.NoError(t, withLogger.Register("exp", fiftyFifty(t, "salt")))
	withLogger.Deregister("exp")
	require.NoError(t, withLogger.Register("exp2", fiftyFifty(t, "salt")))
	require.Empty(t, logger.messages())
}

func TestRegistry_ConcurrentAssign(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("exp", fiftyFifty(t, "pricing_test_2024_q1")))

	want, err := registry.Assign("exp", 12345)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				got, err := registry.Assign("exp", 12345)
				if err != nil || got != want {
					t.Errorf("concurrent assign diverged: %v %v", got, err)

					return
				}
			}
		}()
	}
	wg.Wait()
}
