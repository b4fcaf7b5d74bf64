package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("hello", zap.String("k", "v"))

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "v", logs.All()[0].ContextMap()["k"])
}

func TestFromContextDefaultsToNop(t *testing.T) {
	t.Parallel()

	require.NotNil(t, FromContext(context.Background()))
	require.Equal(t, context.Background(), WithLogger(context.Background(), nil))
}

func TestNewHonoursLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	l, err := New()
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zap.InfoLevel))
	require.True(t, l.Core().Enabled(zap.WarnLevel))

	t.Setenv("LOG_LEVEL", "bogus")
	l, err = New()
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zap.InfoLevel))
}
