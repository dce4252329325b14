package commandinit_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/artuross/exprvisitor/internal/commandinit"
	"github.com/artuross/exprvisitor/internal/defaults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("writes at enabled level", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := commandinit.NewLogger(&buf, "info", "demo")
		require.NoError(t, err)

		logger.Debug().Msg("hidden")
		logger.Info().Msg("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
		assert.Contains(t, buf.String(), "demo")
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := commandinit.NewLogger(&bytes.Buffer{}, "loud", "demo")
		assert.Error(t, err)
	})
}

func TestNewOpenTelemetry(t *testing.T) {
	ctx := context.Background()

	tp, shutdown, err := commandinit.NewOpenTelemetry(ctx, "exprvisitor", "")
	require.NoError(t, err)

	assert.Equal(t, defaults.TraceProvider, tp)
	assert.NoError(t, shutdown(ctx))
}
