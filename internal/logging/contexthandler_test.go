package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"detective/internal/logging"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(&buf, nil)))

	ctx := logging.WithAttrs(context.Background(), slog.String("session", "abc"))
	ctx = logging.WithAttrs(ctx, slog.String("room", "Hall"))
	logger.With("source", "test").InfoContext(ctx, "entered room")

	out := buf.String()
	require.Contains(t, out, "session=abc")
	require.Contains(t, out, "room=Hall")
	require.Contains(t, out, "source=test")
}

func TestContextHandlerWithoutAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(&buf, nil)))
	logger.Info("plain")
	require.Contains(t, buf.String(), "msg=plain")
}
