package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHTTPServer(t *testing.T) {
	t.Parallel()

	t.Run("shuts down cleanly on context cancellation", func(t *testing.T) {
		t.Parallel()

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)

		go func() {
			done <- RunHTTPServer(ctx, http.NewServeMux(), "127.0.0.1:0", logger)
		}()

		time.Sleep(100 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not shut down after cancellation")
		}
	})

	t.Run("returns an error when the address is already bound", func(t *testing.T) {
		t.Parallel()

		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		t.Cleanup(func() { ln.Close() }) // nolint:errcheck

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		err = RunHTTPServer(context.Background(), http.NewServeMux(), ln.Addr().String(), logger)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "serving error")
	})
}
