package ingest_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jobhunt-dev/hunt/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	zeroDelays := []time.Duration{0, 0, 0}

	t.Run("returns first success without retrying", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "<html>ok</html>", nil
		}

		html, err := ingest.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, zeroDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries until a fetch succeeds", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			if attempts < 3 {
				return "", errors.New("transient")
			}
			return "<html>ok</html>", nil
		}

		html, err := ingest.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, zeroDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 3, attempts)
	})

	t.Run("gives up after exhausting delays and returns last error", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "", fmt.Errorf("failure %d", attempts)
		}

		_, err := ingest.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, zeroDelays)

		require.Error(t, err)
		assert.EqualError(t, err, "failure 4") // 1 initial + 3 retries
	})

	t.Run("logs each retry attempt", func(t *testing.T) {
		t.Parallel()

		var lines []string
		logger := func(format string, args ...any) {
			lines = append(lines, fmt.Sprintf(format, args...))
		}
		fetch := func(ctx context.Context, url string) (string, error) {
			return "", errors.New("down")
		}

		_, err := ingest.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, logger, []time.Duration{0})

		require.Error(t, err)
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "https://example.com")
		assert.Contains(t, lines[0], "attempt 2")
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (string, error) {
			cancel()
			return "", errors.New("transient")
		}

		_, err := ingest.FetchWithRetryDelays(ctx, "https://example.com", fetch, nil, []time.Duration{time.Second})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
