package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealdb.go"
)

func fastRetryer(max int) *ExponentialBackoffRetryer {
	return &ExponentialBackoffRetryer{
		maxRetries: max,
		baseDelay:  time.Millisecond,
		maxDelay:   5 * time.Millisecond,
		multiplier: 2,
	}
}

func TestExponentialBackoffRetryer_Retry(t *testing.T) {
	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		err := fastRetryer(3).Retry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errors.New("not yet")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up", func(t *testing.T) {
		calls := 0
		last := errors.New("still broken")
		err := fastRetryer(2).Retry(context.Background(), func() error {
			calls++
			return last
		})
		assert.ErrorIs(t, err, last)
		assert.Equal(t, 3, calls)
		assert.Contains(t, err.Error(), "after 3 attempts")
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := fastRetryer(5).Retry(ctx, func() error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateDelay(t *testing.T) {
	r := &ExponentialBackoffRetryer{baseDelay: 100 * time.Millisecond, maxDelay: time.Second, multiplier: 2}
	assert.Equal(t, 100*time.Millisecond, r.calculateDelay(0))
	assert.Equal(t, 400*time.Millisecond, r.calculateDelay(2))
	assert.Equal(t, time.Second, r.calculateDelay(10))

	r.jitter = true
	d := r.calculateDelay(0)
	assert.GreaterOrEqual(t, d, 100*time.Millisecond)
	assert.LessOrEqual(t, d, 125*time.Millisecond)
}

func TestIsConnectionError(t *testing.T) {
	assert.False(t, isConnectionError(nil))
	assert.True(t, isConnectionError(context.DeadlineExceeded))
	assert.True(t, isConnectionError(fmt.Errorf("write: %w", context.Canceled)))
	assert.True(t, isConnectionError(errors.New("dial tcp: Connection refused")))
	assert.True(t, isConnectionError(errors.New("read: unexpected EOF")))
	assert.False(t, isConnectionError(errors.New("parse error near 'SELEC'")))
}

func TestRedactDBURL(t *testing.T) {
	assert.Equal(t, "ws://root:xxxxx@localhost:8000/rpc", redactDBURL("ws://root:secret@localhost:8000/rpc"))
	assert.Equal(t, "ws://localhost:8000/rpc", redactDBURL("ws://localhost:8000/rpc"))
	assert.Equal(t, "invalid-url", redactDBURL("://bad"))
}

func TestConnection_NotConnected(t *testing.T) {
	c := NewConnection(nil)

	err := c.WithConnection(context.Background(), func(_ *surrealdb.DB) error { return nil })
	assert.ErrorIs(t, err, ErrNotConnected)

	_, err = c.DB()
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.False(t, c.IsHealthy())
	assert.NoError(t, c.Close(context.Background()))
	assert.NoError(t, c.Close(context.Background()), "close twice")
}
