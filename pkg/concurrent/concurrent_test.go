package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentRunsEveryItem(t *testing.T) {
	var sum atomic.Int64
	err := Concurrent([]int{1, 2, 3, 4}, func(v int) error {
		sum.Add(int64(v))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), sum.Load())

	boom := errors.New("boom")
	err = Concurrent([]int{1, 2}, func(v int) error {
		if v == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestMapKeepsOrder(t *testing.T) {
	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}

	var inFlight, peak atomic.Int32
	out, err := Map(context.Background(), items, 3, func(_ context.Context, v int) (int, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		return v * v, nil
	})
	require.NoError(t, err)
	require.Len(t, out, 50)
	for i, v := range out {
		assert.Equal(t, i*i, v)
	}
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestMapStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	out, err := Map(context.Background(), []int{1, 2, 3}, 1, func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, out)
}

func TestMapHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Map(ctx, []int{1}, 0, func(context.Context, int) (int, error) { return 1, nil })
	assert.ErrorIs(t, err, context.Canceled)
}
