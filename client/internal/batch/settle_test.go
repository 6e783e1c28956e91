package batch

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettle_PartialFailureDoesNotAbort(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	boom := errors.New("boom")

	res := Settle(context.Background(), []string{"1", "2", "3"}, 0, func(_ context.Context, id string) error {
		calls.Add(1)
		if id == "2" {
			return boom
		}
		return nil
	})

	assert.Equal(t, int32(3), calls.Load())
	sort.Strings(res.Succeeded)
	assert.Equal(t, []string{"1", "3"}, res.Succeeded)
	assert.Equal(t, []string{"2"}, res.Failed)
	assert.ErrorIs(t, res.Errors["2"], boom)
	assert.Equal(t, 3, res.Total())
}

func TestSettle_Empty(t *testing.T) {
	t.Parallel()
	res := Settle(context.Background(), nil, 0, func(context.Context, string) error {
		t.Fatal("fn must not be called")
		return nil
	})
	assert.Zero(t, res.Total())
	assert.NotNil(t, res.Errors)
}

func TestSettle_RespectsLimit(t *testing.T) {
	t.Parallel()
	var inFlight, peak atomic.Int32
	ids := []string{"a", "b", "c", "d", "e", "f"}

	res := Settle(context.Background(), ids, 2, func(context.Context, string) error {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return nil
	})

	require.Len(t, res.Succeeded, len(ids))
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestSettle_RunsConcurrently(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	var started atomic.Int32

	done := make(chan Result, 1)
	go func() {
		done <- Settle(context.Background(), []string{"x", "y"}, 0, func(context.Context, string) error {
			started.Add(1)
			<-release
			return nil
		})
	}()

	require.Eventually(t, func() bool { return started.Load() == 2 }, time.Second, 5*time.Millisecond)
	close(release)
	res := <-done
	assert.Len(t, res.Succeeded, 2)
}
