package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Do(t *testing.T) {
	t.Run("returns the task error", func(t *testing.T) {
		p := NewPool(1)
		want := errors.New("task failed")

		got := p.Do(context.Background(), func() error { return want })
		assert.Equal(t, want, got)
	})

	t.Run("concurrency never exceeds pool size", func(t *testing.T) {
		const size = 2
		const tasks = 10

		p := NewPool(size)

		var running, peak int64
		var wg sync.WaitGroup
		for i := 0; i < tasks; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = p.Do(context.Background(), func() error {
					n := atomic.AddInt64(&running, 1)
					for {
						old := atomic.LoadInt64(&peak)
						if n <= old || atomic.CompareAndSwapInt64(&peak, old, n) {
							break
						}
					}
					time.Sleep(5 * time.Millisecond)
					atomic.AddInt64(&running, -1)
					return nil
				})
			}()
		}
		wg.Wait()

		assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(size))
		assert.Positive(t, atomic.LoadInt64(&peak))
	})

	t.Run("cancelled context skips the task", func(t *testing.T) {
		p := NewPool(1)

		release := make(chan struct{})
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Do(context.Background(), func() error {
				<-release
				return nil
			})
		}()

		// Let the first task occupy the only slot
		time.Sleep(10 * time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ran := false
		err := p.Do(ctx, func() error {
			ran = true
			return nil
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, ran)

		close(release)
		wg.Wait()
	})
}

func TestNewPool_MinimumSize(t *testing.T) {
	for _, size := range []int{-3, 0, 1} {
		p := NewPool(size)
		err := p.Do(context.Background(), func() error { return nil })
		assert.NoError(t, err)
	}
}
