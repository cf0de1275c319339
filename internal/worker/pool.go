// Package worker provides a bounded pool for CPU-bound analysis work so a
// single long document cannot stall unrelated requests.
package worker

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Pool bounds the number of concurrently executing tasks. Callers block
// until a slot is free or their context is done.
type Pool struct {
	sem *semaphore.Weighted
}

// NewPool creates a pool with the given number of slots. Size values below
// one fall back to a single slot.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(size))}
}

// Do runs fn inside a pool slot. It returns the context error when the slot
// could not be acquired, otherwise fn's error.
func (p *Pool) Do(ctx context.Context, fn func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.sem.Release(1)
	return fn()
}
