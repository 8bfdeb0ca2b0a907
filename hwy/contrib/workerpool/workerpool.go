// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs data-parallel kernels over index ranges. A Pool is
// created once and reused, so many goroutines can dispatch the same kernel
// against the process-wide backend without paying for goroutine spawns on
// every call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(data), func(start, end int) {
//	    vec.Scale(out[start:end], 2, data[start:end])
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of worker goroutines.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// Range is a half-open index range [Start, End).
type Range struct {
	Start, End int
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes. It is safe to call
// more than once. A closed pool runs work on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Chunks splits [0, n) into at most NumWorkers contiguous ranges of equal
// size (the last may be shorter). minChunk bounds how small a range may get;
// values <= 0 mean 1.
func (p *Pool) Chunks(n, minChunk int) []Range {
	if n <= 0 {
		return nil
	}
	minChunk = max(minChunk, 1)
	workers := max(min(p.numWorkers, n/minChunk), 1)
	size := (n + workers - 1) / workers

	out := make([]Range, 0, workers)
	for start := 0; start < n; start += size {
		out = append(out, Range{start, min(start+size, n)})
	}
	return out
}

// ParallelFor calls fn once per chunk of [0, n) on the pool's workers and
// blocks until all chunks are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	chunks := p.Chunks(n, 1)
	if p.closed.Load() || len(chunks) == 1 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for _, c := range chunks {
		p.workC <- workItem{
			fn:      func() { fn(c.Start, c.End) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelForAtomic calls fn for every index in [0, n), handing indices out
// one at a time. It balances better than ParallelFor when the cost per index
// varies.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}

// Run calls fn on the pool's workers for each chunk of [0, n) of at least
// minChunk indices. The first error cancels the context passed to the other
// chunks and is returned; chunks not yet started are skipped. A closed pool
// runs the chunks in order on the calling goroutine.
func (p *Pool) Run(ctx context.Context, n, minChunk int, fn func(ctx context.Context, start, end int) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	chunks := p.Chunks(n, minChunk)
	if len(chunks) == 1 {
		return fn(ctx, 0, n)
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	runChunk := func(c Range) {
		if ctx.Err() != nil {
			return
		}
		if err := fn(ctx, c.Start, c.End); err != nil {
			cancel(err)
		}
	}

	if p.closed.Load() {
		for _, c := range chunks {
			runChunk(c)
		}
		return context.Cause(ctx)
	}

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for _, c := range chunks {
		p.workC <- workItem{
			fn:      func() { runChunk(c) },
			barrier: &wg,
		}
	}
	wg.Wait()
	return context.Cause(ctx)
}
