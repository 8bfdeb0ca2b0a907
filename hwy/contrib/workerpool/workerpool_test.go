// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"errors"
	"runtime"
	"slices"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// Test with n smaller than workers
	n := 3
	var count atomic.Int32

	pool.ParallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})

	if called {
		t.Error("ParallelFor with n=0 should not call fn")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)

	// Should still work (sequential fallback)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestChunks(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	tests := []struct {
		n, minChunk int
		want        []Range
	}{
		{0, 1, nil},
		{3, 1, []Range{{0, 1}, {1, 2}, {2, 3}}},
		{10, 1, []Range{{0, 3}, {3, 6}, {6, 9}, {9, 10}}},
		{10, 4, []Range{{0, 5}, {5, 10}}},
		{10, 100, []Range{{0, 10}}},
		{8, 0, []Range{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
	}
	for _, tt := range tests {
		got := pool.Chunks(tt.n, tt.minChunk)
		if len(got) != len(tt.want) {
			t.Errorf("Chunks(%d, %d) = %v, want %v", tt.n, tt.minChunk, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Chunks(%d, %d) = %v, want %v", tt.n, tt.minChunk, got, tt.want)
				break
			}
		}
	}
}

func TestRun(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 1000
	results := make([]int, n)
	err := pool.Run(context.Background(), n, 16, func(ctx context.Context, start, end int) error {
		for i := start; i < end; i++ {
			results[i] = i * 3
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i := range n {
		if results[i] != i*3 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*3)
		}
	}
}

func TestRunError(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	errBoom := errors.New("boom")
	var calls atomic.Int32
	err := pool.Run(context.Background(), 100, 1, func(ctx context.Context, start, end int) error {
		calls.Add(1)
		if start == 0 {
			return errBoom
		}
		<-ctx.Done()
		return ctx.Err()
	})
	if !errors.Is(err, errBoom) {
		t.Errorf("Run error = %v, want %v", err, errBoom)
	}
	if calls.Load() == 0 {
		t.Error("Run did not call fn")
	}
}

func TestRunCanceled(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var called bool
	err := pool.Run(ctx, 10, 1, func(ctx context.Context, start, end int) error {
		called = true
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
	if called {
		t.Error("Run on a canceled context should not call fn")
	}
}

func TestRunOnPoolWorkers(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	base := runtime.NumGoroutine()
	var peak atomic.Int64
	err := pool.Run(context.Background(), 400, 1, func(ctx context.Context, start, end int) error {
		for {
			cur, n := peak.Load(), int64(runtime.NumGoroutine())
			if n <= cur || peak.CompareAndSwap(cur, n) {
				break
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := int(peak.Load()); got > base {
		t.Errorf("Run started goroutines: %d running, %d before", got, base)
	}
}

func TestRunClosedPool(t *testing.T) {
	pool := New(4)
	pool.Close()

	errBoom := errors.New("boom")
	var calls []int
	err := pool.Run(context.Background(), 100, 1, func(ctx context.Context, start, end int) error {
		calls = append(calls, start)
		if start == 25 {
			return errBoom
		}
		return nil
	})
	if !errors.Is(err, errBoom) {
		t.Errorf("Run error = %v, want %v", err, errBoom)
	}
	if want := []int{0, 25}; !slices.Equal(calls, want) {
		t.Errorf("Run chunk starts = %v, want %v", calls, want)
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0) // Use GOMAXPROCS
	defer pool.Close()

	n := 1000

	for b.Loop() {
		pool.ParallelFor(n, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func BenchmarkParallelForAtomic(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1000

	for b.Loop() {
		pool.ParallelForAtomic(n, func(j int) {
			_ = j * j
		})
	}
}

func BenchmarkPoolOverhead(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	b.Run("Pool", func(b *testing.B) {
		for b.Loop() {
			pool.ParallelFor(10, func(start, end int) {})
		}
	})
}
