// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ajroetker/go-hwcap/hwy"
	"github.com/ajroetker/go-hwcap/hwy/contrib/vec"
	"github.com/ajroetker/go-hwcap/hwy/contrib/workerpool"
	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"
)

// timing is the measured cost of one dot product.
type timing struct {
	Name  string
	Iters int
	PerOp time.Duration
}

// GFLOPS counts a multiply and an add per element.
func (t timing) GFLOPS(n int) float64 {
	if t.PerOp <= 0 {
		return 0
	}
	return 2 * float64(n) / float64(t.PerOp.Nanoseconds())
}

func newBenchCmd(g *globalFlags) *cobra.Command {
	var (
		size     int
		duration time.Duration
		workers  int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time a float32 dot product at every granted level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, logger, err := g.dispatcher(cmd)
			if err != nil {
				return err
			}
			if size <= 0 {
				return fmt.Errorf("--size must be positive, got %d", size)
			}
			a, b := inputs[float32](size, 1)

			var timings []timing
			for _, tok := range d.Available() {
				logger.Debug("benchmarking backend", "level", tok.Level(), "size", size)
				timings = append(timings, measure(tok.Level().String(), duration, func() { vec.DotAt(tok, a, b) }))
			}
			timings = append(timings, measure("vek32", duration, func() { vek32.Dot(a, b) }))

			pool := workerpool.New(workers)
			defer pool.Close()
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			var perr error
			selected := d.Select()
			timings = append(timings, measure(fmt.Sprintf("parallel/%d/%v", pool.NumWorkers(), selected.Level()), duration, func() {
				if _, err := vec.DotParallelAt(ctx, selected, pool, a, b); err != nil && perr == nil {
					perr = err
				}
			}))
			if perr != nil {
				return fmt.Errorf("parallel dot: %w", perr)
			}

			writeTimings(cmd.OutOrStdout(), selected.Level(), size, timings)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", getEnvInt("HWYINFO_BENCH_SIZE", 4096), "Vector length")
	cmd.Flags().DurationVar(&duration, "duration", getEnvDuration("HWYINFO_BENCH_DURATION", 200*time.Millisecond), "Minimum run time per row")
	cmd.Flags().IntVar(&workers, "workers", getEnvInt("HWYINFO_WORKERS", 0), "Workers for the parallel row (0 = GOMAXPROCS)")
	return cmd
}

// measure runs fn in doubling batches until the total time reaches d.
func measure(name string, d time.Duration, fn func()) timing {
	iters := 0
	var elapsed time.Duration
	for batch := 1; elapsed < d; batch *= 2 {
		start := time.Now()
		for range batch {
			fn()
		}
		elapsed += time.Since(start)
		iters += batch
	}
	return timing{Name: name, Iters: iters, PerOp: elapsed / time.Duration(max(iters, 1))}
}

func writeTimings(w io.Writer, selected hwy.Level, n int, timings []timing) {
	fmt.Fprintf(w, "dot product, %d float32 elements, selected %v\n", n, selected)
	for _, t := range timings {
		fmt.Fprintf(w, "%-24s %10d iters %12v/op %8.2f GFLOP/s\n", t.Name, t.Iters, t.PerOp, t.GFLOPS(n))
	}
}
