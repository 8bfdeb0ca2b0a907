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

package vec

import (
	"context"

	"github.com/ajroetker/go-hwcap/hwy"
	"github.com/ajroetker/go-hwcap/hwy/contrib/workerpool"
)

// minParallelChunk is the fewest elements a DotParallel chunk gets; smaller
// chunks cost more in scheduling than the kernel saves.
const minParallelChunk = 4096

// DotParallel computes Dot(a, b) by splitting the input across pool's
// workers. Each chunk runs on the process-wide backend. Partial sums are
// added in chunk order, so the result is deterministic for a given pool size
// but can differ from Dot in the last bits. It returns ctx's error if ctx is
// canceled before every chunk ran.
func DotParallel[T hwy.Floats](ctx context.Context, pool *workerpool.Pool, a, b []T) (T, error) {
	return DotParallelAt(ctx, hwy.Select(), pool, a, b)
}

// DotParallelAt is DotParallel with every chunk running on the backend of
// tok.
func DotParallelAt[T hwy.Floats](ctx context.Context, tok hwy.Token, pool *workerpool.Pool, a, b []T) (T, error) {
	n := min(len(a), len(b))
	chunks := pool.Chunks(n, minParallelChunk)
	partial := make([]T, len(chunks))
	err := pool.Run(ctx, n, minParallelChunk, func(ctx context.Context, start, end int) error {
		// Every chunk but the last has the same length.
		partial[start/chunks[0].End] = DotAt(tok, a[start:end], b[start:end])
		return nil
	})
	if err != nil {
		return 0, err
	}
	var sum T
	for _, p := range partial {
		sum += p
	}
	return sum, nil
}
