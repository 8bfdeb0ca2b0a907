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

package matvec

import (
	"context"

	"github.com/ajroetker/go-hwcap/hwy"
	"github.com/ajroetker/go-hwcap/hwy/contrib/workerpool"
)

// minParallelRows is the fewest rows one parallel chunk gets.
const minParallelRows = 16

// MatVecParallel is MatVec with the rows split across pool's workers. Every
// result element is computed by exactly one worker, so the output equals
// MatVec's on the same backend.
func MatVecParallel[T hwy.Floats](ctx context.Context, pool *workerpool.Pool, m []T, rows, cols int, v, result []T) error {
	checkShape(len(m), rows, cols, len(v), len(result))
	return pool.Run(ctx, rows, minParallelRows, func(ctx context.Context, start, end int) error {
		MatVec(m[start*cols:end*cols], end-start, cols, v, result[start:end])
		return nil
	})
}
