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
	"math"

	"github.com/ajroetker/go-hwcap/hwy"
)

// Norm computes the L2 norm (Euclidean magnitude) of v.
func Norm[T hwy.Floats](v []T) T {
	return T(math.Sqrt(float64(SquaredNorm(v))))
}

// L2Distance computes the Euclidean distance between a and b.
func L2Distance[T hwy.Floats](a, b []T) T {
	return T(math.Sqrt(float64(L2SquaredDistance(a, b))))
}

// Mean returns the arithmetic mean of v, or 0 if v is empty.
func Mean[T hwy.Floats](v []T) T {
	if len(v) == 0 {
		return 0
	}
	return Sum(v) / T(len(v))
}

// Normalize writes v scaled to unit L2 norm into dst. A zero vector is
// copied unchanged.
func Normalize[T hwy.Floats](dst, v []T) {
	norm := Norm(v)
	if norm == 0 {
		copy(dst, v)
		return
	}
	Scale(dst, 1/norm, v)
}
