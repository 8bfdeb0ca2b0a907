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

//go:generate go run ../../../cmd/hwygen -input norm_base.go -output .

import "github.com/ajroetker/go-hwcap/hwy"

// BaseSquaredNorm computes the squared L2 norm (sum of squares) of a vector.
// The result is Dot(v, v).
//
// Example:
//
//	v := []float32{3, 4}
//	result := SquaredNorm(v)  // 3*3 + 4*4 = 25
func BaseSquaredNorm[T hwy.Floats, V, M any](o hwy.Ops[T, V, M], v []T) T {
	return BaseDot(o, v, v)
}

// BaseL2SquaredDistance computes the squared Euclidean distance between two
// slices: Σ((a[i] - b[i])²) over the first min(len(a), len(b)) elements.
//
// Example:
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	result := L2SquaredDistance(a, b)  // 9 + 9 + 9 = 27
func BaseL2SquaredDistance[T hwy.Floats, V, M any](o hwy.Ops[T, V, M], a, b []T) T {
	n := min(len(a), len(b))
	sum := o.Zero()
	hwy.ProcessWithTail(o.NumLanes(), n,
		func(i int) {
			d := o.Sub(o.Load(a[i:]), o.Load(b[i:]))
			sum = o.MulAdd(d, d, sum)
		},
		func(i, _ int) {
			d := o.Sub(o.PartialLoad(a[i:n]), o.PartialLoad(b[i:n]))
			sum = o.MulAdd(d, d, sum)
		},
	)
	return o.ReduceSum(sum)
}
