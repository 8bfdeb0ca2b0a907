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

//go:generate go run ../../../cmd/hwygen -input reduce_base.go -output .

import (
	"math"

	"github.com/ajroetker/go-hwcap/hwy"
)

// BaseSum computes the sum of all elements in a slice. Returns 0 if the
// slice is empty. Integer sums wrap.
//
// Example:
//
//	data := []float32{1, 2, 3, 4}
//	result := Sum(data)  // 1 + 2 + 3 + 4 = 10
func BaseSum[T hwy.Lanes, V, M any](o hwy.Ops[T, V, M], v []T) T {
	sum := o.Zero()
	hwy.ProcessWithTail(o.NumLanes(), len(v),
		func(i int) { sum = o.Add(sum, o.Load(v[i:])) },
		func(i, _ int) { sum = o.Add(sum, o.PartialLoad(v[i:])) },
	)
	return o.ReduceSum(sum)
}

// BaseMax returns the largest element of v, or NaN if v holds a NaN. It
// panics if v is empty.
func BaseMax[T hwy.Lanes, V, M any](o hwy.Ops[T, V, M], v []T) T {
	if len(v) == 0 {
		panic("vec: Max called on empty slice")
	}
	acc := o.Splat(v[0])
	nan := o.FirstN(0)
	step := func(x V) {
		nan = o.MaskOr(nan, o.NotEqual(x, x))
		acc = o.Max(acc, x)
	}
	hwy.ProcessWithTail(o.NumLanes(), len(v),
		func(i int) { step(o.Load(v[i:])) },
		func(i, count int) {
			// Lanes past the slice keep the running maximum.
			step(o.Select(o.FirstN(count), o.PartialLoad(v[i:]), acc))
		},
	)
	if o.AnyTrue(nan) {
		return T(math.NaN())
	}
	return o.ReduceMax(acc)
}

// BaseMin returns the smallest element of v, or NaN if v holds a NaN. It
// panics if v is empty.
func BaseMin[T hwy.Lanes, V, M any](o hwy.Ops[T, V, M], v []T) T {
	if len(v) == 0 {
		panic("vec: Min called on empty slice")
	}
	acc := o.Splat(v[0])
	nan := o.FirstN(0)
	step := func(x V) {
		nan = o.MaskOr(nan, o.NotEqual(x, x))
		acc = o.Min(acc, x)
	}
	hwy.ProcessWithTail(o.NumLanes(), len(v),
		func(i int) { step(o.Load(v[i:])) },
		func(i, count int) {
			step(o.Select(o.FirstN(count), o.PartialLoad(v[i:]), acc))
		},
	)
	if o.AnyTrue(nan) {
		return T(math.NaN())
	}
	return o.ReduceMin(acc)
}

// BaseMaxAbs returns the largest absolute value in v, 0 if v is empty, or
// NaN if v holds a NaN.
//
// Example:
//
//	data := []float32{3, -7, 2}
//	result := MaxAbs(data)  // 7
func BaseMaxAbs[T hwy.Floats, V, M any](o hwy.Ops[T, V, M], v []T) T {
	acc := o.Zero()
	nan := o.FirstN(0)
	lanes := o.NumLanes()

	var i int
	for i = 0; i+lanes <= len(v); i += lanes {
		x := o.Load(v[i:])
		nan = o.MaskOr(nan, o.NotEqual(x, x))
		acc = o.Max(acc, o.Abs(x))
	}
	if i < len(v) {
		x := o.PartialLoad(v[i:])
		nan = o.MaskOr(nan, o.NotEqual(x, x))
		acc = o.Max(acc, o.Abs(x))
	}

	if o.AnyTrue(nan) {
		return T(math.NaN())
	}
	return o.ReduceMax(acc)
}

// BaseCountGreater returns how many elements of v are greater than
// threshold. NaN elements never count.
func BaseCountGreater[T hwy.Lanes, V, M any](o hwy.Ops[T, V, M], v []T, threshold T) int {
	t := o.Splat(threshold)
	count := 0
	hwy.ProcessWithTail(o.NumLanes(), len(v),
		func(i int) { count += o.CountTrue(o.Greater(o.Load(v[i:]), t)) },
		func(i, n int) {
			gt := o.Greater(o.PartialLoad(v[i:]), t)
			count += o.CountTrue(o.MaskAnd(gt, o.FirstN(n)))
		},
	)
	return count
}
