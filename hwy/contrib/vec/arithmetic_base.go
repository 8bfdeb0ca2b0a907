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

// Package vec provides slice kernels built on the hwy backends. Each Base*
// function is written once against hwy.Ops; the generated z_*_dispatch.go
// files turn it into an exported function that runs on the backend the
// process-wide dispatcher selected, and an ...At variant that runs on the
// backend of a given token.
//
// In-place kernels write their result to dst and process the first
// min(len(dst), len(x)) elements. Tails are handled with partial loads and
// stores, so no kernel reads or writes past the end of a slice.
package vec

//go:generate go run ../../../cmd/hwygen -input arithmetic_base.go -output .

import "github.com/ajroetker/go-hwcap/hwy"

// BaseAdd performs element-wise addition: dst[i] = a[i] + b[i].
func BaseAdd[T hwy.Lanes, V, M any](o hwy.Ops[T, V, M], dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	hwy.ProcessWithTail(o.NumLanes(), n,
		func(i int) { o.Store(o.Add(o.Load(a[i:]), o.Load(b[i:])), dst[i:]) },
		func(i, _ int) {
			o.PartialStore(o.Add(o.PartialLoad(a[i:n]), o.PartialLoad(b[i:n])), dst[i:n])
		},
	)
}

// BaseMul performs element-wise multiplication: dst[i] = a[i] * b[i].
func BaseMul[T hwy.Lanes, V, M any](o hwy.Ops[T, V, M], dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	hwy.ProcessWithTail(o.NumLanes(), n,
		func(i int) { o.Store(o.Mul(o.Load(a[i:]), o.Load(b[i:])), dst[i:]) },
		func(i, _ int) {
			o.PartialStore(o.Mul(o.PartialLoad(a[i:n]), o.PartialLoad(b[i:n])), dst[i:n])
		},
	)
}

// BaseScale multiplies by a constant: dst[i] = a * x[i].
//
// Example:
//
//	x := []float32{1, 2, 3}
//	dst := make([]float32, 3)
//	Scale(dst, 2, x)  // dst is now {2, 4, 6}
func BaseScale[T hwy.Floats, V, M any](o hwy.Ops[T, V, M], dst []T, a T, x []T) {
	n := min(len(dst), len(x))
	va := o.Splat(a)
	lanes := o.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		o.Store(o.Mul(va, o.Load(x[i:])), dst[i:])
	}
	if i < n {
		o.PartialStore(o.Mul(va, o.PartialLoad(x[i:n])), dst[i:n])
	}
}

// BaseAddScaled accumulates a scaled vector (AXPY): dst[i] += a * x[i].
//
// Example:
//
//	dst := []float32{1, 1, 1}
//	AddScaled(dst, 2, []float32{1, 2, 3})  // dst is now {3, 5, 7}
func BaseAddScaled[T hwy.Floats, V, M any](o hwy.Ops[T, V, M], dst []T, a T, x []T) {
	n := min(len(dst), len(x))
	va := o.Splat(a)
	lanes := o.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		o.Store(o.MulAdd(va, o.Load(x[i:]), o.Load(dst[i:])), dst[i:])
	}
	if i < n {
		d := dst[i:n]
		o.PartialStore(o.MulAdd(va, o.PartialLoad(x[i:n]), o.PartialLoad(d)), d)
	}
}

// BaseClamp limits every element to [lo, hi]: dst[i] = min(max(x[i], lo), hi).
// NaN elements become lo.
func BaseClamp[T hwy.Lanes, V, M any](o hwy.Ops[T, V, M], dst, x []T, lo, hi T) {
	n := min(len(dst), len(x))
	vlo, vhi := o.Splat(lo), o.Splat(hi)
	hwy.ProcessWithTail(o.NumLanes(), n,
		func(i int) { o.Store(o.Min(o.Max(o.Load(x[i:]), vlo), vhi), dst[i:]) },
		func(i, _ int) {
			o.PartialStore(o.Min(o.Max(o.PartialLoad(x[i:n]), vlo), vhi), dst[i:n])
		},
	)
}
