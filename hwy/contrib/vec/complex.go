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

import "github.com/ajroetker/go-hwcap/hwy"

// MulComplex64 multiplies element-wise: dst[i] = a[i] * b[i], over the
// first min(len(dst), len(a), len(b)) elements.
func MulComplex64(dst, a, b []complex64) {
	hwy.Dispatch[float32, struct{}](complexMulKernel(
		hwy.ComplexLanes64(dst), hwy.ComplexLanes64(a), hwy.ComplexLanes64(b)))
}

// MulComplex128 is MulComplex64 for complex128.
func MulComplex128(dst, a, b []complex128) {
	hwy.Dispatch[float64, struct{}](complexMulKernel(
		hwy.ComplexLanes128(dst), hwy.ComplexLanes128(a), hwy.ComplexLanes128(b)))
}

// complexMulKernel works on interleaved (re, im) lanes. The vector
// backends share baseComplexMul; the scalar backend has one lane, so it
// multiplies pairs directly.
func complexMulKernel[F hwy.Floats](dst, a, b []F) hwy.KernelFuncs[F, struct{}] {
	return hwy.KernelFuncs[F, struct{}]{
		ScalarFunc: func(hwy.ScalarOps[F]) struct{} {
			n := min(len(dst), len(a), len(b))
			for i := 0; i+1 < n; i += 2 {
				ar, ai, br, bi := a[i], a[i+1], b[i], b[i+1]
				dst[i], dst[i+1] = ar*br-ai*bi, ar*bi+ai*br
			}
			return struct{}{}
		},
		BaselineFunc: func(o hwy.BaselineOps[F]) struct{} {
			baseComplexMul[F, hwy.Vec128[F], hwy.LaneMask128[F]](o, dst, a, b)
			return struct{}{}
		},
		WideFunc: func(o hwy.WideOps[F]) struct{} {
			baseComplexMul[F, hwy.Vec256[F], hwy.LaneMask256[F]](o, dst, a, b)
			return struct{}{}
		},
		MaskedWideFunc: func(o hwy.MaskedWideOps[F]) struct{} {
			baseComplexMul[F, hwy.Vec512[F], hwy.BitMask512[F]](o, dst, a, b)
			return struct{}{}
		},
	}
}

func baseComplexMul[F hwy.Floats, V, M any](o hwy.Ops[F, V, M], dst, a, b []F) {
	n := min(len(dst), len(a), len(b))
	hwy.ProcessWithTail(o.NumLanes(), n,
		func(i int) {
			o.Store(hwy.ComplexMul(o, o.Load(a[i:]), o.Load(b[i:])), dst[i:])
		},
		func(i, _ int) {
			v := hwy.ComplexMul(o, o.PartialLoad(a[i:n]), o.PartialLoad(b[i:n]))
			o.PartialStore(v, dst[i:n])
		},
	)
}
