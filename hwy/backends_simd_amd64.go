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


//go:build amd64 && goexperiment.simd

package hwy

import "simd/archsimd"

// avx2F32 runs the wide float32 arithmetic on AVX registers.
type avx2F32 struct{}

func (avx2F32) add(a, b Vec256[float32]) Vec256[float32] {
	return avx2F32Store(avx2F32Load(a).Add(avx2F32Load(b)))
}

func (avx2F32) sub(a, b Vec256[float32]) Vec256[float32] {
	return avx2F32Store(avx2F32Load(a).Sub(avx2F32Load(b)))
}

func (avx2F32) mul(a, b Vec256[float32]) Vec256[float32] {
	return avx2F32Store(avx2F32Load(a).Mul(avx2F32Load(b)))
}

func (avx2F32) div(a, b Vec256[float32]) Vec256[float32] {
	return avx2F32Store(avx2F32Load(a).Div(avx2F32Load(b)))
}

func avx2F32Load(v Vec256[float32]) archsimd.Float32x8 {
	return archsimd.LoadFloat32x8Slice(v.lanes())
}

func avx2F32Store(x archsimd.Float32x8) Vec256[float32] {
	var r Vec256[float32]
	x.StoreSlice(r.lanes())
	return r
}

func init() {
	if _, ok := ProbeWide(); ok {
		nativeWideF32 = avx2F32{}
	}
}
