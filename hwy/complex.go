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

package hwy

import (
	"math"
	"unsafe"
)

// Complex values live in float vectors as interleaved (re, im) pairs: lane
// 2i is the real part and lane 2i+1 the imaginary part of element i. The
// helpers below need at least two lanes, so they are not available on the
// scalar backend.

// maxFloatLanes is the most float lanes any register holds (512 bits of float32).
const maxFloatLanes = 16

// ComplexLanes64 reinterprets c as interleaved float32 lanes without copying.
func ComplexLanes64(c []complex64) []float32 {
	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(c))), 2*len(c))
}

// ComplexLanes128 reinterprets c as interleaved float64 lanes without copying.
func ComplexLanes128(c []complex128) []float64 {
	return unsafe.Slice((*float64)(unsafe.Pointer(unsafe.SliceData(c))), 2*len(c))
}

// Complex64FromLanes reinterprets interleaved float32 lanes as complex64
// values. A trailing odd lane is dropped.
func Complex64FromLanes(f []float32) []complex64 {
	return unsafe.Slice((*complex64)(unsafe.Pointer(unsafe.SliceData(f))), len(f)/2)
}

// Complex128FromLanes reinterprets interleaved float64 lanes as complex128
// values. A trailing odd lane is dropped.
func Complex128FromLanes(f []float64) []complex128 {
	return unsafe.Slice((*complex128)(unsafe.Pointer(unsafe.SliceData(f))), len(f)/2)
}

// ComplexPairs returns the number of complex values held by one vector of o.
func ComplexPairs[F Floats, V, M any](o Ops[F, V, M]) int {
	return o.NumLanes() / 2
}

func requirePairs[F Floats, V, M any](o Ops[F, V, M]) int {
	n := o.NumLanes()
	if n < 2 {
		panic("hwy: complex lanes need a vector backend with at least two lanes")
	}
	return n
}

func pairShuffle[F Floats, V, M any](o Ops[F, V, M], v V, lane func(i int) int) V {
	requirePairs(o)
	return permute(o, v, lane)
}

// signFlip returns -0 in the lanes whose parity is odd (or even), +0
// elsewhere. Xor with it flips exactly those sign bits.
func signFlip[F Floats, V, M any](o Ops[F, V, M], odd bool) V {
	n := requirePairs(o)
	var buf [maxFloatLanes]F
	negZero := F(math.Copysign(0, -1))
	for i := range n {
		if (i%2 == 1) == odd {
			buf[i] = negZero
		}
	}
	return o.Load(buf[:n])
}

// ComplexSwapReIm swaps the real and imaginary part of every pair.
func ComplexSwapReIm[F Floats, V, M any](o Ops[F, V, M], v V) V {
	return pairShuffle(o, v, func(i int) int { return i ^ 1 })
}

// ComplexDupReal copies each real part into its imaginary lane.
func ComplexDupReal[F Floats, V, M any](o Ops[F, V, M], v V) V {
	return pairShuffle(o, v, func(i int) int { return i &^ 1 })
}

// ComplexDupImag copies each imaginary part into its real lane.
func ComplexDupImag[F Floats, V, M any](o Ops[F, V, M], v V) V {
	return pairShuffle(o, v, func(i int) int { return i | 1 })
}

// ComplexConj negates every imaginary part.
func ComplexConj[F Floats, V, M any](o Ops[F, V, M], v V) V {
	return o.Xor(v, signFlip(o, true))
}

// ComplexAdd adds pairwise. It is Add, provided for symmetry.
func ComplexAdd[F Floats, V, M any](o Ops[F, V, M], a, b V) V {
	return o.Add(a, b)
}

// ComplexMul multiplies pairwise:
// (ar + i·ai)(br + i·bi) = (ar·br − ai·bi) + i·(ar·bi + ai·br).
func ComplexMul[F Floats, V, M any](o Ops[F, V, M], a, b V) V {
	im := o.Xor(ComplexDupImag(o, a), signFlip(o, false))
	return o.MulAdd(ComplexDupReal(o, a), b, o.Mul(im, ComplexSwapReIm(o, b)))
}

// ComplexMulAdd returns a·b + c pairwise.
func ComplexMulAdd[F Floats, V, M any](o Ops[F, V, M], a, b, c V) V {
	im := o.Xor(ComplexDupImag(o, a), signFlip(o, false))
	return o.MulAdd(ComplexDupReal(o, a), b, o.MulAdd(im, ComplexSwapReIm(o, b), c))
}

// ComplexConjMul returns conj(a)·b pairwise.
func ComplexConjMul[F Floats, V, M any](o Ops[F, V, M], a, b V) V {
	im := o.Xor(ComplexDupImag(o, a), signFlip(o, true))
	return o.MulAdd(ComplexDupReal(o, a), b, o.Mul(im, ComplexSwapReIm(o, b)))
}

// ComplexAbs2 returns re² + im² in both lanes of every pair.
func ComplexAbs2[F Floats, V, M any](o Ops[F, V, M], v V) V {
	sq := o.Mul(v, v)
	return o.Add(sq, ComplexSwapReIm(o, sq))
}
