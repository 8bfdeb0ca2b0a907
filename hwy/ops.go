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

// Ops is the uniform operation set every backend implements. T is the lane
// type, V the backend's vector type and M its mask type.
//
// All operations are pure. Elementwise results are identical on every
// backend for identical inputs. Horizontal float reductions add lanes in a
// pairwise tree whose shape depends on NumLanes, so their rounding may
// differ between levels. Min and Max return b when either lane is NaN, so
// whether ReduceMin and ReduceMax keep a NaN depends on where it sits in the
// tree; kernels that must propagate NaN test for it first.
//
// Memory operations never touch elements outside the slice they are given,
// except Load and Store, which require at least NumLanes elements and panic
// like a slice index otherwise.
type Ops[T Lanes, V, M any] interface {
	// Level is the level of the backend.
	Level() Level
	// Token is the capability token this backend was built from.
	Token() Token
	// NumLanes is the number of T lanes in V.
	NumLanes() int

	Zero() V
	Splat(x T) V
	// Iota returns start, start+1, start+2, ...
	Iota(start T) V
	// FromLanes builds a vector from the first NumLanes elements of lanes.
	FromLanes(lanes []T) V
	GetLane(v V, i int) T
	SetLane(v V, i int, x T) V

	Load(src []T) V
	Store(v V, dst []T)
	// PartialLoad loads the first min(len(src), NumLanes) lanes and zeroes
	// the rest.
	PartialLoad(src []T) V
	// PartialStore stores the first min(len(dst), NumLanes) lanes.
	PartialStore(v V, dst []T)
	// PartialLoadLast loads the last k = min(len(src), NumLanes) elements of
	// src into the highest k lanes and zeroes the rest.
	PartialLoadLast(src []T) V
	// PartialStoreLast stores the highest k lanes into the last k elements
	// of dst.
	PartialStoreLast(v V, dst []T)
	// MaskLoad loads the lanes whose mask bit is set and zeroes the rest.
	// It panics if a set lane is beyond len(src).
	MaskLoad(m M, src []T) V
	// MaskStore stores the lanes whose mask bit is set, leaving the other
	// elements of dst untouched.
	MaskStore(m M, v V, dst []T)
	// FirstN returns a mask with lanes [0, k) set.
	FirstN(k int) M
	// MaskBetween returns a mask with lanes [start, end) set.
	MaskBetween(start, end int) M

	Add(a, b V) V
	Sub(a, b V) V
	Mul(a, b V) V
	Div(a, b V) V
	// MulAdd returns a*b + c, fused for floats.
	MulAdd(a, b, c V) V
	Neg(a V) V
	Abs(a V) V
	Min(a, b V) V
	Max(a, b V) V
	// WideningMul returns the low and high halves of the exact product.
	WideningMul(a, b V) (lo, hi V)

	And(a, b V) V
	Or(a, b V) V
	Xor(a, b V) V
	// AndNot returns ^a & b.
	AndNot(a, b V) V
	Not(a V) V

	Equal(a, b V) M
	NotEqual(a, b V) M
	Less(a, b V) M
	LessEqual(a, b V) M
	Greater(a, b V) M
	GreaterEqual(a, b V) M

	// Select returns a where m is set and b elsewhere.
	Select(m M, a, b V) V
	MaskAnd(a, b M) M
	MaskOr(a, b M) M
	MaskXor(a, b M) M
	// MaskAndNot returns ^a & b.
	MaskAndNot(a, b M) M
	MaskNot(m M) M
	CountTrue(m M) int
	// FirstTrue returns the lowest set lane, or NumLanes if none is set.
	FirstTrue(m M) int
	AllTrue(m M) bool
	AnyTrue(m M) bool
	// MaskBits returns the mask bit-packed: bit i is lane i.
	MaskBits(m M) uint64

	// RotateRight moves lane i to lane (i+amount) mod NumLanes.
	RotateRight(v V, amount int) V
	// RotateLeft moves lane i to lane (i-amount) mod NumLanes.
	RotateLeft(v V, amount int) V
	Reverse(v V) V
	// Broadcast copies lane i to every lane.
	Broadcast(v V, i int) V
	// InterleaveLower returns a0 b0 a1 b1 ... from the lower halves.
	InterleaveLower(a, b V) V
	// InterleaveUpper returns the same from the upper halves.
	InterleaveUpper(a, b V) V
	// Shuffle sets lane i to lane idx[i] mod NumLanes of v.
	Shuffle(v V, idx []int) V

	ReduceSum(v V) T
	ReduceProduct(v V) T
	ReduceMin(v V) T
	ReduceMax(v V) T
}

// ScalarOps is the portable backend: one lane, V = T and M = bool.
type ScalarOps[T Lanes] interface {
	Ops[T, T, bool]
	scalarOps()
}

// BaselineOps is the 128-bit backend.
type BaselineOps[T Lanes] interface {
	Ops[T, Vec128[T], LaneMask128[T]]
	baselineOps()
}

// WideOps is the 256-bit backend.
type WideOps[T Lanes] interface {
	Ops[T, Vec256[T], LaneMask256[T]]
	wideOps()
}

// MaskedWideOps is the 512-bit backend with bit-packed masks.
type MaskedWideOps[T Lanes] interface {
	Ops[T, Vec512[T], BitMask512[T]]
	maskedWideOps()
}

// NewScalarOps returns the scalar backend. It needs no token.
func NewScalarOps[T Lanes]() ScalarOps[T] {
	return scalarOps[T]{}
}

// NewBaselineOps returns the 128-bit backend. It panics if tok is nil.
func NewBaselineOps[T Lanes](tok Baseline) BaselineOps[T] {
	if tok == nil {
		panic("hwy: NewBaselineOps called with a nil Baseline token")
	}
	return baselineOps[T]{}
}

// NewWideOps returns the 256-bit backend. It panics if tok is nil.
func NewWideOps[T Lanes](tok Wide) WideOps[T] {
	if tok == nil {
		panic("hwy: NewWideOps called with a nil Wide token")
	}
	return wideOps[T]{}
}

// NewMaskedWideOps returns the 512-bit backend. It panics if tok is nil.
func NewMaskedWideOps[T Lanes](tok MaskedWide) MaskedWideOps[T] {
	if tok == nil {
		panic("hwy: NewMaskedWideOps called with a nil MaskedWide token")
	}
	return maskedWideOps[T]{}
}
