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
	"math/rand/v2"
	"testing"
)

// The vector backends are portable Go, so the tests run every level
// through the Unchecked constructors regardless of the host CPU.

func scalarFor[T Lanes]() Ops[T, T, bool] { return NewScalarOps[T]() }

func baselineFor[T Lanes]() Ops[T, Vec128[T], LaneMask128[T]] {
	return NewBaselineOps[T](UncheckedBaseline())
}

func wideFor[T Lanes]() Ops[T, Vec256[T], LaneMask256[T]] {
	return NewWideOps[T](UncheckedWide())
}

func maskedWideFor[T Lanes]() Ops[T, Vec512[T], BitMask512[T]] {
	return NewMaskedWideOps[T](UncheckedMaskedWide())
}

func newRand(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(1, uint64(len(t.Name()))))
}

// specialLanes are the edge values every element type is tested with.
func specialLanes[T Lanes]() []T {
	if isFloat[T]() {
		f := func(x float64) T { return T(x) }
		return []T{
			0, 1, 2, f(0.5), f(-1), f(-2.5),
			f(math.Copysign(0, -1)),
			f(math.Inf(1)), f(math.Inf(-1)), f(math.NaN()),
			f(math.MaxFloat32), f(math.SmallestNonzeroFloat32),
		}
	}
	lo, hi := intBounds[T]()
	return []T{0, 1, 2, 3, 7, T(lo), T(hi), T(lo) + 1, T(hi) - 1, allOnes[T]()}
}

func randomLane[T Lanes](r *rand.Rand) T {
	if isFloat[T]() {
		return T((r.Float64()*2 - 1) * 1000)
	}
	return laneFromBits[T](r.Uint64())
}

// sampleLanes returns n lanes mixing random values with specialLanes.
func sampleLanes[T Lanes](r *rand.Rand, n int) []T {
	specials := specialLanes[T]()
	out := make([]T, n)
	for i := range out {
		if r.IntN(4) == 0 {
			out[i] = specials[r.IntN(len(specials))]
			continue
		}
		out[i] = randomLane[T](r)
	}
	return out
}

// finiteLanes returns n random lanes without NaN or infinities, small
// enough that sums and products stay finite.
func finiteLanes[T Lanes](r *rand.Rand, n int) []T {
	out := make([]T, n)
	for i := range out {
		if isFloat[T]() {
			out[i] = T(r.IntN(200) - 100)
		} else {
			out[i] = randomLane[T](r)
		}
	}
	return out
}

func lanesOf[T Lanes, V, M any](o Ops[T, V, M], v V) []T {
	out := make([]T, o.NumLanes())
	o.Store(v, out)
	return out
}

func maskOf[T Lanes, V, M any](o Ops[T, V, M], m M) []bool {
	bits := o.MaskBits(m)
	out := make([]bool, o.NumLanes())
	for i := range out {
		out[i] = bits>>uint(i)&1 != 0
	}
	return out
}

func isNaNLane[T Lanes](x T) bool {
	return isFloat[T]() && math.IsNaN(float64(x))
}

// sameLane compares bit patterns, treating any two NaNs as equal.
func sameLane[T Lanes](a, b T) bool {
	if isNaNLane(a) && isNaNLane(b) {
		return true
	}
	return laneBits(a) == laneBits(b)
}

func assertLanes[T Lanes](t *testing.T, op string, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d lanes, want %d", op, len(got), len(want))
	}
	for i := range got {
		if !sameLane(got[i], want[i]) {
			t.Errorf("%s: lane %d: got %v, want %v", op, i, got[i], want[i])
		}
	}
}
