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

import "math/bits"

// This file provides bit manipulation operations for integer lanes. They are
// written once over Ops and apply to any backend.

// laneWise applies f to every lane of v.
func laneWise[T Lanes, V, M any](o Ops[T, V, M], v V, f func(T) T) V {
	for i := range o.NumLanes() {
		v = o.SetLane(v, i, f(o.GetLane(v, i)))
	}
	return v
}

// PopCount counts the number of set bits (1s) in each lane.
func PopCount[T Integers, V, M any](o Ops[T, V, M], v V) V {
	return laneWise(o, v, func(x T) T { return T(bits.OnesCount64(laneBits(x))) })
}

// LeadingZeroCount counts the number of leading zero bits in each lane.
// A zero lane yields the lane width in bits.
func LeadingZeroCount[T Integers, V, M any](o Ops[T, V, M], v V) V {
	pad := 64 - LaneBits[T]()
	return laneWise(o, v, func(x T) T { return T(bits.LeadingZeros64(laneBits(x)) - pad) })
}

// TrailingZeroCount counts the number of trailing zero bits in each lane.
// A zero lane yields the lane width in bits.
func TrailingZeroCount[T Integers, V, M any](o Ops[T, V, M], v V) V {
	n := LaneBits[T]()
	return laneWise(o, v, func(x T) T { return T(min(bits.TrailingZeros64(laneBits(x)), n)) })
}

// ReverseBits reverses the bit order within each lane.
func ReverseBits[T Integers, V, M any](o Ops[T, V, M], v V) V {
	shift := 64 - LaneBits[T]()
	return laneWise(o, v, func(x T) T { return laneFromBits[T](bits.Reverse64(laneBits(x)) >> shift) })
}

// RotateBitsRight rotates the bits of each lane right by count.
func RotateBitsRight[T Integers, V, M any](o Ops[T, V, M], v V, count int) V {
	n := LaneBits[T]()
	count = wrapIndex(count, n)
	return laneWise(o, v, func(x T) T {
		u := laneBits(x)
		return laneFromBits[T](u>>uint(count) | u<<uint(n-count))
	})
}

// HighestSetBitIndex returns the index of the highest set bit of each lane,
// or -1 (all ones for unsigned lanes) for a zero lane.
func HighestSetBitIndex[T Integers, V, M any](o Ops[T, V, M], v V) V {
	return laneWise(o, v, func(x T) T {
		if u := laneBits(x); u != 0 {
			return T(bits.Len64(u) - 1)
		}
		return allOnes[T]()
	})
}
