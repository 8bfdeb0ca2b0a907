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
	"math/bits"
	"unsafe"
)

// Per-lane arithmetic shared by every backend. The scalar backend calls
// these directly and the vector backends apply them lane by lane, so all
// elementwise results are bit-identical across levels.

func addLane[T Lanes](a, b T) T { return a + b }
func subLane[T Lanes](a, b T) T { return a - b }
func mulLane[T Lanes](a, b T) T { return a * b }
func negLane[T Lanes](a T) T    { return -a }

// divLane follows IEEE-754 for floats. Integer division by zero yields 0 and
// MinInt / -1 wraps to MinInt.
func divLane[T Lanes](a, b T) T {
	if b == 0 && !isFloat[T]() {
		return 0
	}
	return a / b
}

// minLane returns b when either operand is NaN.
func minLane[T Lanes](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// maxLane returns b when either operand is NaN.
func maxLane[T Lanes](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// absLane clears the sign bit of floats, so Abs(-0) is +0 and Abs(NaN) is a
// NaN with a clear sign. Abs(MinInt) wraps to MinInt.
func absLane[T Lanes](a T) T {
	switch x := any(a).(type) {
	case float32:
		return T(math.Float32frombits(math.Float32bits(x) &^ (1 << 31)))
	case float64:
		return T(math.Float64frombits(math.Float64bits(x) &^ (1 << 63)))
	}
	if a < 0 {
		return -a
	}
	return a
}

// mulAddLane computes a*b + c with a single rounding for float64. float32
// goes through a float64 FMA: the product is exact in float64, so the only
// difference from a native float32 FMA is the rare double-rounding tie.
func mulAddLane[T Lanes](a, b, c T) T {
	switch x := any(a).(type) {
	case float32:
		y, z := any(b).(float32), any(c).(float32)
		return T(float32(math.FMA(float64(x), float64(y), float64(z))))
	case float64:
		y, z := any(b).(float64), any(c).(float64)
		return T(math.FMA(x, y, z))
	}
	return a*b + c
}

// wideningMulLane returns the low and high halves of the exact product.
// For floats lo is the rounded product and hi the rounding error, so that
// lo + hi == a * b exactly (barring overflow and underflow).
func wideningMulLane[T Lanes](a, b T) (lo, hi T) {
	switch x := any(a).(type) {
	case float32:
		y := any(b).(float32)
		p := float64(x) * float64(y)
		l := float32(p)
		return T(l), T(float32(p - float64(l)))
	case float64:
		y := any(b).(float64)
		p := x * y
		return T(p), T(math.FMA(x, y, -p))
	case int64:
		y := any(b).(int64)
		h, l := bits.Mul64(uint64(x), uint64(y))
		sh := int64(h)
		if x < 0 {
			sh -= y
		}
		if y < 0 {
			sh -= x
		}
		return T(int64(l)), T(sh)
	case uint64:
		y := any(b).(uint64)
		h, l := bits.Mul64(x, y)
		return T(l), T(h)
	}
	n := uint(LaneBits[T]())
	if kindOf[T]() == unsignedLane {
		p := uint64(a) * uint64(b)
		return T(p), T(p >> n)
	}
	p := int64(a) * int64(b)
	return T(p), T(p >> n)
}

// maxLanes is the lane count of the widest register (512 bits of int8).
const maxLanes = 64

// laneBits returns the raw bit pattern of x, zero-extended.
func laneBits[T Lanes](x T) uint64 {
	p := unsafe.Pointer(&x)
	switch sizeOf[T]() {
	case 1:
		return uint64(*(*uint8)(p))
	case 2:
		return uint64(*(*uint16)(p))
	case 4:
		return uint64(*(*uint32)(p))
	default:
		return *(*uint64)(p)
	}
}

// laneFromBits is the inverse of laneBits; high bits are discarded.
func laneFromBits[T Lanes](u uint64) T {
	var x T
	p := unsafe.Pointer(&x)
	switch sizeOf[T]() {
	case 1:
		*(*uint8)(p) = uint8(u)
	case 2:
		*(*uint16)(p) = uint16(u)
	case 4:
		*(*uint32)(p) = uint32(u)
	default:
		*(*uint64)(p) = u
	}
	return x
}

// allOnes is the lane value with every bit set.
func allOnes[T Lanes]() T { return laneFromBits[T](math.MaxUint64) }

// reduceTree folds l pairwise: lane i with lane i+n/2, halving until one
// lane is left. l is clobbered. len(l) must be a power of two.
func reduceTree[T Lanes](l []T, f func(a, b T) T) T {
	for w := len(l) / 2; w >= 1; w /= 2 {
		for i := 0; i < w; i++ {
			l[i] = f(l[i], l[i+w])
		}
	}
	return l[0]
}

// wrapIndex maps any integer to [0, n).
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
