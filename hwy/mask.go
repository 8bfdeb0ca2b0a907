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

import "unsafe"

// LaneMask128 is a per-lane mask for Vec128: every lane is either all ones
// or all zeros. It has the same register image as the vector it selects.
type LaneMask128[T Lanes] struct {
	raw [2]uint64
}

// LaneMask256 is a per-lane mask for Vec256.
type LaneMask256[T Lanes] struct {
	raw [4]uint64
}

// BitMask512 is a bit-packed mask for Vec512: bit i corresponds to lane i.
type BitMask512[T Lanes] struct {
	bits uint64
}

func (m *LaneMask128[T]) words() []uint64 { return m.raw[:] }
func (m *LaneMask256[T]) words() []uint64 { return m.raw[:] }

func (m *LaneMask128[T]) get(i int) bool     { return laneMaskGet[T](m.raw[:], i) }
func (m *LaneMask128[T]) set(i int, on bool) { laneMaskSet[T](m.raw[:], i, on) }
func (m *LaneMask256[T]) get(i int) bool     { return laneMaskGet[T](m.raw[:], i) }
func (m *LaneMask256[T]) set(i int, on bool) { laneMaskSet[T](m.raw[:], i, on) }

func (m *BitMask512[T]) get(i int) bool { return m.bits>>uint(i)&1 != 0 }

func (m *BitMask512[T]) set(i int, on bool) {
	if on {
		m.bits |= 1 << uint(i)
	} else {
		m.bits &^= 1 << uint(i)
	}
}

func laneMaskGet[T Lanes](words []uint64, i int) bool {
	b := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), len(words)*8)
	return b[i*sizeOf[T]()] != 0
}

func laneMaskSet[T Lanes](words []uint64, i int, on bool) {
	b := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), len(words)*8)
	size := sizeOf[T]()
	fill := byte(0)
	if on {
		fill = 0xff
	}
	for j := i * size; j < (i+1)*size; j++ {
		b[j] = fill
	}
}

// NumLanes returns the number of lanes covered by the mask.
func (LaneMask128[T]) NumLanes() int { return 16 / sizeOf[T]() }

// NumLanes returns the number of lanes covered by the mask.
func (LaneMask256[T]) NumLanes() int { return 32 / sizeOf[T]() }

// NumLanes returns the number of lanes covered by the mask.
func (BitMask512[T]) NumLanes() int { return 64 / sizeOf[T]() }

// Get reports whether lane i is set.
func (m LaneMask128[T]) Get(i int) bool { return m.get(i) }

// Get reports whether lane i is set.
func (m LaneMask256[T]) Get(i int) bool { return m.get(i) }

// Get reports whether lane i is set.
func (m BitMask512[T]) Get(i int) bool { return m.get(i) }

// Raw returns the register image of the mask.
func (m LaneMask128[T]) Raw() [2]uint64 { return m.raw }

// Raw returns the register image of the mask.
func (m LaneMask256[T]) Raw() [4]uint64 { return m.raw }

// Bits returns the mask register: bit i is lane i.
func (m BitMask512[T]) Bits() uint64 { return m.bits }

// BitMask512FromBits builds a mask from a bit pattern. Bits above the lane
// count are cleared.
func BitMask512FromBits[T Lanes](b uint64) BitMask512[T] {
	n := 64 / sizeOf[T]()
	if n < 64 {
		b &= 1<<uint(n) - 1
	}
	return BitMask512[T]{bits: b}
}
