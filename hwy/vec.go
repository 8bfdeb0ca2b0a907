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
	"fmt"
	"unsafe"
)

// Vec128 is a 16-byte register image holding 16/sizeof(T) lanes.
//
// Vectors are plain values: copying one copies the register. The storage is
// kept as 64-bit words so that every lane view is naturally aligned.
type Vec128[T Lanes] struct {
	raw [2]uint64
}

// Vec256 is a 32-byte register image holding 32/sizeof(T) lanes.
type Vec256[T Lanes] struct {
	raw [4]uint64
}

// Vec512 is a 64-byte register image holding 64/sizeof(T) lanes.
type Vec512[T Lanes] struct {
	raw [8]uint64
}

func (v *Vec128[T]) lanes() []T      { return laneView[T](&v.raw[0], len(v.raw)) }
func (v *Vec128[T]) words() []uint64 { return v.raw[:] }
func (v *Vec256[T]) lanes() []T      { return laneView[T](&v.raw[0], len(v.raw)) }
func (v *Vec256[T]) words() []uint64 { return v.raw[:] }
func (v *Vec512[T]) lanes() []T      { return laneView[T](&v.raw[0], len(v.raw)) }
func (v *Vec512[T]) words() []uint64 { return v.raw[:] }

// laneView reinterprets nwords 64-bit words as a slice of T.
func laneView[T Lanes](p *uint64, nwords int) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(p)), nwords*8/sizeOf[T]())
}

// NumLanes returns the number of lanes in the vector.
func (Vec128[T]) NumLanes() int { return 16 / sizeOf[T]() }

// NumLanes returns the number of lanes in the vector.
func (Vec256[T]) NumLanes() int { return 32 / sizeOf[T]() }

// NumLanes returns the number of lanes in the vector.
func (Vec512[T]) NumLanes() int { return 64 / sizeOf[T]() }

// Lanes returns a copy of the lanes as a slice.
func (v Vec128[T]) Lanes() []T { return append([]T(nil), v.lanes()...) }

// Lanes returns a copy of the lanes as a slice.
func (v Vec256[T]) Lanes() []T { return append([]T(nil), v.lanes()...) }

// Lanes returns a copy of the lanes as a slice.
func (v Vec512[T]) Lanes() []T { return append([]T(nil), v.lanes()...) }

// Raw returns the register image as 64-bit words in native byte order.
func (v Vec128[T]) Raw() [2]uint64 { return v.raw }

// Raw returns the register image as 64-bit words in native byte order.
func (v Vec256[T]) Raw() [4]uint64 { return v.raw }

// Raw returns the register image as 64-bit words in native byte order.
func (v Vec512[T]) Raw() [8]uint64 { return v.raw }

func (v Vec128[T]) String() string { return fmt.Sprint(v.lanes()) }
func (v Vec256[T]) String() string { return fmt.Sprint(v.lanes()) }
func (v Vec512[T]) String() string { return fmt.Sprint(v.lanes()) }

// Vec128FromRaw builds a vector from its register image.
func Vec128FromRaw[T Lanes](raw [2]uint64) Vec128[T] { return Vec128[T]{raw: raw} }

// Vec256FromRaw builds a vector from its register image.
func Vec256FromRaw[T Lanes](raw [4]uint64) Vec256[T] { return Vec256[T]{raw: raw} }

// Vec512FromRaw builds a vector from its register image.
func Vec512FromRaw[T Lanes](raw [8]uint64) Vec512[T] { return Vec512[T]{raw: raw} }

// Vec128FromLanes builds a vector from the first NumLanes elements of
// lanes. It panics if lanes is too short.
func Vec128FromLanes[T Lanes](lanes []T) Vec128[T] {
	var v Vec128[T]
	dst := v.lanes()
	copy(dst, lanes[:len(dst)])
	return v
}

// Vec256FromLanes builds a vector from the first NumLanes elements of
// lanes. It panics if lanes is too short.
func Vec256FromLanes[T Lanes](lanes []T) Vec256[T] {
	var v Vec256[T]
	dst := v.lanes()
	copy(dst, lanes[:len(dst)])
	return v
}

// Vec512FromLanes builds a vector from the first NumLanes elements of
// lanes. It panics if lanes is too short.
func Vec512FromLanes[T Lanes](lanes []T) Vec512[T] {
	var v Vec512[T]
	dst := v.lanes()
	copy(dst, lanes[:len(dst)])
	return v
}

// BitCast128 reinterprets the register image of v as lanes of type U.
func BitCast128[U, T Lanes](v Vec128[T]) Vec128[U] { return Vec128[U]{raw: v.raw} }

// BitCast256 reinterprets the register image of v as lanes of type U.
func BitCast256[U, T Lanes](v Vec256[T]) Vec256[U] { return Vec256[U]{raw: v.raw} }

// BitCast512 reinterprets the register image of v as lanes of type U.
func BitCast512[U, T Lanes](v Vec512[T]) Vec512[U] { return Vec512[U]{raw: v.raw} }
