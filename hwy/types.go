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

// Package hwy provides capability-token SIMD dispatch.
//
// The running CPU is probed once. Each supported level is represented by a
// capability token that can only be obtained from a successful probe, and
// each token unlocks one backend implementing the uniform Ops interface.
// Client code writes a computation once, generically over Ops, and the
// dispatcher runs it on the richest backend the machine grants.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-hwcap/hwy"
//
//	type sumKernel struct{ data []float32 }
//
//	func (k sumKernel) Scalar(o hwy.ScalarOps[float32]) float32 { return baseSum(o, k.data) }
//	func (k sumKernel) Baseline(o hwy.BaselineOps[float32]) float32 { return baseSum(o, k.data) }
//	func (k sumKernel) Wide(o hwy.WideOps[float32]) float32 { return baseSum(o, k.data) }
//	func (k sumKernel) MaskedWide(o hwy.MaskedWideOps[float32]) float32 { return baseSum(o, k.data) }
//
//	total := hwy.Dispatch[float32, float32](sumKernel{data})
//
// The four methods are mechanical and are normally produced by hwygen.
package hwy

import "unsafe"

// Floats is a constraint for floating-point types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for every element type a vector lane can hold.
//
// Named types are deliberately excluded: lane helpers switch on the
// concrete element type.
type Lanes interface {
	Floats | Integers
}

// laneKind classifies an element type for the shared lane helpers.
type laneKind uint8

const (
	signedLane laneKind = iota
	unsignedLane
	floatLane
)

func kindOf[T Lanes]() laneKind {
	switch any(T(0)).(type) {
	case float32, float64:
		return floatLane
	case uint8, uint16, uint32, uint64:
		return unsignedLane
	default:
		return signedLane
	}
}

func isFloat[T Lanes]() bool {
	return kindOf[T]() == floatLane
}

// sizeOf returns the size in bytes of one lane of type T.
func sizeOf[T Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// LaneBits returns the size in bits of one lane of type T.
func LaneBits[T Lanes]() int {
	return 8 * sizeOf[T]()
}
