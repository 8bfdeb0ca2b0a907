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

package main

import "fmt"

// Level describes how one dispatch level instantiates a kernel body: the
// hwy.Kernel method it fills in and the vector and mask types of its
// backend. The scalar level uses the lane type itself and bool.
type Level struct {
	Method string // Kernel method, also the prefix of the hwy Ops type
	Vec    string // vector type name in the hwy package, "" for scalar
	Mask   string // mask type name in the hwy package, "" for scalar
}

// Levels lists the dispatch levels in the order the emitter writes them.
func Levels() []Level {
	return []Level{
		{Method: "Scalar"},
		{Method: "Baseline", Vec: "Vec128", Mask: "LaneMask128"},
		{Method: "Wide", Vec: "Vec256", Mask: "LaneMask256"},
		{Method: "MaskedWide", Vec: "Vec512", Mask: "BitMask512"},
	}
}

// OpsType returns the sealed Ops interface the method receives, such as
// hwy.WideOps[T].
func (l Level) OpsType(hwy, lane string) string {
	return fmt.Sprintf("%s.%sOps[%s]", hwy, l.Method, lane)
}

// VecType returns the vector type for lane type lane.
func (l Level) VecType(hwy, lane string) string {
	if l.Vec == "" {
		return lane
	}
	return fmt.Sprintf("%s.%s[%s]", hwy, l.Vec, lane)
}

// MaskType returns the mask type for lane type lane.
func (l Level) MaskType(hwy, lane string) string {
	if l.Mask == "" {
		return "bool"
	}
	return fmt.Sprintf("%s.%s[%s]", hwy, l.Mask, lane)
}

// TypeArgs returns the explicit instantiation of a kernel body at this
// level, such as "T, hwy.Vec256[T], hwy.LaneMask256[T]".
func (l Level) TypeArgs(hwy, lane string) string {
	return lane + ", " + l.VecType(hwy, lane) + ", " + l.MaskType(hwy, lane)
}
