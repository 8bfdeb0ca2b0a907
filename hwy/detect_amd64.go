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

import "golang.org/x/sys/cpu"

// detectCPUFeatures reads the x86 feature flags. x/sys/cpu already folds in
// the XGETBV check, so the AVX and AVX-512 flags are only set when the OS
// saves the wider register state.
func detectCPUFeatures() Features {
	return Features{
		SSE2:     cpu.X86.HasSSE2,
		SSE3:     cpu.X86.HasSSE3,
		SSSE3:    cpu.X86.HasSSSE3,
		SSE41:    cpu.X86.HasSSE41,
		SSE42:    cpu.X86.HasSSE42,
		POPCNT:   cpu.X86.HasPOPCNT,
		AVX:      cpu.X86.HasAVX,
		AVX2:     cpu.X86.HasAVX2,
		FMA:      cpu.X86.HasFMA,
		BMI1:     cpu.X86.HasBMI1,
		BMI2:     cpu.X86.HasBMI2,
		AVX512F:  cpu.X86.HasAVX512F,
		AVX512BW: cpu.X86.HasAVX512BW,
		AVX512CD: cpu.X86.HasAVX512CD,
		AVX512DQ: cpu.X86.HasAVX512DQ,
		AVX512VL: cpu.X86.HasAVX512VL,
	}
}
