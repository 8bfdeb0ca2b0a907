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
	"runtime"
	"sync"
)

// Features is the raw result of the CPU feature probe.
type Features struct {
	Arch string `json:"arch"`

	// x86
	SSE2     bool `json:"sse2,omitempty"`
	SSE3     bool `json:"sse3,omitempty"`
	SSSE3    bool `json:"ssse3,omitempty"`
	SSE41    bool `json:"sse41,omitempty"`
	SSE42    bool `json:"sse42,omitempty"`
	POPCNT   bool `json:"popcnt,omitempty"`
	AVX      bool `json:"avx,omitempty"`
	AVX2     bool `json:"avx2,omitempty"`
	FMA      bool `json:"fma,omitempty"`
	BMI1     bool `json:"bmi1,omitempty"`
	BMI2     bool `json:"bmi2,omitempty"`
	AVX512F  bool `json:"avx512f,omitempty"`
	AVX512BW bool `json:"avx512bw,omitempty"`
	AVX512CD bool `json:"avx512cd,omitempty"`
	AVX512DQ bool `json:"avx512dq,omitempty"`
	AVX512VL bool `json:"avx512vl,omitempty"`

	// arm64
	ASIMD bool `json:"asimd,omitempty"`
}

// Level returns the richest level whose every feature is present.
func (f Features) Level() Level {
	switch f.Arch {
	case "amd64":
		baseline := f.SSE2 && f.SSE3 && f.SSSE3 && f.SSE41 && f.SSE42 && f.POPCNT
		if !baseline {
			return LevelScalar
		}
		wide := f.AVX && f.AVX2 && f.FMA && f.BMI1 && f.BMI2
		if !wide {
			return LevelBaseline
		}
		masked := f.AVX512F && f.AVX512BW && f.AVX512CD && f.AVX512DQ && f.AVX512VL
		if !masked {
			return LevelWide
		}
		return LevelMaskedWide
	case "arm64":
		if f.ASIMD {
			return LevelBaseline
		}
	}
	return LevelScalar
}

// Names returns the names of the features present, in a fixed order.
func (f Features) Names() []string {
	all := []struct {
		name string
		on   bool
	}{
		{"sse2", f.SSE2}, {"sse3", f.SSE3}, {"ssse3", f.SSSE3},
		{"sse4.1", f.SSE41}, {"sse4.2", f.SSE42}, {"popcnt", f.POPCNT},
		{"avx", f.AVX}, {"avx2", f.AVX2}, {"fma", f.FMA},
		{"bmi1", f.BMI1}, {"bmi2", f.BMI2},
		{"avx512f", f.AVX512F}, {"avx512bw", f.AVX512BW}, {"avx512cd", f.AVX512CD},
		{"avx512dq", f.AVX512DQ}, {"avx512vl", f.AVX512VL},
		{"asimd", f.ASIMD},
	}
	var names []string
	for _, feat := range all {
		if feat.on {
			names = append(names, feat.name)
		}
	}
	return names
}

var detectedFeatures = sync.OnceValue(func() Features {
	f := detectCPUFeatures()
	f.Arch = runtime.GOARCH
	return f
})

// DetectedFeatures returns the features of the running CPU. The hardware is
// queried once; later calls return the cached result.
func DetectedFeatures() Features {
	return detectedFeatures()
}
