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

import "sync"

// Token is a capability proof. Holding a Token of a given level means every
// feature that level names was confirmed present on this CPU.
//
// Tokens cannot be created outside this package except through the probe
// functions or the Unchecked constructors. The interfaces below are sealed
// by unexported methods, so their zero value (nil) is the only value a
// client can make up, and every backend constructor rejects it.
type Token interface {
	Level() Level
	sealed()
}

// Baseline proves 128-bit SIMD support.
type Baseline interface {
	Token
	baseline()
}

// Wide proves 256-bit SIMD support. A Wide token is also a Baseline token.
type Wide interface {
	Baseline
	wide()
}

// MaskedWide proves 512-bit masked SIMD support. A MaskedWide token is
// also a Wide and a Baseline token.
type MaskedWide interface {
	Wide
	maskedWide()
}

// Scalar is the token for the portable fallback. It guarantees nothing and
// anyone may construct it.
type Scalar struct{}

func (Scalar) Level() Level   { return LevelScalar }
func (Scalar) String() string { return LevelScalar.String() }
func (Scalar) sealed()        {}

type baselineToken struct{}

func (baselineToken) Level() Level   { return LevelBaseline }
func (baselineToken) String() string { return LevelBaseline.String() }
func (baselineToken) sealed()        {}
func (baselineToken) baseline()      {}

type wideToken struct{}

func (wideToken) Level() Level   { return LevelWide }
func (wideToken) String() string { return LevelWide.String() }
func (wideToken) sealed()        {}
func (wideToken) baseline()      {}
func (wideToken) wide()          {}

type maskedWideToken struct{}

func (maskedWideToken) Level() Level   { return LevelMaskedWide }
func (maskedWideToken) String() string { return LevelMaskedWide.String() }
func (maskedWideToken) sealed()        {}
func (maskedWideToken) baseline()      {}
func (maskedWideToken) wide()          {}
func (maskedWideToken) maskedWide()    {}

var (
	probeBaseline = sync.OnceValues(func() (Baseline, bool) {
		if DetectedFeatures().Level() < LevelBaseline {
			return nil, false
		}
		return baselineToken{}, true
	})
	probeWide = sync.OnceValues(func() (Wide, bool) {
		if DetectedFeatures().Level() < LevelWide {
			return nil, false
		}
		return wideToken{}, true
	})
	probeMaskedWide = sync.OnceValues(func() (MaskedWide, bool) {
		if DetectedFeatures().Level() < LevelMaskedWide {
			return nil, false
		}
		return maskedWideToken{}, true
	})
)

// ProbeBaseline returns a Baseline token if the CPU supports 128-bit SIMD.
// The hardware query runs at most once per process.
func ProbeBaseline() (Baseline, bool) { return probeBaseline() }

// ProbeWide returns a Wide token if the CPU supports 256-bit SIMD.
func ProbeWide() (Wide, bool) { return probeWide() }

// ProbeMaskedWide returns a MaskedWide token if the CPU supports 512-bit
// masked SIMD.
func ProbeMaskedWide() (MaskedWide, bool) { return probeMaskedWide() }

// Probe returns the token for the given level, or false if the CPU does not
// support it. Probe(LevelScalar) always succeeds.
func Probe(l Level) (Token, bool) {
	switch l {
	case LevelScalar:
		return Scalar{}, true
	case LevelBaseline:
		if tok, ok := ProbeBaseline(); ok {
			return tok, true
		}
	case LevelWide:
		if tok, ok := ProbeWide(); ok {
			return tok, true
		}
	case LevelMaskedWide:
		if tok, ok := ProbeMaskedWide(); ok {
			return tok, true
		}
	}
	return nil, false
}

// UncheckedBaseline returns a Baseline token without probing.
//
// The caller asserts that the CPU supports every Baseline feature. Using
// the token on a CPU without them is undefined behavior.
func UncheckedBaseline() Baseline { return baselineToken{} }

// UncheckedWide returns a Wide token without probing. See UncheckedBaseline.
func UncheckedWide() Wide { return wideToken{} }

// UncheckedMaskedWide returns a MaskedWide token without probing. See
// UncheckedBaseline.
func UncheckedMaskedWide() MaskedWide { return maskedWideToken{} }

// AsBaseline narrows tok to a Baseline token if its level allows it.
func AsBaseline(tok Token) (Baseline, bool) {
	b, ok := tok.(Baseline)
	return b, ok
}

// AsWide narrows tok to a Wide token if its level allows it.
func AsWide(tok Token) (Wide, bool) {
	w, ok := tok.(Wide)
	return w, ok
}

// AsMaskedWide narrows tok to a MaskedWide token if its level allows it.
func AsMaskedWide(tok Token) (MaskedWide, bool) {
	m, ok := tok.(MaskedWide)
	return m, ok
}
