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
	"log/slog"
	"sync"
)

// Dispatcher selects one token, the richest the CPU grants within its
// Config, and runs kernels on the matching backend. Selection happens once,
// on first use or on Init, and is never repeated.
//
// A Dispatcher is safe for concurrent use. The zero value has a zero Config,
// which caps selection at LevelScalar, and logs to slog.Default; use
// NewDispatcher for the uncapped default.
type Dispatcher struct {
	cfg    Config
	logger *slog.Logger

	once  sync.Once
	token Token
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithConfig sets the selection config.
func WithConfig(cfg Config) Option {
	return func(d *Dispatcher) { d.cfg = cfg }
}

// WithMaxLevel caps the selected level.
func WithMaxLevel(l Level) Option {
	return func(d *Dispatcher) { d.cfg.MaxLevel = l }
}

// WithLogger sets the logger used to report the selection.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// NewDispatcher creates a Dispatcher. Without options it selects the
// richest level available.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Config returns the dispatcher's selection config.
func (d *Dispatcher) Config() Config { return d.cfg }

// Init performs the selection now instead of on first use.
func (d *Dispatcher) Init() { d.Select() }

// Select returns the selected token. It probes from richest to weakest and
// falls back to Scalar, so it never fails.
func (d *Dispatcher) Select() Token {
	d.once.Do(func() {
		d.token = d.Available()[0]
		logger := d.logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Debug("hwy: selected backend",
			"backend", d.token.Level(),
			"cap", d.cfg.Cap(),
			"features", DetectedFeatures().Names())
	})
	return d.token
}

// Available returns every token the CPU grants within the config, richest
// first. The last entry is always Scalar.
func (d *Dispatcher) Available() []Token {
	limit := max(d.cfg.Cap(), LevelScalar)
	var toks []Token
	for _, l := range Levels {
		if l > limit {
			continue
		}
		if tok, ok := Probe(l); ok {
			toks = append(toks, tok)
		}
	}
	return toks
}

var defaultDispatcher = sync.OnceValue(func() *Dispatcher {
	cfg, err := ConfigFromEnv()
	d := NewDispatcher(WithConfig(cfg))
	if err != nil {
		d.logger.Warn("hwy: ignoring invalid environment setting", "error", err)
	}
	return d
})

// Default returns the process-wide dispatcher, configured from the
// environment (see ConfigFromEnv).
func Default() *Dispatcher { return defaultDispatcher() }

// Init eagerly performs the process-wide selection.
func Init() { Default().Init() }

// Select returns the process-wide selected token.
func Select() Token { return Default().Select() }

// CurrentLevel returns the level of the process-wide selected token.
func CurrentLevel() Level { return Select().Level() }

// Available returns every token the process-wide dispatcher may use.
func Available() []Token { return Default().Available() }

// Dispatch runs k on the backend of the process-wide selected token.
func Dispatch[T Lanes, R any](k Kernel[T, R]) R {
	return Run(Select(), k)
}

// DispatchWith runs k on the backend selected by d.
func DispatchWith[T Lanes, R any](d *Dispatcher, k Kernel[T, R]) R {
	return Run(d.Select(), k)
}

// Run runs k on the backend for tok. The richest method tok allows is
// called; a nil token runs the scalar method.
func Run[T Lanes, R any](tok Token, k Kernel[T, R]) R {
	switch t := tok.(type) {
	case MaskedWide:
		return k.MaskedWide(NewMaskedWideOps[T](t))
	case Wide:
		return k.Wide(NewWideOps[T](t))
	case Baseline:
		return k.Baseline(NewBaselineOps[T](t))
	default:
		return k.Scalar(NewScalarOps[T]())
	}
}

// MaxLanes returns the number of lanes of type T in the process-wide
// selected backend. It is 1 for the scalar backend.
//
// For example, on the wide level (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
func MaxLanes[T Lanes]() int {
	return LanesAt[T](CurrentLevel())
}

// LanesAt returns the number of lanes of type T at level l.
func LanesAt[T Lanes](l Level) int {
	if l == LevelScalar {
		return 1
	}
	return l.RegisterBytes() / sizeOf[T]()
}
