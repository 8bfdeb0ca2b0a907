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

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/ajroetker/go-hwcap/hwy"
	"github.com/ajroetker/go-hwcap/hwy/contrib/vec"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var errVerifyFailed = errors.New("backend results differ from the scalar reference")

// check is the outcome of one operation on one element type at one level.
type check struct {
	Level hwy.Level
	Type  string
	Op    string
	Err   error
}

func newVerifyCmd(g *globalFlags) *cobra.Command {
	var size int
	var seed uint64
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every granted backend against the scalar reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, logger, err := g.dispatcher(cmd)
			if err != nil {
				return err
			}
			if size <= 0 {
				return fmt.Errorf("--size must be positive, got %d", size)
			}
			var checks []check
			for _, tok := range d.Available() {
				logger.Debug("verifying backend", "level", tok.Level(), "size", size)
				checks = append(checks, verifyLevel(tok, size, seed)...)
			}
			failed := writeChecks(cmd.OutOrStdout(), checks)
			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed: %w", failed, len(checks), errVerifyFailed)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", getEnvInt("HWYINFO_VERIFY_SIZE", 1000), "Elements per input slice")
	cmd.Flags().Uint64Var(&seed, "seed", uint64(getEnvInt("HWYINFO_SEED", 1)), "Random seed")
	return cmd
}

func verifyLevel(tok hwy.Token, size int, seed uint64) []check {
	var out []check
	out = append(out, verifyType[int8](tok, "int8", size, seed)...)
	out = append(out, verifyType[int16](tok, "int16", size, seed)...)
	out = append(out, verifyType[int32](tok, "int32", size, seed)...)
	out = append(out, verifyType[int64](tok, "int64", size, seed)...)
	out = append(out, verifyType[uint8](tok, "uint8", size, seed)...)
	out = append(out, verifyType[uint16](tok, "uint16", size, seed)...)
	out = append(out, verifyType[uint32](tok, "uint32", size, seed)...)
	out = append(out, verifyType[uint64](tok, "uint64", size, seed)...)
	out = append(out, verifyType[float32](tok, "float32", size, seed)...)
	out = append(out, verifyFloat[float32](tok, "float32", size, seed)...)
	out = append(out, verifyType[float64](tok, "float64", size, seed)...)
	out = append(out, verifyFloat[float64](tok, "float64", size, seed)...)
	return out
}

// inputs returns two slices of small integral values. Element-wise results
// are then exact, and float reductions only round once sums grow past the
// mantissa.
func inputs[T hwy.Lanes](size int, seed uint64) (a, b []T) {
	r := rand.New(rand.NewPCG(seed, uint64(size)))
	a, b = make([]T, size), make([]T, size)
	for i := range a {
		a[i] = T(r.IntN(100))
		b[i] = T(r.IntN(100))
	}
	return a, b
}

func verifyType[T hwy.Lanes](tok hwy.Token, name string, size int, seed uint64) []check {
	a, b := inputs[T](size, seed)
	ref := hwy.Scalar{}
	mk := func(op string, err error) check { return check{tok.Level(), name, op, err} }

	got, want := make([]T, size), make([]T, size)
	vec.AddAt(tok, got, a, b)
	vec.AddAt(ref, want, a, b)
	add := mk("Add", sameSlices(got, want))

	vec.MulAt(tok, got, a, b)
	vec.MulAt(ref, want, a, b)
	mul := mk("Mul", sameSlices(got, want))

	vec.ClampAt(tok, got, a, 10, 90)
	vec.ClampAt(ref, want, a, 10, 90)
	clamp := mk("Clamp", sameSlices(got, want))

	return []check{
		add, mul, clamp,
		mk("Sum", agree(vec.SumAt(tok, a), vec.SumAt(ref, a))),
		mk("Max", same(vec.MaxAt(tok, a), vec.MaxAt(ref, a))),
		mk("Min", same(vec.MinAt(tok, a), vec.MinAt(ref, a))),
		mk("Argmax", same(vec.ArgmaxAt(tok, a), vec.ArgmaxAt(ref, a))),
		mk("Argmin", same(vec.ArgminAt(tok, a), vec.ArgminAt(ref, a))),
		mk("CountGreater", same(vec.CountGreaterAt(tok, a, 50), vec.CountGreaterAt(ref, a, 50))),
	}
}

func verifyFloat[T hwy.Floats](tok hwy.Token, name string, size int, seed uint64) []check {
	a, b := inputs[T](size, seed)
	ref := hwy.Scalar{}
	mk := func(op string, err error) check { return check{tok.Level(), name, op, err} }

	got, want := slices.Clone(b), slices.Clone(b)
	vec.AddScaledAt(tok, got, 2, a)
	vec.AddScaledAt(ref, want, 2, a)

	return []check{
		mk("Dot", agree(vec.DotAt(tok, a, b), vec.DotAt(ref, a, b))),
		mk("SquaredNorm", agree(vec.SquaredNormAt(tok, a), vec.SquaredNormAt(ref, a))),
		mk("L2SquaredDistance", agree(vec.L2SquaredDistanceAt(tok, a, b), vec.L2SquaredDistanceAt(ref, a, b))),
		mk("MaxAbs", same(vec.MaxAbsAt(tok, a), vec.MaxAbsAt(ref, a))),
		mk("AddScaled", sameSlices(got, want)),
	}
}

func same[T comparable](got, want T) error {
	if got != want {
		return fmt.Errorf("got %v, want %v", got, want)
	}
	return nil
}

// agree is same for integer lanes. Float reductions may sum in a different
// order on each backend, so they need only agree to a relative tolerance.
func agree[T hwy.Lanes](got, want T) error {
	var tol float64
	switch any(got).(type) {
	case float32:
		tol = 1e-5
	case float64:
		tol = 1e-12
	default:
		return same(got, want)
	}
	g, w := float64(got), float64(want)
	if math.Abs(g-w) > tol*max(1, math.Abs(w)) {
		return fmt.Errorf("got %v, want %v (tolerance %g)", got, want, tol)
	}
	return nil
}

func sameSlices[T comparable](got, want []T) error {
	for i := range got {
		if got[i] != want[i] {
			return fmt.Errorf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
	return nil
}

// writeChecks prints one line per failure and a per-level summary, and
// returns the number of failures.
func writeChecks(w io.Writer, checks []check) int {
	failed := lo.Filter(checks, func(c check, _ int) bool { return c.Err != nil })
	for _, c := range failed {
		fmt.Fprintf(w, "FAIL %-11v %-7s %-17s %v\n", c.Level, c.Type, c.Op, c.Err)
	}
	byLevel := lo.GroupBy(checks, func(c check) hwy.Level { return c.Level })
	for _, l := range hwy.Levels {
		cs, ok := byLevel[l]
		if !ok {
			continue
		}
		bad := lo.CountBy(cs, func(c check) bool { return c.Err != nil })
		status := lo.Ternary(bad == 0, "ok", "FAIL")
		fmt.Fprintf(w, "%-4s %-11v %d checks, %d failed\n", status, l, len(cs), bad)
	}
	return len(failed)
}
