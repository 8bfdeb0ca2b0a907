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

// Kernel is a computation over lanes of type T producing R, specialized once
// per level. The dispatcher calls exactly one method.
//
// Go methods cannot be generic, so the usual shape is a single generic body
//
//	func BaseFoo[T hwy.Lanes, V, M any](o hwy.Ops[T, V, M], ...) R
//
// and four one-line methods instantiating it for each backend. hwygen
// writes those methods from the body.
type Kernel[T Lanes, R any] interface {
	Scalar(o ScalarOps[T]) R
	Baseline(o BaselineOps[T]) R
	Wide(o WideOps[T]) R
	MaskedWide(o MaskedWideOps[T]) R
}

// KernelFuncs adapts four function values into a Kernel. A nil field falls
// back to the next weaker level, and Scalar must be set.
type KernelFuncs[T Lanes, R any] struct {
	ScalarFunc     func(o ScalarOps[T]) R
	BaselineFunc   func(o BaselineOps[T]) R
	WideFunc       func(o WideOps[T]) R
	MaskedWideFunc func(o MaskedWideOps[T]) R
}

func (k KernelFuncs[T, R]) Scalar(o ScalarOps[T]) R {
	return k.ScalarFunc(o)
}

func (k KernelFuncs[T, R]) Baseline(o BaselineOps[T]) R {
	if k.BaselineFunc == nil {
		return k.Scalar(NewScalarOps[T]())
	}
	return k.BaselineFunc(o)
}

func (k KernelFuncs[T, R]) Wide(o WideOps[T]) R {
	if k.WideFunc == nil {
		return k.Baseline(NewBaselineOps[T](o.Token().(Baseline)))
	}
	return k.WideFunc(o)
}

func (k KernelFuncs[T, R]) MaskedWide(o MaskedWideOps[T]) R {
	if k.MaskedWideFunc == nil {
		return k.Wide(NewWideOps[T](o.Token().(Wide)))
	}
	return k.MaskedWideFunc(o)
}
