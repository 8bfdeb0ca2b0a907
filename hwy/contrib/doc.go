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

// Package contrib groups kernels built on the hwy backends.
//
// # Subpackages
//
//   - vec: slice kernels (dot product, sums, element-wise arithmetic,
//     clamping, norms, argmax, complex multiply)
//   - matvec: matrix-vector multiplication
//   - workerpool: a persistent pool for running kernels over index ranges
//
// Kernels are written once as Base* functions over hwy.Ops and turned into
// dispatching functions by cmd/hwygen. Every exported kernel runs on the
// backend the process-wide hwy dispatcher selected; the ...At variants run on
// the backend of a given token.
package contrib
