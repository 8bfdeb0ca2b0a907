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

// Package matvec provides matrix-vector multiplication on the hwy backends.
//
// Matrix-vector multiplication computes result = M * v where:
//   - M is a matrix of shape [rows, cols] in row-major order
//   - v is a vector of length cols
//   - result is a vector of length rows
//
// Each row is reduced with the vec package's dot product kernel, on the
// backend the hwy dispatcher selected. MatVecParallel spreads rows over a
// workerpool.Pool.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-hwcap/hwy/contrib/matvec"
//
//	result := make([]float32, rows)
//	matvec.MatVec(m, rows, cols, v, result)
package matvec
