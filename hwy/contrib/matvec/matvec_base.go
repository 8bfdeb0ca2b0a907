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

package matvec

//go:generate go run ../../../cmd/hwygen -input matvec_base.go -output .

import (
	"github.com/ajroetker/go-hwcap/hwy"
	"github.com/ajroetker/go-hwcap/hwy/contrib/vec"
)

// BaseMatVec computes result = M * v for a row-major matrix M of shape
// [rows, cols]. Each result[i] is the dot product of row i with v.
//
// Panics if:
//   - len(m) < rows * cols
//   - len(v) < cols
//   - len(result) < rows
//
// Example:
//
//	// 2x3 matrix:
//	//   [1 2 3]
//	//   [4 5 6]
//	m := []float32{1, 2, 3, 4, 5, 6}
//	v := []float32{1, 0, 1}
//	result := make([]float32, 2)
//	MatVec(m, 2, 3, v, result)  // result = [4, 10]
func BaseMatVec[T hwy.Floats, V, M any](o hwy.Ops[T, V, M], m []T, rows, cols int, v, result []T) {
	checkShape(len(m), rows, cols, len(v), len(result))
	for i := range rows {
		result[i] = vec.BaseDot(o, m[i*cols:(i+1)*cols], v[:cols])
	}
}

func checkShape(mLen, rows, cols, vLen, resultLen int) {
	if mLen < rows*cols {
		panic("matvec: matrix slice too small")
	}
	if vLen < cols {
		panic("matvec: vector slice too small")
	}
	if resultLen < rows {
		panic("matvec: result slice too small")
	}
}
