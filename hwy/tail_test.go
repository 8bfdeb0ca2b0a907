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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessWithTail(t *testing.T) {
	tests := []struct {
		lanes, size int
		full        []int
		tailOff     int
		tailCount   int
	}{
		{4, 0, nil, -1, 0},
		{4, 3, nil, 0, 3},
		{4, 8, []int{0, 4}, -1, 0},
		{4, 10, []int{0, 4}, 8, 2},
		{1, 3, []int{0, 1, 2}, -1, 0},
	}
	for _, tt := range tests {
		var full []int
		tailOff, tailCount := -1, 0
		ProcessWithTail(tt.lanes, tt.size,
			func(offset int) { full = append(full, offset) },
			func(offset, count int) { tailOff, tailCount = offset, count },
		)
		assert.Equal(t, tt.full, full, "lanes %d size %d", tt.lanes, tt.size)
		assert.Equal(t, tt.tailOff, tailOff)
		assert.Equal(t, tt.tailCount, tailCount)
	}
}

func TestProcessWithTailNoMask(t *testing.T) {
	var offsets []int
	ProcessWithTailNoMask(4, 10, func(offset int) { offsets = append(offsets, offset) })
	assert.Equal(t, []int{0, 4, 6}, offsets)

	offsets = nil
	ProcessWithTailNoMask(4, 3, func(offset int) { offsets = append(offsets, offset) })
	assert.Empty(t, offsets)
}

func TestAlignedSize(t *testing.T) {
	assert.Equal(t, 0, AlignedSize(8, 0))
	assert.Equal(t, 8, AlignedSize(8, 1))
	assert.Equal(t, 16, AlignedSize(8, 16))
	assert.Equal(t, 5, AlignedSize(0, 5))
	assert.True(t, IsAligned(4, 12))
	assert.False(t, IsAligned(4, 13))
	assert.True(t, IsAligned(0, 13))
}
