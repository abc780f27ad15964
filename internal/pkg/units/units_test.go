/*
 * Copyright (c) 2024, NVIDIA CORPORATION.  All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToKilobytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes uint64
		want  float64
	}{
		{name: "zero", bytes: 0, want: 0},
		{name: "one kilobyte", bytes: 1024, want: 1},
		{name: "fraction", bytes: 1536, want: 1.5},
		{name: "shared memory per block", bytes: 49152, want: 48},
		{name: "not rounded", bytes: 1, want: 0.0009765625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToKilobytes(tt.bytes))
		})
	}
}

func TestToGigabytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes uint64
		want  float64
	}{
		{name: "zero", bytes: 0, want: 0},
		{name: "one gigabyte", bytes: 1 << 30, want: 1},
		{name: "eight gigabytes", bytes: 8_589_934_592, want: 8},
		{name: "half a gigabyte", bytes: 1 << 29, want: 0.5},
		{name: "one kilobyte", bytes: 1024, want: 1.0 / (1024 * 1024)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToGigabytes(tt.bytes))
		})
	}
}
