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

package deviceinfo

import (
	"encoding/json"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"gopkg.in/yaml.v3"
)

// ArchFeature identifies one architecture capability bit. The numeric order is the order in
// which features are reported.
type ArchFeature uint

const (
	HasGlobalInt32Atomics ArchFeature = iota
	HasGlobalFloatAtomicExch
	HasSharedInt32Atomics
	HasSharedFloatAtomicExch
	HasFloatAtomicAdd
	HasGlobalInt64Atomics
	HasSharedInt64Atomics
	HasDoubles
	HasWarpVote
	HasWarpBallot
	HasWarpShuffle
	HasFunnelShift
	HasThreadFenceSystem
	HasSyncThreadsExt
	HasSurfaceFuncs
	Has3dGrid
	HasDynamicParallelism

	numArchFeatures
)

var archFeatureNames = [numArchFeatures]string{
	HasGlobalInt32Atomics:    "hasGlobalInt32Atomics",
	HasGlobalFloatAtomicExch: "hasGlobalFloatAtomicExch",
	HasSharedInt32Atomics:    "hasSharedInt32Atomics",
	HasSharedFloatAtomicExch: "hasSharedFloatAtomicExch",
	HasFloatAtomicAdd:        "hasFloatAtomicAdd",
	HasGlobalInt64Atomics:    "hasGlobalInt64Atomics",
	HasSharedInt64Atomics:    "hasSharedInt64Atomics",
	HasDoubles:               "hasDoubles",
	HasWarpVote:              "hasWarpVote",
	HasWarpBallot:            "hasWarpBallot",
	HasWarpShuffle:           "hasWarpShuffle",
	HasFunnelShift:           "hasFunnelShift",
	HasThreadFenceSystem:     "hasThreadFenceSystem",
	HasSyncThreadsExt:        "hasSyncThreadsExt",
	HasSurfaceFuncs:          "hasSurfaceFuncs",
	Has3dGrid:                "has3dGrid",
	HasDynamicParallelism:    "hasDynamicParallelism",
}

func (f ArchFeature) String() string {
	if f < numArchFeatures {
		return archFeatureNames[f]
	}

	return fmt.Sprintf("ArchFeature(%d)", uint(f))
}

// AllArchFeatures returns every known feature in report order.
func AllArchFeatures() []ArchFeature {
	all := make([]ArchFeature, numArchFeatures)
	for i := range all {
		all[i] = ArchFeature(i)
	}

	return all
}

// ParseArchFeature returns the feature with the given report name, e.g. "hasDoubles".
func ParseArchFeature(name string) (ArchFeature, error) {
	for i, n := range archFeatureNames {
		if n == name {
			return ArchFeature(i), nil
		}
	}

	return 0, fmt.Errorf("unknown architecture feature %q", name)
}

// ArchFeatures is the fixed-size set of architecture capability bits of a device.
// The zero value is an empty set.
type ArchFeatures struct {
	bits *bitset.BitSet
}

// NewArchFeatures returns a set with the given features enabled.
func NewArchFeatures(features ...ArchFeature) ArchFeatures {
	a := ArchFeatures{bits: bitset.New(uint(numArchFeatures))}
	for _, f := range features {
		a.Set(f)
	}

	return a
}

// Set enables a feature. Unknown features are ignored.
func (a *ArchFeatures) Set(f ArchFeature) {
	if f >= numArchFeatures {
		return
	}
	if a.bits == nil {
		a.bits = bitset.New(uint(numArchFeatures))
	}
	a.bits.Set(uint(f))
}

func (a ArchFeatures) Has(f ArchFeature) bool {
	return a.bits != nil && f < numArchFeatures && a.bits.Test(uint(f))
}

// Count returns the number of enabled features.
func (a ArchFeatures) Count() uint {
	if a.bits == nil {
		return 0
	}

	return a.bits.Count()
}

func (a ArchFeatures) Equal(other ArchFeatures) bool {
	for _, f := range AllArchFeatures() {
		if a.Has(f) != other.Has(f) {
			return false
		}
	}

	return true
}

// Names returns the names of the enabled features in report order.
func (a ArchFeatures) Names() []string {
	names := make([]string, 0, a.Count())
	for _, f := range AllArchFeatures() {
		if a.Has(f) {
			names = append(names, f.String())
		}
	}

	return names
}

func (a *ArchFeatures) setNames(names []string) error {
	*a = NewArchFeatures()
	for _, name := range names {
		f, err := ParseArchFeature(name)
		if err != nil {
			return err
		}
		a.Set(f)
	}

	return nil
}

func (a ArchFeatures) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Names())
}

func (a *ArchFeatures) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}

	return a.setNames(names)
}

func (a ArchFeatures) MarshalYAML() (interface{}, error) {
	return a.Names(), nil
}

func (a *ArchFeatures) UnmarshalYAML(value *yaml.Node) error {
	var names []string
	if err := value.Decode(&names); err != nil {
		return err
	}

	return a.setNames(names)
}
