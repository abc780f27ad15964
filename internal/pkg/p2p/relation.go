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

package p2p

import (
	"slices"
)

// Relation partitions the devices other than a target by whether they can access the target.
// Both lists are in ascending index order.
type Relation struct {
	Reachable   []int `json:"peers" yaml:"peers"`
	Unreachable []int `json:"nonPeers" yaml:"nonPeers"`
}

// AccessFunc reports whether device peer can directly access the target device.
type AccessFunc func(peer int) (bool, error)

// Classify builds the Relation of target over devices. The target itself is in neither list.
// The first failing access query aborts classification and its error is returned unchanged.
func Classify(target int, devices []int, canAccess AccessFunc) (Relation, error) {
	relation := Relation{
		Reachable:   []int{},
		Unreachable: []int{},
	}

	sorted := slices.Clone(devices)
	slices.Sort(sorted)

	for _, peer := range sorted {
		if peer == target {
			continue
		}

		ok, err := canAccess(peer)
		if err != nil {
			return Relation{}, err
		}

		if ok {
			relation.Reachable = append(relation.Reachable, peer)
		} else {
			relation.Unreachable = append(relation.Unreachable, peer)
		}
	}

	return relation, nil
}
