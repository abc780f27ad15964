/*
 * Copyright (c) 2024, NVIDIA CORPORATION.  All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package appconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

const (
	// AllDevicesKey selects every device present on the system.
	AllDevicesKey = "all"

	// MaxDeviceIndex is the highest index accepted in a device selection.
	MaxDeviceIndex = 1023
)

// ParseDeviceOptions parses a device selection: either "all" or a comma separated list of
// indices and inclusive ranges, e.g. "0,2-4".
func ParseDeviceOptions(devices string) (DeviceOptions, error) {
	var dOpt DeviceOptions

	devices = strings.TrimSpace(devices)
	if devices == "" || devices == AllDevicesKey {
		dOpt.All = true
		return dOpt, nil
	}

	dOpt.Indices = bitset.New(0)
	for _, numberOrRange := range strings.Split(devices, ",") {
		rangeTokens := strings.Split(strings.TrimSpace(numberOrRange), "-")
		switch len(rangeTokens) {
		case 1:
			number, err := parseIndex(rangeTokens[0])
			if err != nil {
				return DeviceOptions{}, err
			}
			dOpt.Indices.Set(number)
		case 2:
			start, err := parseIndex(rangeTokens[0])
			if err != nil {
				return DeviceOptions{}, err
			}
			end, err := parseIndex(rangeTokens[1])
			if err != nil {
				return DeviceOptions{}, err
			}
			if start > end {
				return DeviceOptions{}, fmt.Errorf("range start must not exceed its end, but found '%s'", numberOrRange)
			}

			dOpt.Indices = dOpt.Indices.Union(bitset.New(end + 1).FlipRange(start, end+1))
		default:
			return DeviceOptions{}, fmt.Errorf("range can only be '<number>-<number>', but found '%s'", numberOrRange)
		}
	}

	return dOpt, nil
}

func parseIndex(token string) (uint, error) {
	number, err := strconv.ParseUint(strings.TrimSpace(token), 10, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid device index '%s'", token)
	}
	if number > MaxDeviceIndex {
		return 0, fmt.Errorf("device index '%s' exceeds the maximum of %d", token, MaxDeviceIndex)
	}

	return uint(number), nil
}

// Selected reports whether the device with the given index is part of the selection.
func (o DeviceOptions) Selected(index int) bool {
	if o.All {
		return true
	}

	return index >= 0 && o.Indices != nil && o.Indices.Test(uint(index))
}

// Validate checks that every selected index exists on a system with count devices.
func (o DeviceOptions) Validate(count int) error {
	if o.All || o.Indices == nil {
		return nil
	}

	for i, ok := o.Indices.NextSet(0); ok; i, ok = o.Indices.NextSet(i + 1) {
		if int(i) >= count {
			return fmt.Errorf("device#%d was requested, but only %d devices were found", i, count)
		}
	}

	return nil
}

func (o DeviceOptions) String() string {
	if o.All {
		return AllDevicesKey
	}
	if o.Indices == nil {
		return ""
	}

	// Consecutive indices fold back into ranges, so String round-trips through ParseDeviceOptions.
	var tokens []string
	for start, ok := o.Indices.NextSet(0); ok; {
		end := start
		for o.Indices.Test(end + 1) {
			end++
		}
		if end == start {
			tokens = append(tokens, strconv.FormatUint(uint64(start), 10))
		} else {
			tokens = append(tokens, fmt.Sprintf("%d-%d", start, end))
		}
		start, ok = o.Indices.NextSet(end + 1)
	}

	return strings.Join(tokens, ",")
}
