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
	"github.com/bits-and-blooms/bitset"
)

type Backend string

const (
	BackendNVML Backend = "nvml"
	BackendFake Backend = "fake"
)

type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// DeviceOptions selects the devices that get a report section.
type DeviceOptions struct {
	All     bool           // If true, every device is reported and Indices is ignored.
	Indices *bitset.BitSet // The indices of each device to report.
}

type Config struct {
	Backend           Backend
	FixtureFile       string
	Format            string
	Devices           DeviceOptions
	InitAttempts      uint
	SkipPrerequisites bool
	LogFormat         LogFormat
	Debug             bool
}
