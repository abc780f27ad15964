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

package enumerator

import (
	"github.com/NVIDIA/device-query/internal/pkg/deviceinfo"
	"github.com/NVIDIA/device-query/internal/pkg/p2p"
)

// DeviceReport is everything gathered about one device during enumeration.
type DeviceReport struct {
	Index      int                     `json:"device" yaml:"device"`
	Properties deviceinfo.Properties   `json:"properties" yaml:"properties"`
	Peers      p2p.Relation            `json:"peerAccess" yaml:"peerAccess"`
	Memory     deviceinfo.MemoryStatus `json:"memInfo" yaml:"memInfo"`
}

// Sink receives device reports in ascending index order as soon as each one is complete.
type Sink interface {
	WriteDevice(report DeviceReport) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(report DeviceReport) error

func (f SinkFunc) WriteDevice(report DeviceReport) error {
	return f(report)
}
