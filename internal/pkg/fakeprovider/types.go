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

package fakeprovider

import (
	"github.com/NVIDIA/device-query/internal/pkg/deviceinfo"
	"github.com/NVIDIA/device-query/internal/pkg/deviceruntime"
)

// Call names a Runtime method for failure injection.
type Call string

const (
	CallInit                Call = "init"
	CallDeviceCount         Call = "deviceCount"
	CallVersion             Call = "version"
	CallSetDevice           Call = "setDevice"
	CallGetDeviceProperties Call = "getDeviceProperties"
	CallDeviceCanAccessPeer Call = "deviceCanAccessPeer"
	CallMemGetInfo          Call = "memGetInfo"
)

// Failure is an injected runtime status. Times limits the failure to the first Times calls;
// zero fails every call.
type Failure struct {
	Code    int    `yaml:"code"`
	Message string `yaml:"message"`
	Times   int    `yaml:"times,omitempty"`
}

func (f Failure) err() error {
	return deviceruntime.NewStatusError(f.Code, f.Message)
}

// Fixture describes a fake host.
type Fixture struct {
	DriverVersion string           `yaml:"driverVersion"`
	Failures      map[Call]Failure `yaml:"failures,omitempty"`
	Devices       []Device         `yaml:"devices"`
}

// Device is one fake device. PeerAccess lists the devices this device can access.
type Device struct {
	Properties deviceinfo.Properties   `yaml:"properties"`
	Memory     deviceinfo.MemoryStatus `yaml:"memory"`
	PeerAccess []int                   `yaml:"peerAccess,omitempty"`
	Failures   map[Call]Failure        `yaml:"failures,omitempty"`
}
