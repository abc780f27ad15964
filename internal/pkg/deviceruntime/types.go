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

//go:generate go run -v go.uber.org/mock/mockgen  -destination=../../mocks/pkg/deviceruntime/mock_runtime.go -package=deviceruntime -copyright_file=../../../hack/header.txt . Runtime

package deviceruntime

import (
	"github.com/NVIDIA/device-query/internal/pkg/deviceinfo"
)

// Runtime is the device query surface a backend provides. SetDevice selects the device that
// MemGetInfo reports on; the remaining calls take explicit indices.
type Runtime interface {
	DeviceCount() (int, error)
	SetDevice(index int) error
	GetDeviceProperties(index int) (deviceinfo.Properties, error)
	// DeviceCanAccessPeer reports whether device from can directly access the memory of device to.
	DeviceCanAccessPeer(from, to int) (bool, error)
	MemGetInfo() (free, total uint64, err error)
}

// VersionReporter is implemented by backends that can identify the driver they talk to.
type VersionReporter interface {
	Version() (string, error)
}
