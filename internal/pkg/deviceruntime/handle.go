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

package deviceruntime

import (
	"github.com/pkg/errors"

	"github.com/NVIDIA/device-query/internal/pkg/deviceinfo"
)

// Handle owns the device selection of a Runtime. Every runtime failure surfaces as a
// *RuntimeError located at the caller of the Handle or ActiveDevice method.
//
// Handle is not safe for concurrent use.
type Handle struct {
	rt         Runtime
	generation uint64
}

func NewHandle(rt Runtime) *Handle {
	return &Handle{rt: rt}
}

func (h *Handle) DeviceCount() (int, error) {
	count, err := h.rt.DeviceCount()
	if err != nil {
		return 0, newRuntimeError("DeviceCount", NoDevice, err)
	}
	if count < 0 {
		return 0, newRuntimeError("DeviceCount", NoDevice,
			errors.Errorf("runtime reported a negative device count: %d", count))
	}

	return count, nil
}

// Version returns the backend version, or an empty string when the backend cannot report one.
func (h *Handle) Version() (string, error) {
	reporter, ok := h.rt.(VersionReporter)
	if !ok {
		return "", nil
	}

	v, err := reporter.Version()
	if err != nil {
		return "", newRuntimeError("Version", NoDevice, err)
	}

	return v, nil
}

// Activate makes index the current device. Any ActiveDevice obtained earlier becomes stale,
// including when activation fails.
func (h *Handle) Activate(index int) (*ActiveDevice, error) {
	h.generation++

	if err := h.rt.SetDevice(index); err != nil {
		return nil, newRuntimeError("SetDevice", index, err)
	}

	return &ActiveDevice{handle: h, index: index, generation: h.generation}, nil
}

// ActiveDevice is a session on the device selected by the latest Handle.Activate call.
type ActiveDevice struct {
	handle     *Handle
	index      int
	generation uint64
}

func (d *ActiveDevice) Index() int {
	return d.index
}

func (d *ActiveDevice) stale() bool {
	return d.generation != d.handle.generation
}

func (d *ActiveDevice) Properties() (deviceinfo.Properties, error) {
	if d.stale() {
		return deviceinfo.Properties{}, errors.Wrapf(ErrStaleDevice, "device#%d", d.index)
	}

	props, err := d.handle.rt.GetDeviceProperties(d.index)
	if err != nil {
		return deviceinfo.Properties{}, newRuntimeError("GetDeviceProperties", d.index, err)
	}

	return props, nil
}

// CanBeAccessedBy reports whether device peer can directly access this device's memory.
func (d *ActiveDevice) CanBeAccessedBy(peer int) (bool, error) {
	if d.stale() {
		return false, errors.Wrapf(ErrStaleDevice, "device#%d", d.index)
	}

	ok, err := d.handle.rt.DeviceCanAccessPeer(peer, d.index)
	if err != nil {
		return false, newRuntimeError("DeviceCanAccessPeer", d.index, err)
	}

	return ok, nil
}

func (d *ActiveDevice) MemoryStatus() (deviceinfo.MemoryStatus, error) {
	if d.stale() {
		return deviceinfo.MemoryStatus{}, errors.Wrapf(ErrStaleDevice, "device#%d", d.index)
	}

	free, total, err := d.handle.rt.MemGetInfo()
	if err != nil {
		return deviceinfo.MemoryStatus{}, newRuntimeError("MemGetInfo", d.index, err)
	}

	return deviceinfo.MemoryStatus{Free: free, Total: total}, nil
}
