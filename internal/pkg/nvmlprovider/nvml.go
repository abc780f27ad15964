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

package nvmlprovider

import (
	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

var (
	_ NVML   = RealNVML{}
	_ Device = realDevice{}
)

// RealNVML forwards to the NVML shared library.
type RealNVML struct{}

func (RealNVML) Init() nvml.Return {
	return nvml.Init()
}

func (RealNVML) Shutdown() nvml.Return {
	return nvml.Shutdown()
}

func (RealNVML) ErrorString(ret nvml.Return) string {
	return nvml.ErrorString(ret)
}

func (RealNVML) DeviceGetCount() (int, nvml.Return) {
	return nvml.DeviceGetCount()
}

func (RealNVML) DeviceGetHandleByIndex(index int) (Device, nvml.Return) {
	device, ret := nvml.DeviceGetHandleByIndex(index)
	if ret != nvml.SUCCESS {
		return nil, ret
	}
	return realDevice{device: device}, ret
}

func (RealNVML) SystemGetDriverVersion() (string, nvml.Return) {
	return nvml.SystemGetDriverVersion()
}

type realDevice struct {
	device nvml.Device
}

func (d realDevice) GetName() (string, nvml.Return) {
	return d.device.GetName()
}

func (d realDevice) GetPciInfo() (nvml.PciInfo, nvml.Return) {
	return d.device.GetPciInfo()
}

func (d realDevice) GetMemoryInfo() (nvml.Memory, nvml.Return) {
	return d.device.GetMemoryInfo()
}

func (d realDevice) GetCudaComputeCapability() (int, int, nvml.Return) {
	return d.device.GetCudaComputeCapability()
}

func (d realDevice) GetMaxClockInfo(clockType nvml.ClockType) (uint32, nvml.Return) {
	return d.device.GetMaxClockInfo(clockType)
}

func (d realDevice) GetMemoryBusWidth() (uint32, nvml.Return) {
	return d.device.GetMemoryBusWidth()
}

func (d realDevice) GetMultiGpuBoard() (int, nvml.Return) {
	return d.device.GetMultiGpuBoard()
}

func (d realDevice) GetComputeMode() (nvml.ComputeMode, nvml.Return) {
	return d.device.GetComputeMode()
}

func (d realDevice) GetNumGpuCores() (int, nvml.Return) {
	return d.device.GetNumGpuCores()
}

func (d realDevice) GetP2PStatus(peer Device, capsIndex nvml.GpuP2PCapsIndex) (nvml.GpuP2PStatus, nvml.Return) {
	p, ok := peer.(realDevice)
	if !ok {
		return nvml.P2P_STATUS_UNKNOWN, nvml.ERROR_INVALID_ARGUMENT
	}
	return d.device.GetP2PStatus(p.device, capsIndex)
}
