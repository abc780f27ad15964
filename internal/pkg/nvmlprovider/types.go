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

//go:generate go run -v go.uber.org/mock/mockgen  -destination=../../mocks/pkg/nvmlprovider/mock_nvml.go -package=nvmlprovider -copyright_file=../../../hack/header.txt . NVML,Device

package nvmlprovider

import (
	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// NVML is the subset of the NVIDIA Management Library used to answer device queries.
type NVML interface {
	Init() nvml.Return
	Shutdown() nvml.Return
	ErrorString(ret nvml.Return) string
	DeviceGetCount() (int, nvml.Return)
	DeviceGetHandleByIndex(index int) (Device, nvml.Return)
	SystemGetDriverVersion() (string, nvml.Return)
}

// Device is the subset of nvml.Device used to build a capability record.
type Device interface {
	GetName() (string, nvml.Return)
	GetPciInfo() (nvml.PciInfo, nvml.Return)
	GetMemoryInfo() (nvml.Memory, nvml.Return)
	GetCudaComputeCapability() (int, int, nvml.Return)
	GetMaxClockInfo(clockType nvml.ClockType) (uint32, nvml.Return)
	GetMemoryBusWidth() (uint32, nvml.Return)
	GetMultiGpuBoard() (int, nvml.Return)
	GetComputeMode() (nvml.ComputeMode, nvml.Return)
	GetNumGpuCores() (int, nvml.Return)
	GetP2PStatus(peer Device, capsIndex nvml.GpuP2PCapsIndex) (nvml.GpuP2PStatus, nvml.Return)
}
