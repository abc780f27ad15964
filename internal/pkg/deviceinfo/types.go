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

// Dim3 is a three component size, used for thread block and grid limits.
type Dim3 struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

type Extent2D struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

type Extent3D struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
	Depth  int `json:"depth" yaml:"depth"`
}

// Properties is the capability record of a single device as reported by the runtime.
// Clock rates are in kHz and memory sizes in bytes.
type Properties struct {
	Name        string `json:"name" yaml:"name"`
	PCIBusID    int    `json:"pciBusID" yaml:"pciBusID"`
	PCIDeviceID int    `json:"pciDeviceID" yaml:"pciDeviceID"`
	PCIDomainID int    `json:"pciDomainID" yaml:"pciDomainID"`

	MultiProcessorCount         int  `json:"multiProcessorCount" yaml:"multiProcessorCount"`
	MaxThreadsPerMultiProcessor int  `json:"maxThreadsPerMultiProcessor" yaml:"maxThreadsPerMultiProcessor"`
	IsMultiGPUBoard             bool `json:"isMultiGpuBoard" yaml:"isMultiGpuBoard"`

	ClockRate            int `json:"clockRate" yaml:"clockRate"`
	MemoryClockRate      int `json:"memoryClockRate" yaml:"memoryClockRate"`
	MemoryBusWidth       int `json:"memoryBusWidth" yaml:"memoryBusWidth"`
	ClockInstructionRate int `json:"clockInstructionRate" yaml:"clockInstructionRate"`

	TotalGlobalMem                   uint64 `json:"totalGlobalMem" yaml:"totalGlobalMem"`
	MaxSharedMemoryPerMultiProcessor uint64 `json:"maxSharedMemoryPerMultiProcessor" yaml:"maxSharedMemoryPerMultiProcessor"`
	TotalConstMem                    uint64 `json:"totalConstMem" yaml:"totalConstMem"`
	SharedMemPerBlock                uint64 `json:"sharedMemPerBlock" yaml:"sharedMemPerBlock"`
	CanMapHostMemory                 bool   `json:"canMapHostMemory" yaml:"canMapHostMemory"`
	RegsPerBlock                     int    `json:"regsPerBlock" yaml:"regsPerBlock"`
	WarpSize                         int    `json:"warpSize" yaml:"warpSize"`
	L2CacheSize                      int    `json:"l2CacheSize" yaml:"l2CacheSize"`
	ComputeMode                      int    `json:"computeMode" yaml:"computeMode"`

	MaxThreadsPerBlock int  `json:"maxThreadsPerBlock" yaml:"maxThreadsPerBlock"`
	MaxThreadsDim      Dim3 `json:"maxThreadsDim" yaml:"maxThreadsDim"`
	MaxGridSize        Dim3 `json:"maxGridSize" yaml:"maxGridSize"`
	Major              int  `json:"major" yaml:"major"`
	Minor              int  `json:"minor" yaml:"minor"`

	ConcurrentKernels            bool `json:"concurrentKernels" yaml:"concurrentKernels"`
	CooperativeLaunch            bool `json:"cooperativeLaunch" yaml:"cooperativeLaunch"`
	CooperativeMultiDeviceLaunch bool `json:"cooperativeMultiDeviceLaunch" yaml:"cooperativeMultiDeviceLaunch"`

	Arch       ArchFeatures `json:"arch" yaml:"arch"`
	ArchName   string       `json:"gcnArch" yaml:"gcnArch"`
	Integrated bool         `json:"isIntegrated" yaml:"isIntegrated"`

	MaxTexture1D int      `json:"maxTexture1D" yaml:"maxTexture1D"`
	MaxTexture2D Extent2D `json:"maxTexture2D" yaml:"maxTexture2D"`
	MaxTexture3D Extent3D `json:"maxTexture3D" yaml:"maxTexture3D"`
}

// MemoryStatus is a point-in-time reading of device memory occupancy in bytes.
type MemoryStatus struct {
	Free  uint64 `json:"free" yaml:"free"`
	Total uint64 `json:"total" yaml:"total"`
}

// FreePercent returns free memory as a percentage of total memory. A device reporting no
// memory at all is 0% free.
func (m MemoryStatus) FreePercent() float64 {
	if m.Total == 0 {
		return 0
	}

	return float64(m.Free) / float64(m.Total) * 100
}
