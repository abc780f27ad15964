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
	"fmt"
	"log/slog"

	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"github.com/NVIDIA/device-query/internal/pkg/deviceinfo"
	"github.com/NVIDIA/device-query/internal/pkg/deviceruntime"
	"github.com/NVIDIA/device-query/internal/pkg/logging"
)

const (
	Name = "nvml"

	warpSize           = 32
	maxThreadsPerBlock = 1024
	sharedMemPerBlock  = 49152
	totalConstMem      = 65536
)

var (
	_ deviceruntime.Runtime         = (*Provider)(nil)
	_ deviceruntime.VersionReporter = (*Provider)(nil)
)

// Provider answers device queries through NVML. Limits NVML does not report are derived from
// the device's compute capability.
type Provider struct {
	lib         NVML
	current     int
	initialized bool
}

func New(lib NVML) *Provider {
	return &Provider{lib: lib}
}

// Init initializes the NVML library. It is safe to call again after a failure.
func (p *Provider) Init() error {
	if p.initialized {
		slog.Info("NVML already initialized.")
		return nil
	}

	slog.Info("Attempting to initialize NVML library.")
	if ret := p.lib.Init(); ret != nvml.SUCCESS {
		return p.statusError(ret)
	}
	p.initialized = true

	return nil
}

// Close shuts NVML down.
func (p *Provider) Close() error {
	if !p.initialized {
		return nil
	}
	p.initialized = false

	if ret := p.lib.Shutdown(); ret != nvml.SUCCESS {
		return p.statusError(ret)
	}

	return nil
}

func (p *Provider) preCheck() error {
	if !p.initialized {
		return fmt.Errorf("NVML library not initialized")
	}

	return nil
}

func (p *Provider) statusError(ret nvml.Return) error {
	return deviceruntime.NewStatusError(int(ret), p.lib.ErrorString(ret))
}

func (p *Provider) device(index int) (Device, error) {
	if err := p.preCheck(); err != nil {
		return nil, err
	}

	device, ret := p.lib.DeviceGetHandleByIndex(index)
	if ret != nvml.SUCCESS {
		return nil, p.statusError(ret)
	}

	return device, nil
}

func (p *Provider) DeviceCount() (int, error) {
	if err := p.preCheck(); err != nil {
		return 0, err
	}

	count, ret := p.lib.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return 0, p.statusError(ret)
	}

	return count, nil
}

func (p *Provider) SetDevice(index int) error {
	if _, err := p.device(index); err != nil {
		return err
	}
	p.current = index

	return nil
}

func (p *Provider) Version() (string, error) {
	if err := p.preCheck(); err != nil {
		return "", err
	}

	v, ret := p.lib.SystemGetDriverVersion()
	if ret != nvml.SUCCESS {
		return "", p.statusError(ret)
	}

	return v, nil
}

func (p *Provider) DeviceCanAccessPeer(from, to int) (bool, error) {
	fromDevice, err := p.device(from)
	if err != nil {
		return false, err
	}

	if from == to {
		return false, nil
	}

	toDevice, err := p.device(to)
	if err != nil {
		return false, err
	}

	status, ret := fromDevice.GetP2PStatus(toDevice, nvml.P2P_CAPS_INDEX_READ)
	if ret != nvml.SUCCESS {
		return false, p.statusError(ret)
	}

	return status == nvml.P2P_STATUS_OK, nil
}

func (p *Provider) MemGetInfo() (free, total uint64, err error) {
	device, err := p.device(p.current)
	if err != nil {
		return 0, 0, err
	}

	memory, ret := device.GetMemoryInfo()
	if ret != nvml.SUCCESS {
		return 0, 0, p.statusError(ret)
	}

	return memory.Free, memory.Total, nil
}

func (p *Provider) GetDeviceProperties(index int) (deviceinfo.Properties, error) {
	device, err := p.device(index)
	if err != nil {
		return deviceinfo.Properties{}, err
	}

	q := propertyQuery{provider: p, index: index}

	name, ret := device.GetName()
	q.required(ret)

	pci, ret := device.GetPciInfo()
	q.required(ret)

	memory, ret := device.GetMemoryInfo()
	q.required(ret)

	major, minor, ret := device.GetCudaComputeCapability()
	q.required(ret)

	smClock, ret := device.GetMaxClockInfo(nvml.CLOCK_SM)
	q.optional("GetMaxClockInfo(SM)", ret)

	memClock, ret := device.GetMaxClockInfo(nvml.CLOCK_MEM)
	q.optional("GetMaxClockInfo(MEM)", ret)

	busWidth, ret := device.GetMemoryBusWidth()
	q.optional("GetMemoryBusWidth", ret)

	multiGPUBoard, ret := device.GetMultiGpuBoard()
	q.optional("GetMultiGpuBoard", ret)

	computeMode, ret := device.GetComputeMode()
	q.optional("GetComputeMode", ret)

	cores, ret := device.GetNumGpuCores()
	q.optional("GetNumGpuCores", ret)

	if q.err != nil {
		return deviceinfo.Properties{}, q.err
	}

	limits := limitsFor(major, minor)

	return deviceinfo.Properties{
		Name:        name,
		PCIBusID:    int(pci.Bus),
		PCIDeviceID: int(pci.Device),
		PCIDomainID: int(pci.Domain),

		MultiProcessorCount:         cores / limits.coresPerSM,
		MaxThreadsPerMultiProcessor: limits.maxThreadsPerSM,
		IsMultiGPUBoard:             multiGPUBoard != 0,

		ClockRate:            int(smClock) * 1000,
		MemoryClockRate:      int(memClock) * 1000,
		MemoryBusWidth:       int(busWidth),
		ClockInstructionRate: int(smClock) * 1000,

		TotalGlobalMem:                   memory.Total,
		MaxSharedMemoryPerMultiProcessor: limits.sharedMemoryPerSM,
		TotalConstMem:                    totalConstMem,
		SharedMemPerBlock:                sharedMemPerBlock,
		CanMapHostMemory:                 true,
		RegsPerBlock:                     limits.regsPerBlock,
		WarpSize:                         warpSize,
		ComputeMode:                      int(computeMode),

		MaxThreadsPerBlock: maxThreadsPerBlock,
		MaxThreadsDim:      deviceinfo.Dim3{X: 1024, Y: 1024, Z: 64},
		MaxGridSize:        deviceinfo.Dim3{X: 2147483647, Y: 65535, Z: 65535},
		Major:              major,
		Minor:              minor,

		ConcurrentKernels:            true,
		CooperativeLaunch:            limits.cooperativeLaunches,
		CooperativeMultiDeviceLaunch: limits.cooperativeLaunches,

		Arch:     archFeatures(major, minor),
		ArchName: archName(major, minor),

		MaxTexture1D: limits.maxTexture1D,
		MaxTexture2D: limits.maxTexture2D,
		MaxTexture3D: limits.maxTexture3D,
	}, nil
}

// propertyQuery keeps the first failure of a sequence of NVML calls.
type propertyQuery struct {
	provider *Provider
	index    int
	err      error
}

func (q *propertyQuery) required(ret nvml.Return) {
	if q.err == nil && ret != nvml.SUCCESS {
		q.err = q.provider.statusError(ret)
	}
}

// optional tolerates queries the device does not support; the field is left at zero.
func (q *propertyQuery) optional(call string, ret nvml.Return) {
	if ret == nvml.ERROR_NOT_SUPPORTED {
		slog.Debug("NVML query not supported; reporting 0",
			slog.String("call", call),
			slog.Int(logging.DeviceKey, q.index))
		return
	}
	q.required(ret)
}
