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

package nvmlprovider_test

import (
	"testing"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mocknvml "github.com/NVIDIA/device-query/internal/mocks/pkg/nvmlprovider"
	"github.com/NVIDIA/device-query/internal/pkg/deviceinfo"
	"github.com/NVIDIA/device-query/internal/pkg/deviceruntime"
	"github.com/NVIDIA/device-query/internal/pkg/nvmlprovider"
)

func newInitializedProvider(t *testing.T, lib *mocknvml.MockNVML) *nvmlprovider.Provider {
	t.Helper()
	lib.EXPECT().Init().Return(nvml.SUCCESS)
	p := nvmlprovider.New(lib)
	require.NoError(t, p.Init())
	return p
}

func expectV100(device *mocknvml.MockDevice) {
	device.EXPECT().GetName().Return("Tesla V100-SXM2-16GB", nvml.SUCCESS).AnyTimes()
	device.EXPECT().GetPciInfo().Return(nvml.PciInfo{Domain: 0, Bus: 0x1a, Device: 0}, nvml.SUCCESS).AnyTimes()
	device.EXPECT().GetMemoryInfo().Return(nvml.Memory{Total: 17179869184, Free: 16800000000}, nvml.SUCCESS).AnyTimes()
	device.EXPECT().GetCudaComputeCapability().Return(7, 0, nvml.SUCCESS).AnyTimes()
	device.EXPECT().GetMaxClockInfo(nvml.CLOCK_SM).Return(uint32(1530), nvml.SUCCESS).AnyTimes()
	device.EXPECT().GetMaxClockInfo(nvml.CLOCK_MEM).Return(uint32(877), nvml.SUCCESS).AnyTimes()
	device.EXPECT().GetMemoryBusWidth().Return(uint32(4096), nvml.SUCCESS).AnyTimes()
	device.EXPECT().GetMultiGpuBoard().Return(0, nvml.SUCCESS).AnyTimes()
	device.EXPECT().GetComputeMode().Return(nvml.COMPUTEMODE_DEFAULT, nvml.SUCCESS).AnyTimes()
	device.EXPECT().GetNumGpuCores().Return(5120, nvml.SUCCESS).AnyTimes()
}

func TestProvider_Init(t *testing.T) {
	ctrl := gomock.NewController(t)
	lib := mocknvml.NewMockNVML(ctrl)

	lib.EXPECT().Init().Return(nvml.ERROR_LIBRARY_NOT_FOUND)
	lib.EXPECT().ErrorString(nvml.ERROR_LIBRARY_NOT_FOUND).Return("NVML Shared Library Not Found")

	p := nvmlprovider.New(lib)
	err := p.Init()
	var se *deviceruntime.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, int(nvml.ERROR_LIBRARY_NOT_FOUND), se.Code)
	assert.Equal(t, "NVML Shared Library Not Found", se.Message)

	_, err = p.DeviceCount()
	require.Error(t, err, "queries must fail before a successful Init")

	lib.EXPECT().Init().Return(nvml.SUCCESS)
	require.NoError(t, p.Init())

	lib.EXPECT().Shutdown().Return(nvml.SUCCESS)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close(), "second Close is a no-op")
}

func TestProvider_DeviceCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	lib := mocknvml.NewMockNVML(ctrl)
	p := newInitializedProvider(t, lib)

	lib.EXPECT().DeviceGetCount().Return(2, nvml.SUCCESS)
	count, err := p.DeviceCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	lib.EXPECT().DeviceGetCount().Return(0, nvml.ERROR_DRIVER_NOT_LOADED)
	lib.EXPECT().ErrorString(nvml.ERROR_DRIVER_NOT_LOADED).Return("Driver Not Loaded")
	_, err = p.DeviceCount()
	var se *deviceruntime.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, int(nvml.ERROR_DRIVER_NOT_LOADED), se.Code)
}

func TestProvider_GetDeviceProperties(t *testing.T) {
	ctrl := gomock.NewController(t)
	lib := mocknvml.NewMockNVML(ctrl)
	device := mocknvml.NewMockDevice(ctrl)
	p := newInitializedProvider(t, lib)

	lib.EXPECT().DeviceGetHandleByIndex(0).Return(device, nvml.SUCCESS)
	expectV100(device)

	props, err := p.GetDeviceProperties(0)
	require.NoError(t, err)

	assert.Equal(t, "Tesla V100-SXM2-16GB", props.Name)
	assert.Equal(t, 0x1a, props.PCIBusID)
	assert.Equal(t, 80, props.MultiProcessorCount)
	assert.Equal(t, 2048, props.MaxThreadsPerMultiProcessor)
	assert.Equal(t, 1530000, props.ClockRate)
	assert.Equal(t, 1530000, props.ClockInstructionRate)
	assert.Equal(t, 877000, props.MemoryClockRate)
	assert.Equal(t, 4096, props.MemoryBusWidth)
	assert.Equal(t, uint64(17179869184), props.TotalGlobalMem)
	assert.Equal(t, uint64(98304), props.MaxSharedMemoryPerMultiProcessor)
	assert.Equal(t, 7, props.Major)
	assert.Equal(t, 0, props.Minor)
	assert.Equal(t, "sm_70", props.ArchName)
	assert.Equal(t, 32, props.WarpSize)
	assert.Equal(t, deviceinfo.Dim3{X: 1024, Y: 1024, Z: 64}, props.MaxThreadsDim)
	assert.True(t, props.CooperativeLaunch)
	assert.False(t, props.IsMultiGPUBoard)
	assert.True(t, props.Arch.Has(deviceinfo.HasDynamicParallelism))
}

func TestProvider_GetDeviceProperties_NotSupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	lib := mocknvml.NewMockNVML(ctrl)
	device := mocknvml.NewMockDevice(ctrl)
	p := newInitializedProvider(t, lib)

	lib.EXPECT().DeviceGetHandleByIndex(0).Return(device, nvml.SUCCESS)
	device.EXPECT().GetNumGpuCores().Return(0, nvml.ERROR_NOT_SUPPORTED)
	device.EXPECT().GetMemoryBusWidth().Return(uint32(0), nvml.ERROR_NOT_SUPPORTED)
	expectV100(device)

	props, err := p.GetDeviceProperties(0)
	require.NoError(t, err)
	assert.Zero(t, props.MultiProcessorCount)
	assert.Zero(t, props.MemoryBusWidth)
	assert.Equal(t, "Tesla V100-SXM2-16GB", props.Name)
}

func TestProvider_GetDeviceProperties_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	lib := mocknvml.NewMockNVML(ctrl)
	device := mocknvml.NewMockDevice(ctrl)
	p := newInitializedProvider(t, lib)

	lib.EXPECT().DeviceGetHandleByIndex(0).Return(device, nvml.SUCCESS)
	lib.EXPECT().ErrorString(nvml.ERROR_GPU_IS_LOST).Return("GPU is lost")
	device.EXPECT().GetCudaComputeCapability().Return(0, 0, nvml.ERROR_GPU_IS_LOST)
	expectV100(device)

	_, err := p.GetDeviceProperties(0)
	var se *deviceruntime.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, int(nvml.ERROR_GPU_IS_LOST), se.Code)
	assert.Equal(t, "GPU is lost", se.Message)
}

func TestProvider_DeviceCanAccessPeer(t *testing.T) {
	tests := []struct {
		name   string
		status nvml.GpuP2PStatus
		want   bool
	}{
		{name: "supported", status: nvml.P2P_STATUS_OK, want: true},
		{name: "not supported", status: nvml.P2P_STATUS_NOT_SUPPORTED, want: false},
		{name: "gpu not supported", status: nvml.P2P_STATUS_GPU_NOT_SUPPORTED, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			lib := mocknvml.NewMockNVML(ctrl)
			from := mocknvml.NewMockDevice(ctrl)
			to := mocknvml.NewMockDevice(ctrl)
			p := newInitializedProvider(t, lib)

			lib.EXPECT().DeviceGetHandleByIndex(0).Return(from, nvml.SUCCESS)
			lib.EXPECT().DeviceGetHandleByIndex(1).Return(to, nvml.SUCCESS)
			from.EXPECT().GetP2PStatus(to, nvml.P2P_CAPS_INDEX_READ).Return(tt.status, nvml.SUCCESS)

			got, err := p.DeviceCanAccessPeer(0, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProvider_DeviceCanAccessPeer_Self(t *testing.T) {
	ctrl := gomock.NewController(t)
	lib := mocknvml.NewMockNVML(ctrl)
	device := mocknvml.NewMockDevice(ctrl)
	p := newInitializedProvider(t, lib)

	lib.EXPECT().DeviceGetHandleByIndex(1).Return(device, nvml.SUCCESS)

	got, err := p.DeviceCanAccessPeer(1, 1)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestProvider_MemGetInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	lib := mocknvml.NewMockNVML(ctrl)
	first := mocknvml.NewMockDevice(ctrl)
	second := mocknvml.NewMockDevice(ctrl)
	p := newInitializedProvider(t, lib)

	lib.EXPECT().DeviceGetHandleByIndex(0).Return(first, nvml.SUCCESS)
	first.EXPECT().GetMemoryInfo().Return(nvml.Memory{Total: 100, Free: 40}, nvml.SUCCESS)

	free, total, err := p.MemGetInfo()
	require.NoError(t, err)
	assert.Equal(t, uint64(40), free)
	assert.Equal(t, uint64(100), total)

	lib.EXPECT().DeviceGetHandleByIndex(1).Return(second, nvml.SUCCESS).Times(2)
	second.EXPECT().GetMemoryInfo().Return(nvml.Memory{Total: 200, Free: 150}, nvml.SUCCESS)

	require.NoError(t, p.SetDevice(1))
	free, total, err = p.MemGetInfo()
	require.NoError(t, err)
	assert.Equal(t, uint64(150), free)
	assert.Equal(t, uint64(200), total)
}

func TestProvider_SetDevice_InvalidIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	lib := mocknvml.NewMockNVML(ctrl)
	p := newInitializedProvider(t, lib)

	lib.EXPECT().DeviceGetHandleByIndex(7).Return(nil, nvml.ERROR_INVALID_ARGUMENT)
	lib.EXPECT().ErrorString(nvml.ERROR_INVALID_ARGUMENT).Return("Invalid Argument")

	err := p.SetDevice(7)
	var se *deviceruntime.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, int(nvml.ERROR_INVALID_ARGUMENT), se.Code)
}

func TestProvider_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	lib := mocknvml.NewMockNVML(ctrl)
	p := newInitializedProvider(t, lib)

	lib.EXPECT().SystemGetDriverVersion().Return("550.54.15", nvml.SUCCESS)
	v, err := p.Version()
	require.NoError(t, err)
	assert.Equal(t, "550.54.15", v)
}
