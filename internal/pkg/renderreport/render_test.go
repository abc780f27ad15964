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

package renderreport

import (
	"bytes"
	"encoding/json"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/device-query/internal/pkg/deviceinfo"
	"github.com/NVIDIA/device-query/internal/pkg/enumerator"
	"github.com/NVIDIA/device-query/internal/pkg/p2p"
)

func v100Report(index int, peers p2p.Relation) enumerator.DeviceReport {
	return enumerator.DeviceReport{
		Index: index,
		Properties: deviceinfo.Properties{
			Name:                             "Tesla V100-SXM2-16GB",
			PCIBusID:                         26,
			MultiProcessorCount:              80,
			MaxThreadsPerMultiProcessor:      2048,
			ClockRate:                        1530000,
			MemoryClockRate:                  877000,
			MemoryBusWidth:                   4096,
			ClockInstructionRate:             1000,
			TotalGlobalMem:                   16945709056,
			MaxSharedMemoryPerMultiProcessor: 98304,
			TotalConstMem:                    65536,
			SharedMemPerBlock:                49152,
			CanMapHostMemory:                 true,
			RegsPerBlock:                     65536,
			WarpSize:                         32,
			L2CacheSize:                      6291456,
			MaxThreadsPerBlock:               1024,
			MaxThreadsDim:                    deviceinfo.Dim3{X: 1024, Y: 1024, Z: 64},
			MaxGridSize:                      deviceinfo.Dim3{X: 2147483647, Y: 65535, Z: 65535},
			Major:                            7,
			ConcurrentKernels:                true,
			CooperativeLaunch:                true,
			CooperativeMultiDeviceLaunch:     true,
			Arch:                             deviceinfo.NewArchFeatures(deviceinfo.AllArchFeatures()...),
			ArchName:                         "sm_70",
			MaxTexture1D:                     131072,
			MaxTexture2D:                     deviceinfo.Extent2D{Width: 131072, Height: 65536},
			MaxTexture3D:                     deviceinfo.Extent3D{Width: 16384, Height: 16384, Depth: 16384},
		},
		Peers:  peers,
		Memory: deviceinfo.MemoryStatus{Free: 2_147_483_648, Total: 8_589_934_592},
	}
}

func TestRenderDevice(t *testing.T) {
	want, err := os.ReadFile("testdata/device_section.golden")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = RenderDevice(&buf, v100Report(0, p2p.Relation{Reachable: []int{1}, Unreachable: []int{}}))
	require.NoError(t, err)

	assert.Equal(t, string(want), buf.String())
}

func TestRenderDevice_Lines(t *testing.T) {
	tests := []struct {
		name   string
		report func() enumerator.DeviceReport
		want   []string
	}{
		{
			name: "memory summary",
			report: func() enumerator.DeviceReport {
				return v100Report(0, p2p.Relation{})
			},
			want: []string{
				"memInfo.total:                    8.00 GB\n",
				"memInfo.free:                     2.00 GB (25%)\n",
			},
		},
		{
			name: "no memory",
			report: func() enumerator.DeviceReport {
				r := v100Report(0, p2p.Relation{})
				r.Memory = deviceinfo.MemoryStatus{}
				return r
			},
			want: []string{
				"memInfo.total:                    0.00 GB\n",
				"memInfo.free:                     0.00 GB (0%)\n",
			},
		},
		{
			name: "empty peer lists are kept",
			report: func() enumerator.DeviceReport {
				return v100Report(3, p2p.Relation{})
			},
			want: []string{
				"device#                           3\n",
				"\npeers:                            \n",
				"\nnon-peers:                        \n",
			},
		},
		{
			name: "peer lists are space separated",
			report: func() enumerator.DeviceReport {
				return v100Report(1, p2p.Relation{Reachable: []int{0, 2}, Unreachable: []int{3}})
			},
			want: []string{
				"\npeers:                            device#0 device#2 \n",
				"\nnon-peers:                        device#3 \n",
			},
		},
		{
			name: "fractional clock rates",
			report: func() enumerator.DeviceReport {
				r := v100Report(0, p2p.Relation{})
				r.Properties.ClockRate = 1455500
				r.Properties.MemoryClockRate = 0
				return r
			},
			want: []string{
				"\nclockRate:                        1455.5 Mhz\n",
				"\nmemoryClockRate:                  0 Mhz\n",
			},
		},
		{
			name: "missing architecture features render as 0",
			report: func() enumerator.DeviceReport {
				r := v100Report(0, p2p.Relation{})
				r.Properties.Major, r.Properties.Minor = 3, 0
				r.Properties.ArchName = "sm_30"
				r.Properties.Arch = deviceinfo.NewArchFeatures()
				for _, f := range deviceinfo.AllArchFeatures() {
					if f != deviceinfo.HasFunnelShift && f != deviceinfo.HasDynamicParallelism {
						r.Properties.Arch.Set(f)
					}
				}
				return r
			},
			want: []string{
				"\narch.hasWarpShuffle:              1\n",
				"\narch.hasFunnelShift:              0\n",
				"\narch.hasDynamicParallelism:       0\n",
				"\ngcnArch:                          sm_30\n",
			},
		},
		{
			name: "flags render as integers",
			report: func() enumerator.DeviceReport {
				r := v100Report(0, p2p.Relation{})
				r.Properties.IsMultiGPUBoard = true
				r.Properties.Integrated = true
				r.Properties.ComputeMode = 3
				return r
			},
			want: []string{
				"\nisMultiGpuBoard:                  1\n",
				"\nisIntegrated:                     1\n",
				"\ncomputeMode:                      3\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderDevice(&buf, tt.report()))
			for _, line := range tt.want {
				assert.Contains(t, buf.String(), line)
			}
		})
	}
}

func TestRenderDevice_LabelColumn(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderDevice(&buf, v100Report(0, p2p.Relation{Reachable: []int{1}})))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, strings.Repeat("-", 80), lines[0])
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		require.GreaterOrEqualf(t, len(line), labelWidth, "line %q", line)
		label := strings.TrimRight(line[:labelWidth], " ")
		assert.NotEmptyf(t, label, "line %q", line)
	}
}

func TestHeader_String(t *testing.T) {
	tests := []struct {
		name   string
		header Header
		want   string
	}{
		{
			name:   "without runtime",
			header: Header{Compiler: "gc", Version: "go1.22.9"},
			want:   "compiler: gc version=go1.22.9",
		},
		{
			name:   "with runtime",
			header: Header{Compiler: "gc", Version: "go1.22.9", Runtime: "nvml"},
			want:   "compiler: gc version=go1.22.9, runtime: nvml",
		},
		{
			name:   "with runtime version",
			header: Header{Compiler: "gc", Version: "go1.22.9", Runtime: "nvml", RuntimeVersion: "550.54.15"},
			want:   "compiler: gc version=go1.22.9, runtime: nvml driver=550.54.15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.header.String())
		})
	}
}

func TestNewHeader(t *testing.T) {
	h := NewHeader("fake", "1.0")
	assert.Equal(t, runtime.Compiler, h.Compiler)
	assert.Equal(t, runtime.Version(), h.Version)
	assert.Equal(t, "fake", h.Runtime)
	assert.Equal(t, "1.0", h.RuntimeVersion)
}

func TestNewWriter(t *testing.T) {
	for _, format := range SupportedFormats() {
		w, err := NewWriter(Format(format), &bytes.Buffer{})
		require.NoError(t, err)
		assert.NotNil(t, w)
		assert.False(t, Format(format).IsUnknown())
	}

	_, err := NewWriter("table", &bytes.Buffer{})
	assert.EqualError(t, err, "unsupported format: table")
	assert.True(t, Format("table").IsUnknown())
}

func TestTextWriter(t *testing.T) {
	tests := []struct {
		name    string
		devices int
	}{
		{name: "no devices", devices: 0},
		{name: "one device", devices: 1},
		{name: "three devices", devices: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(FormatText, &buf)
			require.NoError(t, err)

			require.NoError(t, w.WriteHeader(Header{Compiler: "gc", Version: "go1.22.9"}))
			for i := 0; i < tt.devices; i++ {
				require.NoError(t, w.WriteDevice(v100Report(i, p2p.Relation{})))
			}
			require.NoError(t, w.Close())

			out := buf.String()
			assert.True(t, strings.HasPrefix(out, "compiler: gc version=go1.22.9\n"))
			assert.Equal(t, tt.devices, strings.Count(out, "\n"+strings.Repeat("-", 80)+"\n"))
			if tt.devices == 0 {
				assert.Equal(t, "compiler: gc version=go1.22.9\n", out)
			}
			for i := 0; i < tt.devices; i++ {
				assert.Contains(t, out, "\ndevice#                           "+string(rune('0'+i))+"\n")
			}
		})
	}
}

func TestStructuredWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, w.WriteHeader(Header{Compiler: "gc", Version: "go1.22.9", Runtime: "fake"}))
	require.NoError(t, w.WriteDevice(v100Report(0, p2p.Relation{Reachable: []int{1}, Unreachable: []int{}})))
	assert.Zero(t, buf.Len(), "nothing is written before Close")
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "fake", got.Header.Runtime)
	require.Len(t, got.Devices, 1)
	assert.Equal(t, "Tesla V100-SXM2-16GB", got.Devices[0].Properties.Name)
	assert.Equal(t, []int{1}, got.Devices[0].Peers.Reachable)
	assert.Equal(t, uint64(8_589_934_592), got.Devices[0].Memory.Total)
	assert.True(t, got.Devices[0].Properties.Arch.Has(deviceinfo.HasDoubles))
	assert.True(t, got.Devices[0].Properties.Arch.Has(deviceinfo.HasFloatAtomicAdd))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	device := raw["devices"].([]any)[0].(map[string]any)
	assert.Equal(t, []any{}, device["peerAccess"].(map[string]any)["nonPeers"])
	assert.Equal(t, "sm_70", device["properties"].(map[string]any)["gcnArch"])
}

func TestStructuredWriter_YAML(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(FormatYAML, &buf)
	require.NoError(t, err)

	require.NoError(t, w.WriteHeader(Header{Compiler: "gc", Version: "go1.22.9"}))
	require.NoError(t, w.WriteDevice(v100Report(0, p2p.Relation{Reachable: []int{}, Unreachable: []int{1}})))
	require.NoError(t, w.WriteDevice(v100Report(1, p2p.Relation{Reachable: []int{}, Unreachable: []int{0}})))
	require.NoError(t, w.Close())

	assert.Contains(t, buf.String(), "header:\n  compiler: gc\n")

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Devices, 2)
	assert.Equal(t, 1, got.Devices[1].Index)
	assert.Equal(t, []int{0}, got.Devices[1].Peers.Unreachable)
	assert.Equal(t, deviceinfo.Dim3{X: 1024, Y: 1024, Z: 64}, got.Devices[1].Properties.MaxThreadsDim)
}

func TestStructuredWriter_NoDevices(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(FormatJSON, &buf)
	require.NoError(t, err)
	require.NoError(t, w.WriteHeader(Header{Compiler: "gc", Version: "go1.22.9"}))
	require.NoError(t, w.Close())

	assert.Contains(t, buf.String(), `"devices": []`)
}
