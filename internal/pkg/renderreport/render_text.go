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
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"text/template"

	"github.com/NVIDIA/device-query/internal/pkg/deviceinfo"
	"github.com/NVIDIA/device-query/internal/pkg/enumerator"
	"github.com/NVIDIA/device-query/internal/pkg/units"
)

const (
	labelWidth = 34
	ruleWidth  = 80
)

/*
* The goal here is to get to the following format for every device:
* ```
* --------------------------------------------------------------------------------
* device#                           0
* Name:                             Tesla V100-SXM2-16GB
* ...
* peers:                            device#1
* non-peers:
*
* memInfo.total:                    15.77 GB
* memInfo.free:                     15.46 GB (98%)
* ```
 */

var deviceFormat = `{{ rule }}
{{ pad "device#" }}{{ .Index }}
{{ label "Name" }}{{ .Properties.Name }}
{{ label "pciBusID" }}{{ .Properties.PCIBusID }}
{{ label "pciDeviceID" }}{{ .Properties.PCIDeviceID }}
{{ label "pciDomainID" }}{{ .Properties.PCIDomainID }}
{{ label "multiProcessorCount" }}{{ .Properties.MultiProcessorCount }}
{{ label "maxThreadsPerMultiProcessor" }}{{ .Properties.MaxThreadsPerMultiProcessor }}
{{ label "isMultiGpuBoard" }}{{ flag .Properties.IsMultiGPUBoard }}
{{ label "clockRate" }}{{ mhz .Properties.ClockRate }} Mhz
{{ label "memoryClockRate" }}{{ mhz .Properties.MemoryClockRate }} Mhz
{{ label "memoryBusWidth" }}{{ .Properties.MemoryBusWidth }}
{{ label "clockInstructionRate" }}{{ mhz .Properties.ClockInstructionRate }} Mhz
{{ label "totalGlobalMem" }}{{ gb .Properties.TotalGlobalMem }} GB
{{ label "maxSharedMemoryPerMultiProcessor" }}{{ kb .Properties.MaxSharedMemoryPerMultiProcessor }} KB
{{ label "totalConstMem" }}{{ .Properties.TotalConstMem }}
{{ label "sharedMemPerBlock" }}{{ kb .Properties.SharedMemPerBlock }} KB
{{ label "canMapHostMemory" }}{{ flag .Properties.CanMapHostMemory }}
{{ label "regsPerBlock" }}{{ .Properties.RegsPerBlock }}
{{ label "warpSize" }}{{ .Properties.WarpSize }}
{{ label "l2CacheSize" }}{{ .Properties.L2CacheSize }}
{{ label "computeMode" }}{{ .Properties.ComputeMode }}
{{ label "maxThreadsPerBlock" }}{{ .Properties.MaxThreadsPerBlock }}
{{ label "maxThreadsDim.x" }}{{ .Properties.MaxThreadsDim.X }}
{{ label "maxThreadsDim.y" }}{{ .Properties.MaxThreadsDim.Y }}
{{ label "maxThreadsDim.z" }}{{ .Properties.MaxThreadsDim.Z }}
{{ label "maxGridSize.x" }}{{ .Properties.MaxGridSize.X }}
{{ label "maxGridSize.y" }}{{ .Properties.MaxGridSize.Y }}
{{ label "maxGridSize.z" }}{{ .Properties.MaxGridSize.Z }}
{{ label "major" }}{{ .Properties.Major }}
{{ label "minor" }}{{ .Properties.Minor }}
{{ label "concurrentKernels" }}{{ flag .Properties.ConcurrentKernels }}
{{ label "cooperativeLaunch" }}{{ flag .Properties.CooperativeLaunch }}
{{ label "cooperativeMultiDeviceLaunch" }}{{ flag .Properties.CooperativeMultiDeviceLaunch }}
{{- range $feature := archFeatures }}
{{ label (print "arch." $feature) }}{{ flag ($.Properties.Arch.Has $feature) }}
{{- end }}
{{ label "gcnArch" }}{{ .Properties.ArchName }}
{{ label "isIntegrated" }}{{ flag .Properties.Integrated }}
{{ label "maxTexture1D" }}{{ .Properties.MaxTexture1D }}
{{ label "maxTexture2D.width" }}{{ .Properties.MaxTexture2D.Width }}
{{ label "maxTexture2D.height" }}{{ .Properties.MaxTexture2D.Height }}
{{ label "maxTexture3D.width" }}{{ .Properties.MaxTexture3D.Width }}
{{ label "maxTexture3D.height" }}{{ .Properties.MaxTexture3D.Height }}
{{ label "maxTexture3D.depth" }}{{ .Properties.MaxTexture3D.Depth }}
{{ label "peers" }}{{ devices .Peers.Reachable }}
{{ label "non-peers" }}{{ devices .Peers.Unreachable }}

{{ label "memInfo.total" }}{{ gb .Memory.Total }} GB
{{ label "memInfo.free" }}{{ gb .Memory.Free }} GB ({{ percent .Memory.FreePercent }}%)
`

var templateFuncs = template.FuncMap{
	"rule":         func() string { return strings.Repeat("-", ruleWidth) },
	"pad":          pad,
	"label":        func(name string) string { return pad(name + ": ") },
	"flag":         flag,
	"mhz":          mhz,
	"kb":           func(bytes uint64) string { return strconv.FormatFloat(units.ToKilobytes(bytes), 'f', 2, 64) },
	"gb":           func(bytes uint64) string { return strconv.FormatFloat(units.ToGigabytes(bytes), 'f', 2, 64) },
	"percent":      func(p float64) string { return strconv.FormatFloat(p, 'f', 0, 64) },
	"devices":      devices,
	"archFeatures": deviceinfo.AllArchFeatures,
}

var getDeviceTemplate = sync.OnceValue(func() *template.Template {
	return template.Must(template.New("deviceFormat").Funcs(templateFuncs).Parse(deviceFormat))
})

// pad left-aligns s in the label column. Longer labels are kept whole.
func pad(s string) string {
	return fmt.Sprintf("%-*s", labelWidth, s)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// mhz converts a kHz clock rate to MHz with up to six significant digits.
func mhz(khz int) string {
	return strconv.FormatFloat(float64(khz)/1000, 'g', 6, 64)
}

func devices(indices []int) string {
	var sb strings.Builder
	for _, i := range indices {
		sb.WriteString("device#")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(' ')
	}
	return sb.String()
}

// RenderDevice writes the text section of a single device.
func RenderDevice(w io.Writer, report enumerator.DeviceReport) error {
	return getDeviceTemplate().Execute(w, report)
}

type textWriter struct {
	output io.Writer
}

func (t *textWriter) WriteHeader(h Header) error {
	_, err := fmt.Fprintln(t.output, h.String())
	return err
}

// WriteDevice writes the section of one device, separated from the previous output by a blank line.
func (t *textWriter) WriteDevice(report enumerator.DeviceReport) error {
	if _, err := fmt.Fprintln(t.output); err != nil {
		return err
	}

	return RenderDevice(t.output, report)
}

func (t *textWriter) Close() error {
	return nil
}
