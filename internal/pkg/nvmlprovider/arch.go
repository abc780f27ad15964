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

	"github.com/NVIDIA/device-query/internal/pkg/deviceinfo"
)

// archLimits holds the per-architecture limits NVML does not expose. Values follow the
// "Technical Specifications per Compute Capability" table of the CUDA programming guide.
type archLimits struct {
	computeCapability   int // major*10 + minor
	coresPerSM          int
	maxThreadsPerSM     int
	sharedMemoryPerSM   uint64
	regsPerBlock        int
	maxTexture1D        int
	maxTexture2D        deviceinfo.Extent2D
	maxTexture3D        deviceinfo.Extent3D
	cooperativeLaunches bool
}

var (
	kepler = archLimits{
		coresPerSM:        192,
		maxThreadsPerSM:   2048,
		sharedMemoryPerSM: 49152,
		regsPerBlock:      65536,
		maxTexture1D:      65536,
		maxTexture2D:      deviceinfo.Extent2D{Width: 65536, Height: 65535},
		maxTexture3D:      deviceinfo.Extent3D{Width: 4096, Height: 4096, Depth: 4096},
	}
	maxwell = archLimits{
		coresPerSM:        128,
		maxThreadsPerSM:   2048,
		sharedMemoryPerSM: 65536,
		regsPerBlock:      65536,
		maxTexture1D:      131072,
		maxTexture2D:      deviceinfo.Extent2D{Width: 131072, Height: 65536},
		maxTexture3D:      deviceinfo.Extent3D{Width: 16384, Height: 16384, Depth: 16384},
	}

	pascal = with(maxwell, 60, func(l *archLimits) { l.cooperativeLaunches = true })

	volta = with(pascal, 70, func(l *archLimits) {
		l.coresPerSM = 64
		l.sharedMemoryPerSM = 98304
	})

	ampere = with(pascal, 80, func(l *archLimits) {
		l.coresPerSM = 64
		l.sharedMemoryPerSM = 167936
	})
)

func unchanged(*archLimits) {}

// knownLimits is sorted by compute capability.
var knownLimits = []archLimits{
	with(kepler, 30, unchanged),
	with(kepler, 32, func(l *archLimits) { l.regsPerBlock = 32768 }),
	with(kepler, 35, unchanged),
	with(kepler, 37, func(l *archLimits) { l.sharedMemoryPerSM = 114688 }),
	with(maxwell, 50, unchanged),
	with(maxwell, 52, func(l *archLimits) { l.sharedMemoryPerSM = 98304 }),
	with(maxwell, 53, func(l *archLimits) { l.regsPerBlock = 32768 }),
	with(pascal, 60, func(l *archLimits) { l.coresPerSM = 64 }),
	with(pascal, 61, func(l *archLimits) { l.sharedMemoryPerSM = 98304 }),
	with(pascal, 62, func(l *archLimits) { l.regsPerBlock = 32768 }),
	with(volta, 70, unchanged),
	with(volta, 72, unchanged),
	// Turing
	with(volta, 75, func(l *archLimits) {
		l.maxThreadsPerSM = 1024
		l.sharedMemoryPerSM = 65536
	}),
	with(ampere, 80, unchanged),
	with(ampere, 86, func(l *archLimits) {
		l.coresPerSM = 128
		l.maxThreadsPerSM = 1536
		l.sharedMemoryPerSM = 102400
	}),
	with(ampere, 87, func(l *archLimits) { l.coresPerSM = 128 }),
	// Ada
	with(ampere, 89, func(l *archLimits) {
		l.coresPerSM = 128
		l.maxThreadsPerSM = 1536
		l.sharedMemoryPerSM = 102400
	}),
	// Hopper
	with(ampere, 90, func(l *archLimits) {
		l.coresPerSM = 128
		l.sharedMemoryPerSM = 233472
	}),
}

func with(base archLimits, cc int, edit func(l *archLimits)) archLimits {
	base.computeCapability = cc
	edit(&base)
	return base
}

// limitsFor returns the limits of the closest known architecture not newer than major.minor.
func limitsFor(major, minor int) archLimits {
	cc := major*10 + minor
	limits := knownLimits[0]
	for _, l := range knownLimits {
		if l.computeCapability > cc {
			break
		}
		limits = l
	}

	return limits
}

// archFeatureThresholds maps each feature to the minimum compute capability that provides it.
var archFeatureThresholds = map[deviceinfo.ArchFeature]int{
	deviceinfo.HasGlobalInt32Atomics:    11,
	deviceinfo.HasGlobalFloatAtomicExch: 11,
	deviceinfo.HasSharedInt64Atomics:    11,
	deviceinfo.HasSharedInt32Atomics:    12,
	deviceinfo.HasSharedFloatAtomicExch: 12,
	deviceinfo.HasGlobalInt64Atomics:    12,
	deviceinfo.HasWarpVote:              12,
	deviceinfo.HasDoubles:               13,
	deviceinfo.HasFloatAtomicAdd:        20,
	deviceinfo.HasWarpBallot:            20,
	deviceinfo.HasThreadFenceSystem:     20,
	deviceinfo.HasSyncThreadsExt:        20,
	deviceinfo.HasSurfaceFuncs:          20,
	deviceinfo.Has3dGrid:                20,
	deviceinfo.HasWarpShuffle:           30,
	deviceinfo.HasFunnelShift:           32,
	deviceinfo.HasDynamicParallelism:    35,
}

func archFeatures(major, minor int) deviceinfo.ArchFeatures {
	cc := major*10 + minor
	features := deviceinfo.NewArchFeatures()
	for _, f := range deviceinfo.AllArchFeatures() {
		if cc >= archFeatureThresholds[f] {
			features.Set(f)
		}
	}

	return features
}

func archName(major, minor int) string {
	return fmt.Sprintf("sm_%d%d", major, minor)
}
