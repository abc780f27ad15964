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

package enumerator

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/NVIDIA/device-query/internal/pkg/appconfig"
	"github.com/NVIDIA/device-query/internal/pkg/deviceruntime"
	"github.com/NVIDIA/device-query/internal/pkg/logging"
	"github.com/NVIDIA/device-query/internal/pkg/p2p"
)

// Run queries every selected device in ascending index order and hands each report to sink
// before moving on to the next device. The first failure stops the run; reports already
// written are kept.
func Run(handle *deviceruntime.Handle, devices appconfig.DeviceOptions, sink Sink) error {
	count, err := handle.DeviceCount()
	if err != nil {
		return err
	}

	slog.Debug("Enumerating devices",
		slog.Int(logging.DeviceCountKey, count),
		slog.String(logging.DeviceKey, devices.String()))

	if err := devices.Validate(count); err != nil {
		return err
	}

	all := make([]int, count)
	for i := range all {
		all[i] = i
	}

	for _, index := range all {
		if !devices.Selected(index) {
			continue
		}

		report, err := queryDevice(handle, index, all)
		if err != nil {
			return err
		}

		if err := sink.WriteDevice(report); err != nil {
			return errors.Wrapf(err, "failed to write report of device#%d", index)
		}
	}

	return nil
}

func queryDevice(handle *deviceruntime.Handle, index int, all []int) (DeviceReport, error) {
	device, err := handle.Activate(index)
	if err != nil {
		return DeviceReport{}, err
	}

	props, err := device.Properties()
	if err != nil {
		return DeviceReport{}, err
	}

	peers, err := p2p.Classify(index, all, device.CanBeAccessedBy)
	if err != nil {
		return DeviceReport{}, err
	}

	memory, err := device.MemoryStatus()
	if err != nil {
		return DeviceReport{}, err
	}

	slog.Debug("Device queried",
		slog.Int(logging.DeviceKey, index),
		slog.Int("peers", len(peers.Reachable)),
		slog.Uint64("freeMemory", memory.Free))

	return DeviceReport{
		Index:      index,
		Properties: props,
		Peers:      peers,
		Memory:     memory,
	}, nil
}
