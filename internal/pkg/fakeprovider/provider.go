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

package fakeprovider

import (
	"bytes"
	"fmt"
	"log/slog"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/device-query/internal/pkg/deviceinfo"
	"github.com/NVIDIA/device-query/internal/pkg/deviceruntime"
	"github.com/NVIDIA/device-query/internal/pkg/logging"
	osinterface "github.com/NVIDIA/device-query/internal/pkg/os"
)

const Name = "fake"

var os osinterface.OS = osinterface.RealOS{}

var (
	_ deviceruntime.Runtime         = (*Provider)(nil)
	_ deviceruntime.VersionReporter = (*Provider)(nil)
)

var validCalls = []Call{
	CallInit, CallDeviceCount, CallVersion, CallSetDevice, CallGetDeviceProperties,
	CallDeviceCanAccessPeer, CallMemGetInfo,
}

// Provider serves device queries from a fixture file. The fixture is read by Init.
type Provider struct {
	path    string
	fixture *Fixture
	current int
	calls   map[string]int
}

func New(path string) *Provider {
	return &Provider{path: path, calls: map[string]int{}}
}

// NewFromFixture returns an initialized Provider serving f.
func NewFromFixture(f *Fixture) (*Provider, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	return &Provider{fixture: f, calls: map[string]int{}}, nil
}

// LoadFixture reads and validates a YAML fixture.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read fixture")
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var f Fixture
	if err := decoder.Decode(&f); err != nil {
		return nil, errors.Wrapf(err, "failed to parse fixture %s", path)
	}

	if err := f.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid fixture %s", path)
	}

	return &f, nil
}

func (f *Fixture) validate() error {
	if err := validateFailures(f.Failures); err != nil {
		return err
	}

	for i, d := range f.Devices {
		for _, peer := range d.PeerAccess {
			if peer < 0 || peer >= len(f.Devices) {
				return fmt.Errorf("device#%d: peer device#%d does not exist", i, peer)
			}
			if peer == i {
				return fmt.Errorf("device#%d: a device cannot be its own peer", i)
			}
		}
		if err := validateFailures(d.Failures); err != nil {
			return fmt.Errorf("device#%d: %w", i, err)
		}
	}

	return nil
}

func validateFailures(failures map[Call]Failure) error {
	for call, failure := range failures {
		if !slices.Contains(validCalls, call) {
			return fmt.Errorf("unknown call %q", call)
		}
		if failure.Times < 0 {
			return fmt.Errorf("%s: times must not be negative", call)
		}
	}

	return nil
}

// Init loads the fixture. The init failure, if any, is injected before the fixture is read
// so that retries can be exercised.
func (p *Provider) Init() error {
	if p.fixture != nil {
		return nil
	}

	f, err := LoadFixture(p.path)
	if err != nil {
		return err
	}

	if err := p.inject(f.Failures, CallInit, deviceruntime.NoDevice); err != nil {
		return err
	}

	slog.Info("Loaded device fixture",
		slog.String(logging.FileKey, p.path),
		slog.Int(logging.DeviceCountKey, len(f.Devices)))

	p.fixture = f

	return nil
}

func (p *Provider) Close() error {
	return nil
}

// inject returns the configured failure for call on device, if it still applies.
func (p *Provider) inject(failures map[Call]Failure, call Call, device int) error {
	failure, ok := failures[call]
	if !ok {
		return nil
	}

	key := fmt.Sprintf("%s/%d", call, device)
	p.calls[key]++
	if failure.Times > 0 && p.calls[key] > failure.Times {
		return nil
	}

	slog.Debug("Injecting failure",
		slog.String("call", string(call)),
		slog.Int(logging.DeviceKey, device),
		slog.Int("code", failure.Code))

	return failure.err()
}

func (p *Provider) device(index int) (*Device, error) {
	if p.fixture == nil {
		return nil, errors.New("fixture not loaded")
	}
	if index < 0 || index >= len(p.fixture.Devices) {
		return nil, deviceruntime.NewStatusError(101, "invalid device ordinal")
	}

	return &p.fixture.Devices[index], nil
}

func (p *Provider) DeviceCount() (int, error) {
	if p.fixture == nil {
		return 0, errors.New("fixture not loaded")
	}
	if err := p.inject(p.fixture.Failures, CallDeviceCount, deviceruntime.NoDevice); err != nil {
		return 0, err
	}

	return len(p.fixture.Devices), nil
}

func (p *Provider) Version() (string, error) {
	if p.fixture == nil {
		return "", errors.New("fixture not loaded")
	}
	if err := p.inject(p.fixture.Failures, CallVersion, deviceruntime.NoDevice); err != nil {
		return "", err
	}

	return p.fixture.DriverVersion, nil
}

func (p *Provider) SetDevice(index int) error {
	d, err := p.device(index)
	if err != nil {
		return err
	}
	if err := p.inject(d.Failures, CallSetDevice, index); err != nil {
		return err
	}
	p.current = index

	return nil
}

func (p *Provider) GetDeviceProperties(index int) (deviceinfo.Properties, error) {
	d, err := p.device(index)
	if err != nil {
		return deviceinfo.Properties{}, err
	}
	if err := p.inject(d.Failures, CallGetDeviceProperties, index); err != nil {
		return deviceinfo.Properties{}, err
	}

	return d.Properties, nil
}

func (p *Provider) DeviceCanAccessPeer(from, to int) (bool, error) {
	d, err := p.device(from)
	if err != nil {
		return false, err
	}
	if _, err := p.device(to); err != nil {
		return false, err
	}
	if err := p.inject(d.Failures, CallDeviceCanAccessPeer, from); err != nil {
		return false, err
	}

	return slices.Contains(d.PeerAccess, to), nil
}

func (p *Provider) MemGetInfo() (free, total uint64, err error) {
	d, err := p.device(p.current)
	if err != nil {
		return 0, 0, err
	}
	if err := p.inject(d.Failures, CallMemGetInfo, p.current); err != nil {
		return 0, 0, err
	}

	return d.Memory.Free, d.Memory.Total, nil
}
