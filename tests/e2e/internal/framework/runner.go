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

package framework

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/onsi/gomega/gexec"
)

const mainPackage = "github.com/NVIDIA/device-query/cmd/device-query"

// DeviceQuery runs the device-query binary as a separate process.
type DeviceQuery struct {
	binary string
	built  bool
	env    []string
}

// NewDeviceQuery uses binary when set, otherwise compiles the command.
func NewDeviceQuery(binary string) (*DeviceQuery, error) {
	if binary != "" {
		path, err := ResolvePath(binary)
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("device-query binary is not available: %w", err)
		}
		return &DeviceQuery{binary: path}, nil
	}

	path, err := gexec.Build(mainPackage)
	if err != nil {
		return nil, fmt.Errorf("cannot build %s: %w", mainPackage, err)
	}

	return &DeviceQuery{binary: path, built: true}, nil
}

// WithEnv returns a copy that adds environment variables, in KEY=VALUE form, to every run.
func (d *DeviceQuery) WithEnv(env ...string) *DeviceQuery {
	c := *d
	c.env = append(append([]string{}, d.env...), env...)
	return &c
}

// Start launches the binary; stderr is also copied to logs.
func (d *DeviceQuery) Start(logs io.Writer, args ...string) (*gexec.Session, error) {
	cmd := exec.Command(d.binary, args...)
	cmd.Env = append(os.Environ(), d.env...)

	return gexec.Start(cmd, nil, logs)
}

// Cleanup removes the compiled binary, if any.
func (d *DeviceQuery) Cleanup() {
	if d.built {
		gexec.CleanupBuildArtifacts()
	}
}
