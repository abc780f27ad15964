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

package prerequisites

import (
	debugelf "debug/elf"
	"fmt"
	"log/slog"
	"strings"

	"github.com/NVIDIA/device-query/internal/pkg/logging"
)

const (
	libNVML       = "libnvidia-ml.so.1"
	procSelfExe   = "/proc/self/exe"
	ldconfig      = "ldconfig"
	ldconfigParam = "-p"
)

type nvmlLibExistsRule struct{}

// Validate checks if libnvidia-ml.so.1 is in the linker cache and matches the machine architecture.
func (c nvmlLibExistsRule) Validate() error {
	ldconfigPath, err := c.ldconfigPath()
	if err != nil {
		return err
	}

	// Get list of shared libraries. See: man ldconfig
	out, err := exec.Command(ldconfigPath, ldconfigParam).Output()
	if err != nil {
		return fmt.Errorf("could not list the linker cache with %s: %w", ldconfigPath, err)
	}

	var (
		selfMachine debugelf.Machine
		mismatch    error
	)
	// Multi-arch hosts list one entry per architecture; any entry matching this binary will do.
	for _, match := range rxLDCacheEntry.FindAllSubmatch(out, -1) {
		libName := strings.TrimSpace(string(match[1]))
		if libName != libNVML {
			continue
		}

		if selfMachine == debugelf.EM_NONE {
			selfMachine, err = elf.Machine(procSelfExe)
			if err != nil {
				return fmt.Errorf("could not open %s: %w", procSelfExe, err)
			}
		}

		libPath := strings.TrimSpace(string(match[2]))
		libMachine, err := elf.Machine(libPath)
		if err != nil {
			// The linker cache can still list the library after the driver was removed.
			slog.Warn("Linker cache entry is stale",
				slog.String(logging.LibraryKey, libPath),
				slog.String(logging.ErrorKey, err.Error()))
			continue
		}

		if selfMachine != libMachine {
			slog.Debug("Skipping NVML library built for another architecture",
				slog.String(logging.LibraryKey, libPath),
				slog.String(logging.MachineKey, libMachine.String()))
			if mismatch == nil {
				mismatch = fmt.Errorf("the %s library architecture mismatch with the system; wanted: %s, received: %s",
					libNVML, selfMachine, libMachine)
			}
			continue
		}

		slog.Debug("Found NVML library", slog.String(logging.LibraryKey, libPath))

		return nil
	}

	if mismatch != nil {
		return mismatch
	}

	return errLibNVMLNotFound
}

// ldconfigPath prefers ldconfig.real, since on Ubuntu ldconfig is a wrapper around it.
func (c nvmlLibExistsRule) ldconfigPath() (string, error) {
	for _, candidate := range []string{"/sbin/" + ldconfig + ".real", "/sbin/" + ldconfig} {
		_, err := os.Stat(candidate)
		if err == nil {
			return candidate, nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
	}

	path, err := exec.LookPath(ldconfig)
	if err != nil {
		return "", fmt.Errorf("%s was not found: %w", ldconfig, err)
	}

	return path, nil
}
