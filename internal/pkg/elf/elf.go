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

package elf

import (
	"debug/elf"
)

//go:generate go run -v go.uber.org/mock/mockgen  -destination=../../mocks/pkg/elf/mock_elf.go -package=elf -copyright_file=../../../hack/header.txt . ELF
type ELF interface {
	// Machine returns the target architecture recorded in the ELF header of the named file.
	Machine(name string) (elf.Machine, error)
}

var _ ELF = (*RealELF)(nil)

type RealELF struct{}

func (r RealELF) Machine(name string) (elf.Machine, error) {
	f, err := elf.Open(name)
	if err != nil {
		return elf.EM_NONE, err
	}
	defer f.Close()

	return f.Machine, nil
}
