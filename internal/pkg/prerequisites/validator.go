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
	"log/slog"
)

type rule interface {
	Validate() error
}

// Validate checks that the host can run the NVML backend. The first failed rule is returned.
func Validate() error {
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	slog.Debug("All prerequisites are satisfied.")

	return nil
}
