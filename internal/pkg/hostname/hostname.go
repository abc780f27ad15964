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

package hostname

import (
	osinterface "github.com/NVIDIA/device-query/internal/pkg/os"
)

// NodeNameEnv overrides the reported hostname, e.g. with the Kubernetes node name.
const NodeNameEnv = "NODE_NAME"

var os osinterface.OS = osinterface.RealOS{}

// Get returns the name of the host whose devices are reported.
func Get() (string, error) {
	if nodeName := os.Getenv(NodeNameEnv); nodeName != "" {
		return nodeName, nil
	}

	return os.Hostname()
}
