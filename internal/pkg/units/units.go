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

package units

const (
	bytesPerKilobyte = 1024
	bytesPerGigabyte = 1024 * 1024 * 1024
)

// ToKilobytes converts a byte count to kilobytes, where 1 KB is 1024 bytes.
func ToKilobytes(bytes uint64) float64 {
	return float64(bytes) / bytesPerKilobyte
}

// ToGigabytes converts a byte count to gigabytes, where 1 GB is 1024^3 bytes.
func ToGigabytes(bytes uint64) float64 {
	return float64(bytes) / bytesPerGigabyte
}
