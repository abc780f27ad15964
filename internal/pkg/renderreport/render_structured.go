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
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/device-query/internal/pkg/enumerator"
)

// Report is the document emitted by the JSON and YAML formats.
type Report struct {
	Header  Header                    `json:"header" yaml:"header"`
	Devices []enumerator.DeviceReport `json:"devices" yaml:"devices"`
}

// structuredWriter buffers the whole report and encodes it on Close, since neither JSON nor
// YAML documents can be emitted one device at a time.
type structuredWriter struct {
	format Format
	output io.Writer
	report Report
	closed bool
}

func (s *structuredWriter) WriteHeader(h Header) error {
	s.report.Header = h
	return nil
}

func (s *structuredWriter) WriteDevice(report enumerator.DeviceReport) error {
	s.report.Devices = append(s.report.Devices, report)
	return nil
}

func (s *structuredWriter) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if s.report.Devices == nil {
		s.report.Devices = []enumerator.DeviceReport{}
	}

	switch s.format {
	case FormatJSON:
		return s.serializeJSON()
	case FormatYAML:
		return s.serializeYAML()
	default:
		return fmt.Errorf("unsupported format: %s", s.format)
	}
}

func (s *structuredWriter) serializeJSON() error {
	encoder := json.NewEncoder(s.output)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s.report); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

func (s *structuredWriter) serializeYAML() error {
	encoder := yaml.NewEncoder(s.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(s.report); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	return nil
}
