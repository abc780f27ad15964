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
	"fmt"
	"io"
	"runtime"

	"github.com/prometheus/common/version"

	"github.com/NVIDIA/device-query/internal/pkg/enumerator"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func (f Format) IsUnknown() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return false
	default:
		return true
	}
}

func SupportedFormats() []string {
	return []string{
		string(FormatText),
		string(FormatJSON),
		string(FormatYAML),
	}
}

// Header identifies the toolchain that built the tool and the runtime it queried. Host is only
// rendered by the structured formats.
type Header struct {
	Compiler       string `json:"compiler" yaml:"compiler"`
	Version        string `json:"version" yaml:"version"`
	Runtime        string `json:"runtime,omitempty" yaml:"runtime,omitempty"`
	RuntimeVersion string `json:"runtimeVersion,omitempty" yaml:"runtimeVersion,omitempty"`
	Host           string `json:"host,omitempty" yaml:"host,omitempty"`
}

// NewHeader describes the running binary together with the named backend.
func NewHeader(backend, backendVersion string) Header {
	return Header{
		Compiler:       runtime.Compiler,
		Version:        version.GoVersion,
		Runtime:        backend,
		RuntimeVersion: backendVersion,
	}
}

func (h Header) String() string {
	s := fmt.Sprintf("compiler: %s version=%s", h.Compiler, h.Version)
	if h.Runtime != "" {
		s += ", runtime: " + h.Runtime
		if h.RuntimeVersion != "" {
			s += " driver=" + h.RuntimeVersion
		}
	}

	return s
}

// Writer renders a report incrementally: the header first, then one device at a time.
// Close must be called once all devices are written, also after a failed enumeration.
type Writer interface {
	enumerator.Sink
	WriteHeader(h Header) error
	Close() error
}

func NewWriter(format Format, output io.Writer) (Writer, error) {
	switch format {
	case FormatText:
		return &textWriter{output: output}, nil
	case FormatJSON, FormatYAML:
		return &structuredWriter{format: format, output: output}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
