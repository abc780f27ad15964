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

package deviceruntime

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
)

// UnknownCode is reported for failures that carry no runtime status code.
const UnknownCode = 999

// NoDevice marks a RuntimeError that is not tied to a single device.
const NoDevice = -1

var ErrStaleDevice = errors.New("device is no longer the active device")

// StatusError is a non-success status returned by the runtime behind a backend.
type StatusError struct {
	Code    int
	Message string
}

func NewStatusError(code int, message string) *StatusError {
	return &StatusError{Code: code, Message: message}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s (%d)", e.Message, e.Code)
}

// RuntimeError is a failed runtime query. File and Line locate the code that issued the query.
type RuntimeError struct {
	Call    string
	Device  int
	Code    int
	Message string
	File    string
	Line    int
	cause   error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("error: '%s'(%d) at %s:%d in %s", e.Message, e.Code, e.File, e.Line, e.Call)
}

func (e *RuntimeError) Unwrap() error {
	return e.cause
}

// newRuntimeError attributes err to the caller of the exported method that invoked it.
func newRuntimeError(call string, device int, err error) *RuntimeError {
	re := &RuntimeError{
		Call:    call,
		Device:  device,
		Code:    UnknownCode,
		Message: err.Error(),
		File:    "unknown",
		cause:   err,
	}

	var se *StatusError
	if errors.As(err, &se) {
		re.Code = se.Code
		re.Message = se.Message
	}

	if _, file, line, ok := runtime.Caller(2); ok {
		re.File = filepath.Base(file)
		re.Line = line
	}

	return re
}
