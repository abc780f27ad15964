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

package logging

import (
	"context"
	"log/slog"
	"maps"
	"strings"

	"github.com/sirupsen/logrus"
)

var _ slog.Handler = (*LogrusHandler)(nil)

// LogrusHandler is a slog.Handler that forwards records to a logrus Logger.
// Attribute groups are flattened into dotted field names.
type LogrusHandler struct {
	logger *logrus.Logger
	level  slog.Leveler
	fields logrus.Fields
	prefix string
}

// NewLogrusHandler creates a new LogrusHandler with the provided logrus.Logger.
func NewLogrusHandler(logger *logrus.Logger, opts *slog.HandlerOptions) *LogrusHandler {
	h := &LogrusHandler{
		logger: logger,
		level:  slog.LevelInfo,
		fields: logrus.Fields{},
	}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}

	return h
}

func (h *LogrusHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *LogrusHandler) Handle(_ context.Context, record slog.Record) error {
	fields := maps.Clone(h.fields)
	record.Attrs(func(attr slog.Attr) bool {
		addAttr(fields, h.prefix, attr)
		return true
	})

	h.logger.WithFields(fields).Log(toLogrusLevel(record.Level), record.Message)

	return nil
}

func (h *LogrusHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.fields = maps.Clone(h.fields)
	for _, attr := range attrs {
		addAttr(clone.fields, h.prefix, attr)
	}

	return &clone
}

func (h *LogrusHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."

	return &clone
}

func addAttr(fields logrus.Fields, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix = prefix + attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			addAttr(fields, groupPrefix, member)
		}
		return
	}

	key := strings.TrimSuffix(prefix+attr.Key, ".")
	fields[key] = attr.Value.Any()
}

func toLogrusLevel(level slog.Level) logrus.Level {
	switch {
	case level >= slog.LevelError:
		return logrus.ErrorLevel
	case level >= slog.LevelWarn:
		return logrus.WarnLevel
	case level >= slog.LevelInfo:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}
