// Copyright (c) 2024 Alexey Mayshev. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package chunkcache

import (
	"context"
	"log/slog"
)

// Logger is the interface used to get log output from the cache.
type Logger interface {
	// Debug logs a message at the debug level with key-value pairs.
	Debug(ctx context.Context, msg string, args ...any)
	// Warn logs a message at the warn level with an error.
	Warn(ctx context.Context, msg string, err error)
}

// NoopLogger discards all log output.
type NoopLogger struct{}

func (nl *NoopLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (nl *NoopLogger) Warn(ctx context.Context, msg string, err error)   {}

type defaultLogger struct {
	log *slog.Logger
}

func newDefaultLogger() *defaultLogger {
	return &defaultLogger{log: slog.Default()}
}

// NewSlogLogger returns a Logger writing to l.
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		panic("chunkcache: slog logger is nil")
	}
	return &defaultLogger{log: l}
}

func (dl *defaultLogger) Debug(ctx context.Context, msg string, args ...any) {
	dl.log.DebugContext(ctx, msg, args...)
}

func (dl *defaultLogger) Warn(ctx context.Context, msg string, err error) {
	dl.log.WarnContext(ctx, msg, slog.Any("err", err))
}
