// Copyright 2026 The Nuru Authors
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

// Package nrlog is the compiler's ambient structured logger: a thin,
// functional-options wrapper over log/slog, grounded on
// logging.Logger's handler-type selection and Option pattern but
// trimmed to what a compile-time tool needs (no sampling, no HTTP
// middleware, no global registration) rather than a long-running
// service's log pipeline.
package nrlog

import (
	"io"
	"log/slog"
	"os"
)

// HandlerType selects the slog.Handler used to render log records.
type HandlerType string

const (
	// JSONHandler emits one structured JSON object per record.
	JSONHandler HandlerType = "json"
	// TextHandler emits slog's default key=value text format.
	TextHandler HandlerType = "text"
)

// Logger wraps a *slog.Logger. New binds no fields; callers add
// per-record context with With.
type Logger struct {
	base *slog.Logger
}

// Option configures a Logger, mirroring logging.Option's functional
// option shape.
type Option func(*config)

type config struct {
	handlerType HandlerType
	output      io.Writer
	level       slog.Level
	addSource   bool
}

// WithHandlerType selects JSON or text rendering. Default: TextHandler.
func WithHandlerType(h HandlerType) Option {
	return func(c *config) { c.handlerType = h }
}

// WithOutput sets the destination writer. Default: os.Stderr, so
// diagnostic logging never interleaves with generated-code output on
// stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.output = w }
}

// WithLevel sets the minimum level a record must meet to be emitted.
// Default: slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(c *config) { c.level = level }
}

// WithSource annotates each record with its call site file:line,
// useful when diagnosing the compiler itself, not the compiled app.
func WithSource(add bool) Option {
	return func(c *config) { c.addSource = add }
}

// New constructs a Logger from the given options.
func New(opts ...Option) *Logger {
	c := &config{
		handlerType: TextHandler,
		output:      os.Stderr,
		level:       slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(c)
	}

	handlerOpts := &slog.HandlerOptions{
		AddSource: c.addSource,
		Level:     c.level,
	}

	var h slog.Handler
	if c.handlerType == JSONHandler {
		h = slog.NewJSONHandler(c.output, handlerOpts)
	} else {
		h = slog.NewTextHandler(c.output, handlerOpts)
	}

	return &Logger{base: slog.New(h)}
}

// With returns a Logger that prepends the given attributes to every
// subsequent record, the way a stage-scoped sub-logger is derived for
// one pipeline phase ("stage", "pattern-lexer").
func (l *Logger) With(args ...any) *Logger {
	return &Logger{base: l.base.With(args...)}
}

func (l *Logger) Debug(msg string, args ...any) { l.base.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.base.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.base.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.base.Error(msg, args...) }

// Slog exposes the underlying *slog.Logger for callers that need the
// full slog API (e.g. PrintCtx-style context-aware logging elsewhere
// in the compiler).
func (l *Logger) Slog() *slog.Logger { return l.base }
