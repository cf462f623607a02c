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

// Package diag defines the diagnostic reporter used by every compiler
// stage (pattern parsing, semantic validation, the DSL interpreter, the
// combiner, and the emitter). Diagnostics are structured values, never
// bare Go errors, so that a single bad route never aborts the rest of the
// compilation — only the offending route is dropped.
package diag

import (
	"fmt"

	"github.com/google/uuid"
)

// Severity classifies how a Diagnostic affects the build.
type Severity int

const (
	// Info is a non-blocking observation, suppressed unless debug
	// diagnostics are enabled.
	Info Severity = iota
	// Warning does not fail the build but is always surfaced.
	Warning
	// Error fails the build; the offending route or app is dropped from
	// emission but the rest of the compilation continues.
	Error
)

// String renders the severity the way build tools print it.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Span locates a Diagnostic in host source. Line and Column are 1-based;
// a Span with File == "" is synthetic (e.g. produced by the combiner from
// two merged Spans) and is still ordered by File/Line/Column for stability.
type Span struct {
	File        string
	Line        int
	Column      int
	EndLine     int
	EndColumn   int
}

// String renders "file:line:col".
func (s Span) String() string {
	if s.File == "" {
		return fmt.Sprintf("%d:%d", s.Line, s.Column)
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// Less orders two Spans by File, then Line, then Column, the ordering
// §5 requires ("Diagnostics are reported in source-span order per file").
func (s Span) Less(o Span) bool {
	if s.File != o.File {
		return s.File < o.File
	}
	if s.Line != o.Line {
		return s.Line < o.Line
	}
	return s.Column < o.Column
}

// Diagnostic is one structured finding produced by a compiler stage.
type Diagnostic struct {
	ID            string // e.g. "NURU_R001"
	Severity      Severity
	Message       string
	Span          Span
	CorrelationID uuid.UUID // random ID minted by New for each constructed Diagnostic
}

// Error implements the error interface so a Diagnostic can be returned
// from helpers that still want a plain error value (e.g. in tests).
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s: %s", d.Severity, d.ID, d.Span, d.Message)
}

// New constructs a Diagnostic.
func New(id string, sev Severity, span Span, format string, args ...any) Diagnostic {
	return Diagnostic{
		ID:            id,
		Severity:      sev,
		Message:       fmt.Sprintf(format, args...),
		Span:          span,
		CorrelationID: uuid.New(),
	}
}

// Errorf builds an Error-severity Diagnostic.
func Errorf(id string, span Span, format string, args ...any) Diagnostic {
	return New(id, Error, span, format, args...)
}

// Warnf builds a Warning-severity Diagnostic.
func Warnf(id string, span Span, format string, args ...any) Diagnostic {
	return New(id, Warning, span, format, args...)
}

// Infof builds an Info-severity Diagnostic.
func Infof(id string, span Span, format string, args ...any) Diagnostic {
	return New(id, Info, span, format, args...)
}
