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

package nrlog

import "github.com/timewarp-nuru/nuruc/diag"

// LogDiagnostic emits a diag.Diagnostic at the slog level matching its
// severity, with ID/span fields attached structurally rather than
// interpolated into the message, the way logging.Logger's handlers
// prefer structured fields over formatted strings.
func (l *Logger) LogDiagnostic(d diag.Diagnostic) {
	args := []any{
		"code", d.ID,
		"file", d.Span.File,
		"line", d.Span.Line,
		"column", d.Span.Column,
	}
	switch d.Severity {
	case diag.Error:
		l.base.Error(d.Message, args...)
	case diag.Warning:
		l.base.Warn(d.Message, args...)
	default:
		l.base.Info(d.Message, args...)
	}
}
