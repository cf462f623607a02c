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

package diag

import (
	"sort"
	"sync"
)

// Reporter collects diagnostics across compiler stages. It is write-append
// and safe for concurrent use: stage 4 (DSL interpretation) and stage 5
// (attribute extraction) run in parallel per compilation unit and both
// report into the same Reporter (§5).
type Reporter struct {
	mu               sync.Mutex
	diagnostics      []Diagnostic
	debugDiagnostics bool
}

// NewReporter creates a Reporter. debugDiagnostics mirrors §4.8: Info
// severity diagnostics are suppressed unless the caller opts in.
func NewReporter(debugDiagnostics bool) *Reporter {
	return &Reporter{debugDiagnostics: debugDiagnostics}
}

// Report records a Diagnostic, dropping Info-severity ones unless debug
// diagnostics were requested.
func (r *Reporter) Report(d Diagnostic) {
	if d.Severity == Info && !r.debugDiagnostics {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diagnostics = append(r.diagnostics, d)
}

// ReportAll records each Diagnostic in ds.
func (r *Reporter) ReportAll(ds []Diagnostic) {
	for _, d := range ds {
		r.Report(d)
	}
}

// Diagnostics returns all reported diagnostics ordered by source span
// per §5's ordering guarantee. The returned slice is a copy.
func (r *Reporter) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.diagnostics))
	copy(out, r.diagnostics)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Span.Less(out[j].Span)
	})
	return out
}

// HasErrors reports whether any Error-severity diagnostic was recorded.
func (r *Reporter) HasErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.diagnostics {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Errors returns only the Error-severity diagnostics, span-ordered.
func (r *Reporter) Errors() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics() {
		if d.Severity == Error {
			out = append(out, d)
		}
	}
	return out
}
