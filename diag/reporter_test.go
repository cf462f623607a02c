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

package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timewarp-nuru/nuruc/diag"
)

func TestReporter_OrdersBySpan(t *testing.T) {
	r := diag.NewReporter(false)
	r.Report(diag.Errorf(diag.CodeDuplicateRoute, diag.Span{File: "b.cs", Line: 2, Column: 1}, "dup"))
	r.Report(diag.Errorf(diag.CodeDuplicateRoute, diag.Span{File: "a.cs", Line: 9, Column: 1}, "dup"))
	r.Report(diag.Errorf(diag.CodeDuplicateRoute, diag.Span{File: "a.cs", Line: 1, Column: 5}, "dup"))

	got := r.Diagnostics()
	require.Len(t, got, 3)
	assert.Equal(t, "a.cs", got[0].Span.File)
	assert.Equal(t, 1, got[0].Span.Line)
	assert.Equal(t, "a.cs", got[1].Span.File)
	assert.Equal(t, 9, got[1].Span.Line)
	assert.Equal(t, "b.cs", got[2].Span.File)
}

func TestReporter_SuppressesInfoByDefault(t *testing.T) {
	r := diag.NewReporter(false)
	r.Report(diag.Infof(diag.CodeUnknownBuilderMethod, diag.Span{}, "fyi"))
	assert.Empty(t, r.Diagnostics())

	r2 := diag.NewReporter(true)
	r2.Report(diag.Infof(diag.CodeUnknownBuilderMethod, diag.Span{}, "fyi"))
	assert.Len(t, r2.Diagnostics(), 1)
}

func TestReporter_HasErrors(t *testing.T) {
	r := diag.NewReporter(false)
	assert.False(t, r.HasErrors())
	r.Report(diag.Warnf(diag.CodeOverlappingRoutes, diag.Span{}, "overlap"))
	assert.False(t, r.HasErrors())
	r.Report(diag.Errorf(diag.CodeDuplicateRoute, diag.Span{}, "dup"))
	assert.True(t, r.HasErrors())
	require.Len(t, r.Errors(), 1)
}
