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

package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timewarp-nuru/nuruc/diag"
	"github.com/timewarp-nuru/nuruc/pattern"
)

// mustParse parses raw for semantic-validation tests; the pattern's
// lexical validity is not under test here, so parse errors are ignored
// and the best-effort tree (always returned by Parse) is used.
func mustParse(t *testing.T, raw string) *pattern.SyntaxTree {
	t.Helper()
	tree, _ := pattern.Parse(raw, diag.Span{})
	require.NotNil(t, tree)
	return tree
}

func TestValidate_ConsecutiveOptionalPositionals(t *testing.T) {
	tree := mustParse(t, "copy {src?} {dst?}")
	ds := pattern.Validate(tree, diag.Span{})
	require.NotEmpty(t, ds)
	assert.Equal(t, diag.CodeConsecutiveOptional, ds[0].ID)
	assert.Equal(t, diag.Error, ds[0].Severity)
}

func TestValidate_RequiredAfterOptionalIsWarning(t *testing.T) {
	tree := mustParse(t, "copy {src?} {dst}")
	ds := pattern.Validate(tree, diag.Span{})
	require.Len(t, ds, 1)
	assert.Equal(t, diag.CodeRequiredAfterOptional, ds[0].ID)
	assert.Equal(t, diag.Warning, ds[0].Severity)
}

func TestValidate_RequiredAfterCatchAllIsError(t *testing.T) {
	tree := mustParse(t, "copy {*rest} {dst}")
	ds := pattern.Validate(tree, diag.Span{})
	require.NotEmpty(t, ds)
	found := false
	for _, d := range ds {
		if d.ID == diag.CodeRequiredAfterCatchAll {
			found = true
			assert.Equal(t, diag.Error, d.Severity)
		}
	}
	assert.True(t, found)
}

func TestValidate_MultipleCatchAll(t *testing.T) {
	tree := mustParse(t, "copy {*a} {*b}")
	ds := pattern.Validate(tree, diag.Span{})
	require.NotEmpty(t, ds)
	assert.Equal(t, diag.CodeMultipleCatchAll, ds[0].ID)
}

func TestValidate_DuplicateOptionForms(t *testing.T) {
	tree := mustParse(t, "deploy {env} --force,-f --force")
	ds := pattern.Validate(tree, diag.Span{})
	require.NotEmpty(t, ds)
	found := false
	for _, d := range ds {
		if d.ID == diag.CodeDuplicateOptionForm {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidate_SeparatorAfterOptionIsError(t *testing.T) {
	tree := mustParse(t, "deploy {env} -- --force")
	ds := pattern.Validate(tree, diag.Span{})
	require.NotEmpty(t, ds)
	found := false
	for _, d := range ds {
		if d.ID == diag.CodeSeparatorBeforeOption {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidate_ValidPatternHasNoDiagnostics(t *testing.T) {
	tree := mustParse(t, "deploy {env} --force,-f --dry-run?")
	ds := pattern.Validate(tree, diag.Span{})
	assert.Empty(t, ds)
}
