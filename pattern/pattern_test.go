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

func TestParse_CanonicalRoundTrip(t *testing.T) {
	cases := []string{
		"deploy {env}",
		"sleep {seconds:int?}",
		"git checkout -- {file}",
		"deploy {env} --force",
		"deploy {env} --dry-run?",
		"backup {*files}",
		"build {target} --Key",
		"user create {name}",
		"users list",
		"push --tag,-t {value:string}",
	}

	for _, raw := range cases {
		raw := raw
		t.Run(raw, func(t *testing.T) {
			got, err := pattern.Canonical(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, got)
		})
	}
}

func TestParse_CaseNormalizesTypeConstraint(t *testing.T) {
	tree, err := pattern.Parse("sleep {seconds:INT}", diag.Span{})
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 2)
	assert.Equal(t, "int", tree.Nodes[1].TypeConstraint)
	assert.Equal(t, "sleep {seconds:int}", tree.Display())
}

func TestParse_OptionWithValueAndShortForm(t *testing.T) {
	tree, err := pattern.Parse("push --tag,-t {value:string}", diag.Span{})
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 2)
	opt := tree.Nodes[1]
	assert.Equal(t, pattern.NodeOption, opt.Kind)
	assert.Equal(t, "tag", opt.LongForm)
	assert.Equal(t, "t", opt.ShortForm)
	assert.True(t, opt.ExpectsValue)
	assert.Equal(t, "value", opt.ValueName)
	assert.Equal(t, "string", opt.ValueType)
}

func TestParse_EndOfOptionsSeparator(t *testing.T) {
	tree, err := pattern.Parse("git checkout -- {file}", diag.Span{})
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 4)
	assert.Equal(t, pattern.NodeSeparator, tree.Nodes[2].Kind)
	assert.Equal(t, pattern.NodeParameter, tree.Nodes[3].Kind)
	assert.Equal(t, "file", tree.Nodes[3].Name)
}

func TestParse_CatchAll(t *testing.T) {
	tree, err := pattern.Parse("backup {*files}", diag.Span{})
	require.NoError(t, err)
	p := tree.Nodes[1]
	assert.True(t, p.IsCatchAll)
	assert.False(t, p.IsOptional)
	assert.Equal(t, "files", p.Name)
}

func TestParse_MalformedBrace(t *testing.T) {
	_, err := pattern.Parse("deploy {env", diag.Span{})
	require.Error(t, err)
	var perr *pattern.ParseError
	require.ErrorAs(t, err, &perr)
	require.NotEmpty(t, perr.Diagnostics)
	assert.Equal(t, diag.CodeMalformedBrace, perr.Diagnostics[0].ID)
}

func TestParse_InvalidShortForm(t *testing.T) {
	_, err := pattern.Parse("deploy {env} --force,-xy", diag.Span{})
	require.Error(t, err)
}
