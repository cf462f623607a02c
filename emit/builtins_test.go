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

package emit_test

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/timewarp-nuru/nuruc/combiner"
	"github.com/timewarp-nuru/nuruc/diag"
	"github.com/timewarp-nuru/nuruc/emit"
	"github.com/timewarp-nuru/nuruc/ir"
)

// capabilitiesPayload pulls the JSON string literal written by
// PrintCapabilities_0 out of the generated text and unquotes it back to
// raw JSON, so tests can assert against it with gjson path queries
// instead of re-deriving the whole capabilitiesDoc struct shape.
var capabilitiesLiteral = regexp.MustCompile(`PrintCapabilities_0[\s\S]*?terminal\.WriteLine\(("(?:[^"\\]|\\.)*")\);`)

func capabilitiesPayload(t *testing.T, generated string) string {
	t.Helper()
	m := capabilitiesLiteral.FindStringSubmatch(generated)
	require.Len(t, m, 2, "PrintCapabilities_0 literal not found in generated output")
	raw, err := strconv.Unquote(m[1])
	require.NoError(t, err)
	return raw
}

func TestWriteCapabilities_DocumentShapeMatchesRoutes(t *testing.T) {
	route := ir.RouteDefinition{Pattern: "deploy {env}", Description: "deploy an environment", MessageType: ir.MessageCommand}
	route.Recompute([]ir.Segment{
		{Kind: ir.SegmentLiteral, Value: "deploy"},
		{Kind: ir.SegmentParameter, Name: "env", TypeConstraint: "string"},
	})

	model := &ir.AppModel{
		AppName:     "demo",
		AppVersion:  "2.3.1",
		EntryPoints: map[string]ir.EntryPoint{"RunAsync": {MethodName: "RunAsync"}},
		Routes:      []ir.RouteDefinition{route},
	}
	reporter := diag.NewReporter(false)
	gm := combiner.Combine(model, reporter)
	require.False(t, reporter.HasErrors())

	out := emit.Generate(gm, emit.Options{})
	payload := capabilitiesPayload(t, out)

	require.True(t, gjson.Valid(payload), "capabilities payload is not valid JSON: %s", payload)
	require.Equal(t, "demo", gjson.Get(payload, "name").String())
	require.Equal(t, "2.3.1", gjson.Get(payload, "version").String())
	require.Equal(t, "deploy {env}", gjson.Get(payload, "commands.0.pattern").String())
	require.Equal(t, "command", gjson.Get(payload, "commands.0.messageType").String())
	require.Equal(t, "env", gjson.Get(payload, "commands.0.parameters.0.name").String())
	require.True(t, gjson.Get(payload, "commands.0.parameters.0.required").Bool())
}
