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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timewarp-nuru/nuruc/combiner"
	"github.com/timewarp-nuru/nuruc/diag"
	"github.com/timewarp-nuru/nuruc/emit"
	"github.com/timewarp-nuru/nuruc/hostast"
	"github.com/timewarp-nuru/nuruc/ir"
)

func sleepRoute() ir.RouteDefinition {
	route := ir.RouteDefinition{Pattern: "sleep {duration:int}", Description: "sleep for N seconds"}
	route.Recompute([]ir.Segment{
		{Kind: ir.SegmentLiteral, Value: "sleep"},
		{Kind: ir.SegmentParameter, Name: "duration", TypeConstraint: "int"},
	})
	route.Handler = &ir.HandlerDefinition{
		Kind: ir.HandlerBlockLambda,
		Parameters: []ir.ParameterBinding{
			{HandlerParameterName: "duration", ParameterTypeName: "int"},
		},
		Body: hostast.Block{
			Stmts: []hostast.Stmt{
				hostast.ExprStmt{X: hostast.Call{
					Fn:   hostast.MemberAccess{X: hostast.Ident{Name: "Terminal"}, Name: "WriteLine"},
					Args: []hostast.Expr{hostast.Literal{Kind: hostast.LiteralString, Value: `"slept"`}},
				}},
				hostast.ReturnStmt{Result: hostast.Literal{Kind: hostast.LiteralNumber, Value: "0"}},
			},
		},
	}
	return route
}

func TestGenerate_InvokeRouteRendersHandlerBodyAndThreadsParameters(t *testing.T) {
	route := sleepRoute()
	model := &ir.AppModel{
		EntryPoints: map[string]ir.EntryPoint{"RunAsync": {MethodName: "RunAsync"}},
		Routes:      []ir.RouteDefinition{route},
	}

	reporter := diag.NewReporter(false)
	gm := combiner.Combine(model, reporter)
	require.False(t, reporter.HasErrors())

	out := emit.Generate(gm, emit.Options{})

	assert.NotContains(t, out, "is preserved from source and inlined here")
	assert.Contains(t, out, "private static async System.Threading.Tasks.Task<int> InvokeRoute_0(int duration)")
	assert.Contains(t, out, `Terminal.WriteLine("slept");`)
	assert.Contains(t, out, "return InvokeRoute_0(duration);")
}

func TestGenerate_PerRouteHelpCheckPrecedesInvocation(t *testing.T) {
	route := sleepRoute()
	model := &ir.AppModel{
		EntryPoints: map[string]ir.EntryPoint{"RunAsync": {MethodName: "RunAsync"}},
		Routes:      []ir.RouteDefinition{route},
	}

	reporter := diag.NewReporter(false)
	gm := combiner.Combine(model, reporter)
	require.False(t, reporter.HasErrors())

	out := emit.Generate(gm, emit.Options{})

	helpIdx := indexOf(out, `routeArgs[routeArgs.Length - 1] == "--help"`)
	invokeIdx := indexOf(out, "return InvokeRoute_0(duration);")
	require.NotEqual(t, -1, helpIdx, "expected a per-route --help check")
	require.NotEqual(t, -1, invokeIdx, "expected the handler invocation")
	assert.Less(t, helpIdx, invokeIdx, "per-route help check must precede the handler invocation")
}

func TestGenerate_BehaviorChainWrapsHandlerInvocation(t *testing.T) {
	route := sleepRoute()
	model := &ir.AppModel{
		EntryPoints: map[string]ir.EntryPoint{"RunAsync": {MethodName: "RunAsync"}},
		Routes:      []ir.RouteDefinition{route},
		Behaviors:   []ir.Behavior{{BehaviorType: "LoggingBehavior", Order: 0}},
	}

	reporter := diag.NewReporter(false)
	gm := combiner.Combine(model, reporter)
	require.False(t, reporter.HasErrors())

	out := emit.Generate(gm, emit.Options{})

	assert.Contains(t, out, "var __behavior_0 = new LoggingBehavior();")
	assert.Contains(t, out, "return await ((() => __behavior_0.Handle(handler)))();")
}

func TestGenerate_MethodReferenceHandlerEmitsDirectCall(t *testing.T) {
	route := ir.RouteDefinition{Pattern: "status", Description: "show status"}
	route.Recompute([]ir.Segment{{Kind: ir.SegmentLiteral, Value: "status"}})
	route.Handler = &ir.HandlerDefinition{
		Kind:           ir.HandlerMethodReference,
		MethodReceiver: "Handlers",
		MethodName:     "Status",
	}

	model := &ir.AppModel{
		EntryPoints: map[string]ir.EntryPoint{"RunAsync": {MethodName: "RunAsync"}},
		Routes:      []ir.RouteDefinition{route},
	}

	reporter := diag.NewReporter(false)
	gm := combiner.Combine(model, reporter)
	require.False(t, reporter.HasErrors())

	out := emit.Generate(gm, emit.Options{})

	assert.Contains(t, out, "return Handlers.Status();")
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
