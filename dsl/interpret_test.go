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

package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timewarp-nuru/nuruc/diag"
	"github.com/timewarp-nuru/nuruc/dsl"
	"github.com/timewarp-nuru/nuruc/hostast"
	"github.com/timewarp-nuru/nuruc/ir"
)

func str(s string) hostast.Literal {
	return hostast.Literal{Kind: hostast.LiteralString, Value: `"` + s + `"`}
}

func ident(name string) hostast.Ident { return hostast.Ident{Name: name} }

func call(recv hostast.Expr, method string, typeArgs []string, args ...hostast.Expr) hostast.Call {
	var fn hostast.Expr
	if recv == nil {
		fn = hostast.Ident{Name: method}
	} else {
		fn = hostast.MemberAccess{X: recv, Name: method}
	}
	return hostast.Call{Fn: fn, TypeArgs: typeArgs, Args: args}
}

func TestInterpret_SimpleAppWithOneRoute(t *testing.T) {
	// var app = CreateBuilder();
	// app.WithName("demo");
	// app.Map("deploy {env}").WithHandler((env) => {}).AsCommand().Done();
	// app.Build();
	// app.RunAsync();
	create := call(nil, "CreateBuilder", nil)
	block := hostast.Block{Stmts: []hostast.Stmt{
		hostast.LocalDecl{Name: "app", Init: create},
		hostast.ExprStmt{X: call(ident("app"), "WithName", nil, str("demo"))},
		hostast.ExprStmt{X: call(
			call(
				call(
					call(ident("app"), "Map", nil, str("deploy {env}")),
					"WithHandler", nil, hostast.Lambda{
						Kind:       hostast.LambdaBlock,
						Parameters: []hostast.LambdaParam{{Name: "env", Type: "string"}},
					},
				),
				"AsCommand", nil,
			),
			"Done", nil,
		)},
		hostast.ExprStmt{X: call(ident("app"), "Build", nil)},
		hostast.ExprStmt{X: call(ident("app"), "RunAsync", nil)},
	}}

	reporter := diag.NewReporter(false)
	models := dsl.Interpret(block, reporter)

	require.Len(t, models, 1)
	m := models[0]
	assert.Equal(t, "demo", m.AppName)
	require.Len(t, m.Routes, 1)
	assert.Equal(t, "deploy {env}", m.Routes[0].Pattern)
	assert.Equal(t, ir.MessageCommand, m.Routes[0].MessageType)
	require.NotNil(t, m.Routes[0].Handler)
	assert.Equal(t, ir.HandlerBlockLambda, m.Routes[0].Handler.Kind)
	_, hasRun := m.EntryPoints["RunAsync"]
	assert.True(t, hasRun)
	assert.False(t, reporter.HasErrors())
}

func TestInterpret_ReassigningOpenBuilderReportsDiagnostic(t *testing.T) {
	block := hostast.Block{Stmts: []hostast.Stmt{
		hostast.LocalDecl{Name: "app", Init: call(nil, "CreateBuilder", nil)},
		hostast.LocalDecl{Name: "app", Init: call(nil, "CreateBuilder", nil)},
	}}

	reporter := diag.NewReporter(false)
	dsl.Interpret(block, reporter)

	ds := reporter.Diagnostics()
	require.NotEmpty(t, ds)
	assert.Equal(t, diag.CodeBuilderReassigned, ds[0].ID)
}

func TestInterpret_UnknownMethodReportsWarning(t *testing.T) {
	block := hostast.Block{Stmts: []hostast.Stmt{
		hostast.LocalDecl{Name: "app", Init: call(nil, "CreateBuilder", nil)},
		hostast.ExprStmt{X: call(ident("app"), "FrobnicateTheThing", nil)},
	}}

	reporter := diag.NewReporter(false)
	dsl.Interpret(block, reporter)

	ds := reporter.Diagnostics()
	require.NotEmpty(t, ds)
	assert.Equal(t, diag.CodeUnknownBuilderMethod, ds[0].ID)
	assert.Equal(t, diag.Warning, ds[0].Severity)
}

func TestInterpret_ConfigureServicesExtractsRegistrations(t *testing.T) {
	cfgLambda := hostast.Lambda{
		Kind:       hostast.LambdaBlock,
		Parameters: []hostast.LambdaParam{{Name: "services", Type: "IServiceCollection"}},
		Body: hostast.Block{Stmts: []hostast.Stmt{
			hostast.ExprStmt{X: call(ident("services"), "AddSingleton", []string{"IClock", "SystemClock"})},
			hostast.ExprStmt{X: call(ident("services"), "AddHttpClient", []string{"IDeployClient"})},
		}},
	}

	block := hostast.Block{Stmts: []hostast.Stmt{
		hostast.LocalDecl{Name: "app", Init: call(nil, "CreateBuilder", nil)},
		hostast.ExprStmt{X: call(ident("app"), "ConfigureServices", nil, cfgLambda)},
	}}

	reporter := diag.NewReporter(false)
	models := dsl.Interpret(block, reporter)

	require.Len(t, models, 1)
	require.Len(t, models[0].Services, 1)
	assert.Equal(t, "IClock", models[0].Services[0].ServiceType)
	assert.Equal(t, "SystemClock", models[0].Services[0].ImplementationType)
	require.Len(t, models[0].HTTPClients, 1)
}
