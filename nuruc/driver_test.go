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

package nuruc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timewarp-nuru/nuruc/hostast"
	"github.com/timewarp-nuru/nuruc/nuruc"
)

func memberCall(recv hostast.Expr, method string, args ...hostast.Expr) hostast.Call {
	var fn hostast.Expr
	if recv == nil {
		fn = hostast.Ident{Name: method}
	} else {
		fn = hostast.MemberAccess{X: recv, Name: method}
	}
	return hostast.Call{Fn: fn, Args: args}
}

func str(s string) hostast.Literal {
	return hostast.Literal{Kind: hostast.LiteralString, Value: `"` + s + `"`}
}

func TestDriver_Compile_NoBuildSiteReturnsFatalError(t *testing.T) {
	d := nuruc.New()
	_, _, err := d.Compile(nuruc.Unit{Block: hostast.Block{}})
	require.Error(t, err)
}

func TestDriver_Compile_SimpleAppProducesOneResult(t *testing.T) {
	app := hostast.Ident{Name: "app"}
	block := hostast.Block{Stmts: []hostast.Stmt{
		hostast.LocalDecl{Name: "app", Init: memberCall(nil, "CreateBuilder")},
		hostast.ExprStmt{X: memberCall(app, "WithName", str("demo"))},
		hostast.ExprStmt{X: memberCall(
			memberCall(memberCall(app, "Map", str("deploy {env}")), "WithHandler",
				hostast.Lambda{Kind: hostast.LambdaBlock, Parameters: []hostast.LambdaParam{{Name: "env"}}}),
			"Done",
		)},
		hostast.ExprStmt{X: memberCall(app, "Build")},
		hostast.ExprStmt{X: memberCall(app, "RunAsync")},
	}}

	d := nuruc.New(nuruc.WithModule("DemoGenerated"))
	results, reporter, err := d.Compile(nuruc.Unit{Block: block})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, reporter.HasErrors())
	assert.Contains(t, results[0].Generated, "namespace DemoGenerated")
	assert.Contains(t, results[0].Generated, "deploy")
}

func TestLoadConfigFile_ParsesYAMLIntoOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nuruc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("module: Foo\ndebugDiagnostics: true\n"), 0o644))

	fc, err := nuruc.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Foo", fc.Module)
	assert.True(t, fc.DebugDiagnostics)
	assert.NotEmpty(t, fc.ToOptions())
}
