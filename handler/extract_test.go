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

package handler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timewarp-nuru/nuruc/diag"
	"github.com/timewarp-nuru/nuruc/handler"
	"github.com/timewarp-nuru/nuruc/hostast"
	"github.com/timewarp-nuru/nuruc/ir"
)

func TestExtract_ExprLambdaWithNoCaptureIsClean(t *testing.T) {
	lambda := hostast.Lambda{
		Kind:       hostast.LambdaExpr,
		Parameters: []hostast.LambdaParam{{Name: "env", Type: "string"}},
		Expr:       hostast.Ident{Name: "env"},
	}
	r := diag.NewReporter(false)
	def := handler.Extract(lambda, map[string]bool{}, r)

	require.NotNil(t, def)
	assert.Equal(t, ir.HandlerLambda, def.Kind)
	assert.False(t, def.HasClosureCapture)
	assert.Empty(t, r.Diagnostics())
}

func TestExtract_BlockLambdaCapturingEnclosingLocalReportsClosureCapture(t *testing.T) {
	lambda := hostast.Lambda{
		Kind:       hostast.LambdaBlock,
		Parameters: []hostast.LambdaParam{{Name: "env", Type: "string"}},
		Body: hostast.Block{Stmts: []hostast.Stmt{
			hostast.ReturnStmt{Result: hostast.Ident{Name: "logger"}},
		}},
	}
	r := diag.NewReporter(false)
	def := handler.Extract(lambda, map[string]bool{"logger": true}, r)

	require.NotNil(t, def)
	assert.True(t, def.HasClosureCapture)
	require.NotEmpty(t, r.Errors())
	assert.Equal(t, diag.CodeClosureCapture, r.Errors()[0].ID)
}

func TestExtract_NullConditionalMemberAccessOnCapturedLocalStillFlagged(t *testing.T) {
	lambda := hostast.Lambda{
		Kind: hostast.LambdaExpr,
		Expr: hostast.MemberAccess{X: hostast.Ident{Name: "ctx"}, Name: "User", IsNullish: true},
	}
	r := diag.NewReporter(false)
	def := handler.Extract(lambda, map[string]bool{"ctx": true}, r)

	assert.True(t, def.HasClosureCapture)
}

func TestExtract_MethodReferenceProducesMethodReferenceHandler(t *testing.T) {
	ref := hostast.MethodRef{
		Receiver:   "Handlers",
		MethodName: "Deploy",
		Parameters: []hostast.LambdaParam{{Name: "env", Type: "string"}},
		ReturnType: "int",
	}
	r := diag.NewReporter(false)
	def := handler.Extract(ref, nil, r)

	require.NotNil(t, def)
	assert.Equal(t, ir.HandlerMethodReference, def.Kind)
	assert.Equal(t, "int", def.ReturnType)
	assert.Empty(t, r.Diagnostics())
}

func TestExtract_UnsupportedExpressionReportsUnsupportedDelegate(t *testing.T) {
	r := diag.NewReporter(false)
	def := handler.Extract(hostast.Literal{Kind: hostast.LiteralNull, Value: "null"}, nil, r)

	require.NotNil(t, def)
	assert.Equal(t, ir.HandlerNone, def.Kind)
	require.NotEmpty(t, r.Errors())
	assert.Equal(t, diag.CodeUnsupportedDelegate, r.Errors()[0].ID)
}
