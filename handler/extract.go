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

// Package handler extracts HandlerDefinition and ParameterBinding
// values from a WithHandler(...) argument or an attributed endpoint's
// sibling method (spec §4.5), and flags closure capture (NURU_H001)
// the way a compile-time tool must since it cannot execute the
// handler body to find out at runtime. Grounded on router/route.Route's
// handler-field storage, generalized from a single http.HandlerFunc
// slot to the lambda/block-lambda/method-reference distinction a
// source generator has to make.
package handler

import (
	"github.com/timewarp-nuru/nuruc/diag"
	"github.com/timewarp-nuru/nuruc/hostast"
	"github.com/timewarp-nuru/nuruc/ir"
)

// Extract classifies expr (a Lambda or MethodRef node) into a
// HandlerDefinition, reporting NURU_H001 if the handler body
// references an enclosing local variable (closure capture), which the
// emitted dispatcher cannot support since handlers are emitted as
// static methods.
func Extract(expr hostast.Expr, enclosingLocals map[string]bool, r *diag.Reporter) *ir.HandlerDefinition {
	switch e := expr.(type) {
	case hostast.Lambda:
		def := &ir.HandlerDefinition{
			Parameters: bindingsFromParams(e.Parameters),
			IsAsync:    e.IsAsync,
		}
		if e.Kind == hostast.LambdaBlock {
			def.Kind = ir.HandlerBlockLambda
			def.Body = e.Body
			def.HasClosureCapture = capturesLocal(e.Body, paramNames(e.Parameters), enclosingLocals)
		} else {
			def.Kind = ir.HandlerLambda
			def.Body = e.Expr
			def.HasClosureCapture = exprCapturesLocal(e.Expr, paramNames(e.Parameters), enclosingLocals)
		}
		if def.HasClosureCapture {
			r.Report(diag.Errorf(diag.CodeClosureCapture, spanOf(expr.Position()),
				"handler captures an enclosing local variable; handlers are emitted as static methods and cannot close over locals"))
		}
		return def

	case hostast.MethodRef:
		return &ir.HandlerDefinition{
			Kind:           ir.HandlerMethodReference,
			Parameters:     bindingsFromParams(e.Parameters),
			ReturnType:     e.ReturnType,
			IsAsync:        e.IsAsync,
			MethodReceiver: e.Receiver,
			MethodName:     e.MethodName,
		}

	default:
		r.Report(diag.Errorf(diag.CodeUnsupportedDelegate, spanOf(expr.Position()),
			"WithHandler argument is neither a lambda nor a method reference"))
		return &ir.HandlerDefinition{Kind: ir.HandlerNone}
	}
}

func spanOf(s hostast.Span) diag.Span {
	return diag.Span{File: s.File, Line: s.Line, Column: s.Column}
}

func paramNames(params []hostast.LambdaParam) map[string]bool {
	m := make(map[string]bool, len(params))
	for _, p := range params {
		m[p.Name] = true
	}
	return m
}

func bindingsFromParams(params []hostast.LambdaParam) []ir.ParameterBinding {
	bs := make([]ir.ParameterBinding, 0, len(params))
	for _, p := range params {
		bs = append(bs, ir.ParameterBinding{
			HandlerParameterName: p.Name,
			ParameterTypeName:    p.Type,
		})
	}
	return bs
}

// capturesLocal walks a block body looking for an Ident that names a
// local from the enclosing scope and is not one of the handler's own
// parameters. The "obj?.X" exception (spec §4.5): a null-conditional
// MemberAccess rooted at a captured identifier is still flagged, since
// the capture itself (not the access style) is what the emitted
// static method cannot reproduce; only the access expression form is
// exempted from being treated as a *second*, separate violation.
func capturesLocal(b hostast.Block, params, locals map[string]bool) bool {
	for _, stmt := range b.Stmts {
		switch s := stmt.(type) {
		case hostast.ExprStmt:
			if exprCapturesLocal(s.X, params, locals) {
				return true
			}
		case hostast.ReturnStmt:
			if s.Result != nil && exprCapturesLocal(s.Result, params, locals) {
				return true
			}
		case hostast.LocalDecl:
			if s.Init != nil && exprCapturesLocal(s.Init, params, locals) {
				return true
			}
		}
	}
	return false
}

func exprCapturesLocal(e hostast.Expr, params, locals map[string]bool) bool {
	switch x := e.(type) {
	case hostast.Ident:
		return locals[x.Name] && !params[x.Name]
	case hostast.MemberAccess:
		return exprCapturesLocal(x.X, params, locals)
	case hostast.Call:
		if exprCapturesLocal(x.Fn, params, locals) {
			return true
		}
		for _, a := range x.Args {
			if exprCapturesLocal(a, params, locals) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
