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

// Package hostast defines a small, explicit, language-agnostic syntax
// tree standing in for the host language's real compiler front end (a
// Roslyn SyntaxTree, or a go/ast.File for a Go host DSL). The DSL
// interpreter (package dsl) and the attributed route extractor (package
// attrs) consume this model instead of any specific language's AST, so
// that a real front end only needs a translation layer into these node
// types to integrate.
//
// The shape mirrors router/route.Route's split between a declarative,
// fluent construction step and router/compiler.CompiledRoute's
// already-resolved form: a Block of Stmt nodes, Expr nodes for the
// fluent chains themselves (Call, MemberAccess, Lambda, MethodRef,
// Ident, Literal), and declaration nodes (TypeDecl, PropertyDecl,
// Attribute) for the attributed-endpoint-class model.
package hostast

// Span identifies the originating source location of a node, kept
// opaque and forwarded into diag.Span at the call sites that need it.
type Span struct {
	File   string
	Line   int
	Column int
}

// Node is implemented by every AST node kind in this package. It exists
// so Block/Stmt/Expr slices can be typed as []Node where a mixed list
// is legitimate (e.g. top-level declarations in a source file).
type Node interface {
	node()
	Position() Span
}

// Block is an ordered sequence of statements, e.g. a Main method body
// or a lambda's block body.
type Block struct {
	Span  Span
	Stmts []Stmt
}

func (Block) node()            {}
func (b Block) Position() Span { return b.Span }

// Stmt is implemented by LocalDecl, ExprStmt, and ReturnStmt.
type Stmt interface {
	Node
	stmt()
}

// LocalDecl is a local variable declaration, e.g. "var app = ...;".
type LocalDecl struct {
	Span Span
	Name string
	Init Expr
}

func (LocalDecl) node()            {}
func (LocalDecl) stmt()            {}
func (d LocalDecl) Position() Span { return d.Span }

// ExprStmt is a statement consisting of a bare expression, the common
// case for fluent chains: "builder.Map(...).Done();".
type ExprStmt struct {
	Span Span
	X    Expr
}

func (ExprStmt) node()            {}
func (ExprStmt) stmt()            {}
func (s ExprStmt) Position() Span { return s.Span }

// ReturnStmt is a "return expr;" statement inside a handler body.
type ReturnStmt struct {
	Span   Span
	Result Expr
}

func (ReturnStmt) node()            {}
func (ReturnStmt) stmt()            {}
func (r ReturnStmt) Position() Span { return r.Span }

// Expr is implemented by Ident, Call, Lambda, MethodRef, Literal, and
// MemberAccess.
type Expr interface {
	Node
	expr()
}

// Ident is a bare identifier reference, e.g. "app" or "services".
type Ident struct {
	Span Span
	Name string
}

func (Ident) node()            {}
func (Ident) expr()            {}
func (i Ident) Position() Span { return i.Span }

// MemberAccess is "X.Name", e.g. "CreateBuilder" resolved off a static
// type, or "obj.Field" inside a handler body (relevant to closure
// capture detection's "obj?.X" exception, spec §4.5).
type MemberAccess struct {
	Span      Span
	X         Expr
	Name      string
	IsNullish bool // true for "X?.Name"
}

func (MemberAccess) node()            {}
func (MemberAccess) expr()            {}
func (m MemberAccess) Position() Span { return m.Span }

// Call is a method or function invocation, "Fn(Args...)" or
// "X.Method(Args...)" when Fn is a MemberAccess. TypeArgs carries
// generic type arguments such as Map<T>() or AddBehavior<T>().
type Call struct {
	Span     Span
	Fn       Expr
	TypeArgs []string
	Args     []Expr
}

func (Call) node()            {}
func (Call) expr()            {}
func (c Call) Position() Span { return c.Span }

// Lambda is an inline handler: either an expression-bodied lambda
// ("(x) => x + 1", Kind=LambdaExpr) or a block-bodied one
// ("(x) => { return x + 1; }", Kind=LambdaBlock).
type Lambda struct {
	Span       Span
	Kind       LambdaKind
	Parameters []LambdaParam
	Expr       Expr  // set when Kind == LambdaExpr
	Body       Block // set when Kind == LambdaBlock
	IsAsync    bool
}

func (Lambda) node()            {}
func (Lambda) expr()            {}
func (l Lambda) Position() Span { return l.Span }

// LambdaKind discriminates Lambda's two shapes.
type LambdaKind int

const (
	LambdaExpr LambdaKind = iota
	LambdaBlock
)

// LambdaParam is one formal parameter of a Lambda or a MethodRef's
// referenced method.
type LambdaParam struct {
	Name string
	Type string
}

// MethodRef is a bare method-group reference used as a handler, e.g.
// "WithHandler(Handlers.Deploy)" rather than an inline lambda.
type MethodRef struct {
	Span       Span
	Receiver   string // empty for a static/local function reference
	MethodName string
	Parameters []LambdaParam
	ReturnType string
	IsAsync    bool
}

func (MethodRef) node()            {}
func (MethodRef) expr()            {}
func (m MethodRef) Position() Span { return m.Span }

// Literal is a constant value: string, number, bool, or null.
type Literal struct {
	Span  Span
	Kind  LiteralKind
	Value string // textual form, e.g. `"deploy {env}"`, `42`, `true`
}

func (Literal) node()            {}
func (Literal) expr()            {}
func (l Literal) Position() Span { return l.Span }

// LiteralKind discriminates Literal's value domains.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBool
	LiteralNull
)

// TypeDecl is an attributed endpoint class declaration: "class
// DeployCommand { ... }" decorated with one or more Attribute nodes.
type TypeDecl struct {
	Span       Span
	Name       string
	Attributes []Attribute
	Properties []PropertyDecl
	Methods    []MethodRef
	BaseTypes  []string // base class and implemented interfaces, e.g. "IQuery<Result>"
}

func (TypeDecl) node()            {}
func (t TypeDecl) Position() Span { return t.Span }

// PropertyDecl is one property of an attributed endpoint class, the
// source of a route's parameter/option bindings (spec §4.4).
type PropertyDecl struct {
	Span       Span
	Name       string
	TypeName   string
	IsNullable bool
	Attributes []Attribute
}

// Attribute is a single source attribute/annotation, e.g.
// `[Route("deploy {env}")]` or `[Option("force", "f")]`, reduced to
// its name and positional/named argument literals.
type Attribute struct {
	Span      Span
	Name      string
	Args      []Literal
	NamedArgs map[string]Literal
}
