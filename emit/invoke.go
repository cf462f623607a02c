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

package emit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/timewarp-nuru/nuruc/combiner"
	"github.com/timewarp-nuru/nuruc/hostast"
	"github.com/timewarp-nuru/nuruc/ir"
)

// writeInvokeStubs emits one InvokeRoute_<i> per route: a static method
// whose parameters are the route's bound handler parameters, running
// the extracted handler body (or a direct call for a method-reference
// handler) wrapped in the app's behavior chain (spec §4.7.3, §4.7.6).
func writeInvokeStubs(b *strings.Builder, gm *combiner.GeneratorModel) {
	for i, r := range gm.Routes {
		writeInvokeRoute(b, gm, r, i)
	}
}

func writeInvokeRoute(b *strings.Builder, gm *combiner.GeneratorModel, r ir.RouteDefinition, idx int) {
	fmt.Fprintf(b, "        private static async System.Threading.Tasks.Task<int> InvokeRoute_%d(%s)\n",
		idx, strings.Join(invokeSignature(r.Handler), ", "))
	b.WriteString("        {\n")
	b.WriteString("            System.Func<System.Threading.Tasks.Task<int>> handler = async () =>\n")
	b.WriteString("            {\n")
	writeHandlerBody(b, r.Handler)
	b.WriteString("            };\n")
	writeBehaviorChain(b, gm.App.Behaviors, r)
	b.WriteString("        }\n\n")
}

// invokeSignature renders h's parameters as a C# formal parameter
// list, using the handler's own declared type text for each (already
// valid source, unlike the canonical route-segment type names clrName
// converts).
func invokeSignature(h *ir.HandlerDefinition) []string {
	if h == nil {
		return nil
	}
	sig := make([]string, 0, len(h.Parameters))
	for _, p := range h.Parameters {
		typeName := p.ParameterTypeName
		if typeName == "" {
			typeName = "object"
		}
		sig = append(sig, fmt.Sprintf("%s %s", typeName, safeIdent(p.HandlerParameterName)))
	}
	return sig
}

// invokeCallArgs renders the argument list InvokeRoute_<idx> is called
// with: match-block locals for positional/option/catch-all parameters,
// and the emitted static fields or ambient identifiers for service,
// logger, terminal, app, and configuration parameters.
func invokeCallArgs(route ir.RouteDefinition) []string {
	if route.Handler == nil {
		return nil
	}
	args := make([]string, 0, len(route.Handler.Parameters))
	for _, p := range route.Handler.Parameters {
		args = append(args, invokeCallArg(p))
	}
	return args
}

func invokeCallArg(p ir.ParameterBinding) string {
	switch p.Source {
	case ir.SourcePositionalParameter, ir.SourceOption, ir.SourceCatchAll:
		return safeIdent(p.RouteSegmentName)
	case ir.SourceService:
		return fmt.Sprintf("_svc_%s.Value", safeIdent(p.ParameterTypeName))
	case ir.SourceLogger:
		return fmt.Sprintf("_loggerFactory.CreateLogger(typeof(%s))", loggerInnerType(p.ParameterTypeName))
	case ir.SourceTerminal:
		return "Terminal"
	case ir.SourceApp:
		return "App"
	case ir.SourceConfiguration:
		return "Configuration"
	default:
		return "default"
	}
}

// loggerInnerType extracts T from "ILogger<T>"; types written without
// the generic form are passed through unchanged.
func loggerInnerType(typeName string) string {
	i := strings.IndexByte(typeName, '<')
	if i < 0 || !strings.HasSuffix(typeName, ">") {
		return typeName
	}
	return typeName[i+1 : len(typeName)-1]
}

// writeHandlerBody renders h's captured body, or for a method
// reference handler a direct call to the referenced method, as the
// contents of InvokeRoute_<i>'s wrapping async lambda.
func writeHandlerBody(b *strings.Builder, h *ir.HandlerDefinition) {
	if h == nil {
		b.WriteString("                return 0;\n")
		return
	}
	switch h.Kind {
	case ir.HandlerBlockLambda:
		blk, ok := h.Body.(hostast.Block)
		if !ok {
			b.WriteString("                return 0;\n")
			return
		}
		for _, stmt := range blk.Stmts {
			writeStmt(b, stmt, "                ")
		}
		if !blockEndsInReturn(blk) {
			b.WriteString("                return 0;\n")
		}
	case ir.HandlerLambda:
		expr, ok := h.Body.(hostast.Expr)
		if !ok {
			b.WriteString("                return 0;\n")
			return
		}
		fmt.Fprintf(b, "                return %s;\n", renderExpr(expr))
	case ir.HandlerMethodReference:
		call := methodRefCallExpr(h)
		if h.IsAsync {
			fmt.Fprintf(b, "                return await %s;\n", call)
		} else {
			fmt.Fprintf(b, "                return %s;\n", call)
		}
	default:
		b.WriteString("                return 0;\n")
	}
}

func blockEndsInReturn(blk hostast.Block) bool {
	if len(blk.Stmts) == 0 {
		return false
	}
	_, ok := blk.Stmts[len(blk.Stmts)-1].(hostast.ReturnStmt)
	return ok
}

func methodRefCallExpr(h *ir.HandlerDefinition) string {
	args := make([]string, 0, len(h.Parameters))
	for _, p := range h.Parameters {
		args = append(args, safeIdent(p.HandlerParameterName))
	}
	return methodRefExprText(h.MethodReceiver, h.MethodName) + "(" + strings.Join(args, ", ") + ")"
}

func methodRefExprText(receiver, name string) string {
	if receiver == "" {
		return name
	}
	return receiver + "." + name
}

func writeStmt(b *strings.Builder, stmt hostast.Stmt, indent string) {
	switch s := stmt.(type) {
	case hostast.LocalDecl:
		fmt.Fprintf(b, "%svar %s = %s;\n", indent, safeIdent(s.Name), renderExpr(s.Init))
	case hostast.ExprStmt:
		fmt.Fprintf(b, "%s%s;\n", indent, renderExpr(s.X))
	case hostast.ReturnStmt:
		if s.Result == nil {
			fmt.Fprintf(b, "%sreturn 0;\n", indent)
		} else {
			fmt.Fprintf(b, "%sreturn %s;\n", indent, renderExpr(s.Result))
		}
	}
}

func renderExpr(e hostast.Expr) string {
	switch x := e.(type) {
	case hostast.Ident:
		return safeIdent(x.Name)
	case hostast.Literal:
		return x.Value
	case hostast.MemberAccess:
		op := "."
		if x.IsNullish {
			op = "?."
		}
		return renderExpr(x.X) + op + x.Name
	case hostast.Call:
		args := make([]string, 0, len(x.Args))
		for _, a := range x.Args {
			args = append(args, renderExpr(a))
		}
		fn := renderExpr(x.Fn)
		if len(x.TypeArgs) > 0 {
			fn += "<" + strings.Join(x.TypeArgs, ", ") + ">"
		}
		return fn + "(" + strings.Join(args, ", ") + ")"
	case hostast.Lambda:
		return renderLambda(x)
	case hostast.MethodRef:
		return methodRefExprText(x.Receiver, x.MethodName)
	default:
		return "default"
	}
}

func renderLambda(l hostast.Lambda) string {
	params := make([]string, 0, len(l.Parameters))
	for _, p := range l.Parameters {
		params = append(params, safeIdent(p.Name))
	}
	sig := "(" + strings.Join(params, ", ") + ")"
	if l.Kind == hostast.LambdaExpr {
		return sig + " => " + renderExpr(l.Expr)
	}
	var body strings.Builder
	for _, s := range l.Body.Stmts {
		body.WriteString(renderStmtInline(s))
		body.WriteString(" ")
	}
	return sig + " => { " + strings.TrimSpace(body.String()) + " }"
}

func renderStmtInline(stmt hostast.Stmt) string {
	switch s := stmt.(type) {
	case hostast.LocalDecl:
		return fmt.Sprintf("var %s = %s;", safeIdent(s.Name), renderExpr(s.Init))
	case hostast.ExprStmt:
		return renderExpr(s.X) + ";"
	case hostast.ReturnStmt:
		if s.Result == nil {
			return "return;"
		}
		return "return " + renderExpr(s.Result) + ";"
	default:
		return ""
	}
}

// writeBehaviorChain wraps handler in the app's ordered pipeline
// behaviors applicable to route, innermost call first, and emits the
// final return statement of InvokeRoute_<i>.
func writeBehaviorChain(b *strings.Builder, behaviors []ir.Behavior, route ir.RouteDefinition) {
	applicable := applicableBehaviors(behaviors, route)
	chain := "handler"
	for i := len(applicable) - 1; i >= 0; i-- {
		beh := applicable[i]
		instance := fmt.Sprintf("__behavior_%d", i)
		fmt.Fprintf(b, "            var %s = new %s();\n", instance, beh.BehaviorType)
		chain = fmt.Sprintf("(() => %s.Handle(%s))", instance, chain)
	}
	fmt.Fprintf(b, "            return await (%s)();\n", chain)
}

// applicableBehaviors filters behaviors to those unrestricted or whose
// FilterInterface matches route's inferred CQRS kind, then orders them
// by declaration Order (spec §3.1 PipelineDefinition).
func applicableBehaviors(behaviors []ir.Behavior, route ir.RouteDefinition) []ir.Behavior {
	out := make([]ir.Behavior, 0, len(behaviors))
	for _, beh := range behaviors {
		if beh.FilterInterface == "" || behaviorFilterMatches(beh.FilterInterface, route.MessageType) {
			out = append(out, beh)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// behaviorFilterMatches approximates "message implements FilterInterface"
// from the route's inferred CQRS kind, the only implemented-interface
// signal the combined model carries forward from AsQuery/AsCommand/
// AsIdempotentCommand.
func behaviorFilterMatches(filterInterface string, kind ir.MessageKind) bool {
	switch kind {
	case ir.MessageQuery:
		return strings.Contains(filterInterface, "Query")
	case ir.MessageIdempotentCommand:
		return strings.Contains(filterInterface, "IdempotentCommand") || strings.Contains(filterInterface, "Command")
	case ir.MessageCommand:
		return strings.Contains(filterInterface, "Command") && !strings.Contains(filterInterface, "Idempotent")
	default:
		return false
	}
}
