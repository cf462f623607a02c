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

// Package attrs extracts RouteDefinitions from attribute-annotated
// endpoint classes (spec §4.4): the [Route]/[Parameter]/[Option] model
// rather than the fluent Map() builder chain that package dsl handles.
// Grounded on router/route.Route's static-prefix + parameter-segment
// split, generalized to a class hierarchy's inherited group-prefix
// chain instead of a single path string.
package attrs

import (
	"strings"

	"github.com/timewarp-nuru/nuruc/diag"
	"github.com/timewarp-nuru/nuruc/hostast"
	"github.com/timewarp-nuru/nuruc/ir"
	"github.com/timewarp-nuru/nuruc/pattern"
)

// Extract builds one RouteDefinition per attributed endpoint type (plus
// one per [NuruRouteAlias]), restricted to the subtree rooted at
// discoverRoot when non-empty (the typeof(G) argument to
// DiscoverEndpoints, spec §4.4 "Subset publishing"). A type that another
// type in types derives from is a group base: its [Route] literal is a
// prefix for its descendants and it emits no route of its own.
func Extract(types []hostast.TypeDecl, discoverRoot string, r *diag.Reporter) []ir.RouteDefinition {
	byName := make(map[string]hostast.TypeDecl, len(types))
	for _, t := range types {
		byName[t.Name] = t
	}
	groups := make(map[string]bool)
	for _, t := range types {
		if parent, ok := firstKnownBase(t, byName); ok {
			groups[parent.Name] = true
		}
	}

	var routes []ir.RouteDefinition
	order := 0
	for _, t := range types {
		if !hasAttribute(t.Attributes, "Route") || groups[t.Name] {
			continue
		}

		chain := ancestorNames(t, byName)
		if discoverRoot != "" && !containsName(chain, discoverRoot) {
			continue
		}

		groupPrefix := groupPrefixChain(t, byName)
		if discoverRoot != "" && len(chain) > 0 && chain[0] == discoverRoot && len(groupPrefix) > 0 {
			// G is the root of its own chain: strip the root prefix to
			// correct the double-prefix bug (spec §4.4).
			groupPrefix = groupPrefix[1:]
		}

		base := buildRoute(t, groupPrefix, order, r)
		order++
		routes = append(routes, base)

		for _, alias := range aliasPatterns(t.Attributes) {
			aliasRoute := base
			aliasRoute.Pattern = alias
			tree, _ := pattern.Parse(alias, diag.Span{})
			aliasRoute.Recompute(ir.FromSyntaxTree(tree))
			aliasRoute.Order = order
			order++
			routes = append(routes, aliasRoute)
		}
	}

	return routes
}

// ancestorNames returns t's base-class chain root-to-leaf, including t
// itself as the last element, limited to bases also present in byName
// (bases only known as bare interface names like IQuery<T> are not
// endpoint types and stop the walk).
func ancestorNames(t hostast.TypeDecl, byName map[string]hostast.TypeDecl) []string {
	parent, ok := firstKnownBase(t, byName)
	if !ok {
		return []string{t.Name}
	}
	return append(ancestorNames(parent, byName), t.Name)
}

func firstKnownBase(t hostast.TypeDecl, byName map[string]hostast.TypeDecl) (hostast.TypeDecl, bool) {
	for _, b := range t.BaseTypes {
		if parent, ok := byName[baseNameOnly(b)]; ok {
			return parent, true
		}
	}
	return hostast.TypeDecl{}, false
}

// groupPrefixChain collects each strict ancestor's own [Route] literal,
// root-to-leaf, excluding t itself.
func groupPrefixChain(t hostast.TypeDecl, byName map[string]hostast.TypeDecl) []string {
	parent, ok := firstKnownBase(t, byName)
	if !ok {
		return nil
	}
	chain := groupPrefixChain(parent, byName)
	if own := routeLiteral(parent.Attributes); own != "" {
		chain = append(chain, own)
	}
	return chain
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func buildRoute(t hostast.TypeDecl, groupPrefix []string, order int, r *diag.Reporter) ir.RouteDefinition {
	var segs []ir.Segment
	pos := 0
	for _, lit := range groupPrefix {
		for _, word := range strings.Fields(lit) {
			segs = append(segs, ir.Segment{Kind: ir.SegmentLiteral, Value: word, Position: pos})
			pos++
		}
	}
	for _, word := range strings.Fields(routeLiteral(t.Attributes)) {
		segs = append(segs, ir.Segment{Kind: ir.SegmentLiteral, Value: word, Position: pos})
		pos++
	}

	seenOptionLong := map[string]bool{}
	for _, p := range t.Properties {
		if a, ok := findAttribute(p.Attributes, "Parameter"); ok {
			segs = append(segs, parameterSegment(p, a, pos))
			pos++
			continue
		}
		if a, ok := findAttribute(p.Attributes, "Option"); ok {
			seg := optionSegment(p, a, pos)
			if seenOptionLong[seg.LongForm] {
				r.Report(diag.Errorf(diag.CodeDuplicateOptionForm, diag.Span{},
					"endpoint %q: duplicate option --%s", t.Name, seg.LongForm))
			}
			seenOptionLong[seg.LongForm] = true
			segs = append(segs, seg)
			pos++
			continue
		}
		if a, ok := findAttribute(p.Attributes, "GroupOption"); ok {
			seg := optionSegment(p, a, pos)
			if !seenOptionLong[seg.LongForm] {
				seenOptionLong[seg.LongForm] = true
				segs = append(segs, seg)
				pos++
			}
		}
	}

	route := ir.RouteDefinition{
		Pattern:          ir.DisplaySegments(segs),
		Order:            order,
		GroupPrefixChain: append([]string{}, groupPrefix...),
		MessageType:      inferMessageType(t.BaseTypes),
	}
	route.Recompute(segs)
	return route
}

func parameterSegment(p hostast.PropertyDecl, a hostast.Attribute, pos int) ir.Segment {
	typeConstraint := ""
	if c, ok := pattern.CanonicalTypeName(p.TypeName); ok && c != "string" {
		typeConstraint = c
	}
	return ir.Segment{
		Kind:           ir.SegmentParameter,
		Position:       pos,
		Name:           p.Name,
		TypeConstraint: typeConstraint,
		IsOptional:     p.IsNullable,
		IsCatchAll:     boolNamedArg(a, "IsCatchAll"),
	}
}

func optionSegment(p hostast.PropertyDecl, a hostast.Attribute, pos int) ir.Segment {
	long := literalArg(a, 0)
	short := literalArg(a, 1)
	expectsValue := !strings.EqualFold(p.TypeName, "bool") && !strings.EqualFold(p.TypeName, "boolean")

	typeConstraint := ""
	if expectsValue {
		if c, ok := pattern.CanonicalTypeName(p.TypeName); ok {
			typeConstraint = c
		}
	}

	return ir.Segment{
		Kind:                ir.SegmentOption,
		Position:            pos,
		LongForm:            long,
		ShortForm:           short,
		ParameterName:       strings.ToLower(p.Name),
		TypeConstraint:      typeConstraint,
		ExpectsValue:        expectsValue,
		IsOptional:          true,
		IsRepeated:          boolNamedArg(a, "IsRepeated"),
		ParameterIsOptional: p.IsNullable,
	}
}

func inferMessageType(baseTypes []string) ir.MessageKind {
	isQuery, isCommand, isIdempotent := false, false, false
	for _, b := range baseTypes {
		switch {
		case strings.HasPrefix(b, "IQuery"):
			isQuery = true
		case strings.HasPrefix(b, "ICommand"):
			isCommand = true
		case b == "IIdempotent":
			isIdempotent = true
		}
	}
	switch {
	case isCommand && isIdempotent:
		return ir.MessageIdempotentCommand
	case isCommand:
		return ir.MessageCommand
	case isQuery:
		return ir.MessageQuery
	default:
		return ir.MessageUnspecified
	}
}

func baseNameOnly(raw string) string {
	if i := strings.IndexByte(raw, '<'); i >= 0 {
		return raw[:i]
	}
	return raw
}

func hasAttribute(attrs []hostast.Attribute, name string) bool {
	_, ok := findAttribute(attrs, name)
	return ok
}

func findAttribute(attrs []hostast.Attribute, name string) (hostast.Attribute, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a, true
		}
	}
	return hostast.Attribute{}, false
}

func routeLiteral(attrs []hostast.Attribute) string {
	a, ok := findAttribute(attrs, "Route")
	if !ok {
		return ""
	}
	return literalArg(a, 0)
}

func aliasPatterns(attrs []hostast.Attribute) []string {
	var out []string
	for _, a := range attrs {
		if a.Name == "NuruRouteAlias" {
			out = append(out, literalArg(a, 0))
		}
	}
	return out
}

func literalArg(a hostast.Attribute, i int) string {
	if i >= len(a.Args) {
		return ""
	}
	v := a.Args[i].Value
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}

func boolNamedArg(a hostast.Attribute, name string) bool {
	v, ok := a.NamedArgs[name]
	return ok && v.Value == "true"
}
