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

package pattern

import (
	"strings"

	"github.com/timewarp-nuru/nuruc/diag"
)

// ParseError aggregates the diagnostics produced while parsing a pattern.
// Parse still returns a best-effort SyntaxTree alongside a non-empty
// ParseError so callers that want partial results (e.g. editor tooling)
// can use both.
type ParseError struct {
	Diagnostics []diag.Diagnostic
}

func (e *ParseError) Error() string {
	if len(e.Diagnostics) == 0 {
		return "pattern: parse error"
	}
	return e.Diagnostics[0].Error()
}

// Parse tokenizes and parses a route pattern string into a SyntaxTree.
// span is attributed to every diagnostic raised while parsing raw; pass
// the span of the pattern literal in host source.
func Parse(raw string, span diag.Span) (*SyntaxTree, error) {
	tree, diags := parse(raw, span)
	if hasError(diags) {
		return tree, &ParseError{Diagnostics: diags}
	}
	return tree, nil
}

func hasError(ds []diag.Diagnostic) bool {
	for _, d := range ds {
		if d.Severity == diag.Error {
			return true
		}
	}
	return false
}

func parse(raw string, span diag.Span) (*SyntaxTree, []diag.Diagnostic) {
	words, diags := tokenize(raw, span)
	tree := &SyntaxTree{Raw: raw}

	pos := 0
	for i := 0; i < len(words); i++ {
		w := words[i]

		switch {
		case w == "--":
			tree.Nodes = append(tree.Nodes, Node{Kind: NodeSeparator, Position: pos})
			pos++

		case strings.HasPrefix(w, "{"):
			node, nd := parseParameter(w, pos, span)
			diags = append(diags, nd...)
			tree.Nodes = append(tree.Nodes, node)
			pos++

		case strings.HasPrefix(w, "--"):
			var valueTok string
			consumed := false
			if i+1 < len(words) && strings.HasPrefix(words[i+1], "{") {
				valueTok = words[i+1]
				consumed = true
			}
			node, nd := parseOption(w, valueTok, pos, span)
			diags = append(diags, nd...)
			tree.Nodes = append(tree.Nodes, node)
			pos++
			if consumed {
				i++
			}

		case strings.HasPrefix(w, "-"):
			diags = append(diags, diag.Errorf(diag.CodeMalformedBrace, span,
				"malformed option %q: short options must be declared via ,-x on a --long form", w))

		default:
			tree.Nodes = append(tree.Nodes, Node{Kind: NodeLiteral, Position: pos, Value: w})
			pos++
		}
	}

	return tree, diags
}

// parseParameter parses "{" ["*"] name [":" typeId] ["?"] ["|" desc] "}".
func parseParameter(tok string, pos int, span diag.Span) (Node, []diag.Diagnostic) {
	var diags []diag.Diagnostic
	node := Node{Kind: NodeParameter, Position: pos}

	if !strings.HasSuffix(tok, "}") {
		diags = append(diags, diag.Errorf(diag.CodeMalformedBrace, span,
			"malformed parameter %q: missing closing '}'", tok))
		return node, diags
	}
	content := tok[1 : len(tok)-1]

	if strings.HasPrefix(content, "*") {
		node.IsCatchAll = true
		content = content[1:]
	}

	if idx := strings.Index(content, "|"); idx >= 0 {
		node.Description = content[idx+1:]
		content = content[:idx]
	}

	if strings.HasSuffix(content, "?") {
		node.IsOptional = true
		content = strings.TrimSuffix(content, "?")
	}

	if idx := strings.Index(content, ":"); idx >= 0 {
		node.Name = content[:idx]
		typeRaw := content[idx+1:]
		canon, ok := CanonicalTypeName(typeRaw)
		if ok {
			node.TypeConstraint = canon
		} else if typeRaw != "" {
			// Unknown identifiers pass through lower-cased: they may be
			// an enum type name or a custom AddTypeConverter<T> target.
			// They are not checked against any registration; the emitter
			// converts them with TryConvertCustom.
			node.TypeConstraint = lower(typeRaw)
		} else {
			diags = append(diags, diag.Errorf(diag.CodeInvalidTypeID, span,
				"parameter %q: empty type constraint after ':'", tok))
		}
	} else {
		node.Name = content
	}

	if node.IsCatchAll && node.IsOptional {
		diags = append(diags, diag.Errorf(diag.CodeCatchAllOptional, span,
			"parameter %q: a catch-all cannot also be marked optional", tok))
	}

	if node.Name == "" {
		diags = append(diags, diag.Errorf(diag.CodeMalformedBrace, span,
			"malformed parameter %q: missing name", tok))
	}

	return node, diags
}

// parseOption parses "--long[,-s]['?'][ WS valueSpec]['|' desc]" where
// valueTok, if non-empty, is the lookahead "{...}" word already split off
// by the caller.
func parseOption(tok, valueTok string, pos int, span diag.Span) (Node, []diag.Diagnostic) {
	var diags []diag.Diagnostic
	node := Node{Kind: NodeOption, Position: pos}

	form := strings.TrimPrefix(tok, "--")
	desc := ""

	if valueTok != "" {
		node.ExpectsValue = true
		vform, vdesc, vdiags := splitValueSpec(valueTok, span)
		diags = append(diags, vdiags...)
		node.ValueName = vform.name
		node.ValueType = vform.typ
		node.ValueOptional = vform.optional
		desc = vdesc
	} else if idx := strings.Index(form, "|"); idx >= 0 {
		desc = form[idx+1:]
		form = form[:idx]
	}
	node.Description = desc

	if strings.HasSuffix(form, "?") {
		node.IsOptional = true
		form = strings.TrimSuffix(form, "?")
	}

	parts := strings.SplitN(form, ",", 2)
	node.LongForm = parts[0]
	if len(parts) == 2 {
		short := strings.TrimPrefix(parts[1], "-")
		if len(short) != 1 {
			diags = append(diags, diag.Errorf(diag.CodeInvalidShortForm, span,
				"option %q: short form must be exactly one character, got %q", tok, short))
		}
		node.ShortForm = short
	}

	if node.LongForm == "" {
		diags = append(diags, diag.Errorf(diag.CodeMalformedBrace, span,
			"malformed option %q: missing long form", tok))
	}

	return node, diags
}

type valueSpec struct {
	name     string
	typ      string
	optional bool
}

// splitValueSpec parses "{name[:typeId]['?']}" possibly followed by
// "|desc" after the closing brace (attached to the option, not the
// parameter, per the option grammar production).
func splitValueSpec(tok string, span diag.Span) (valueSpec, string, []diag.Diagnostic) {
	var diags []diag.Diagnostic
	var vs valueSpec

	end := strings.Index(tok, "}")
	if end < 0 || !strings.HasPrefix(tok, "{") {
		diags = append(diags, diag.Errorf(diag.CodeMalformedBrace, span,
			"malformed option value %q: missing braces", tok))
		return vs, "", diags
	}
	content := tok[1:end]
	desc := ""
	if rest := tok[end+1:]; strings.HasPrefix(rest, "|") {
		desc = rest[1:]
	}

	if strings.HasSuffix(content, "?") {
		vs.optional = true
		content = strings.TrimSuffix(content, "?")
	}
	if idx := strings.Index(content, ":"); idx >= 0 {
		vs.name = content[:idx]
		typeRaw := content[idx+1:]
		if canon, ok := CanonicalTypeName(typeRaw); ok {
			vs.typ = canon
		} else {
			vs.typ = lower(typeRaw)
		}
	} else {
		vs.name = content
	}

	if vs.name == "" {
		diags = append(diags, diag.Errorf(diag.CodeMalformedBrace, span,
			"malformed option value %q: missing name", tok))
	}

	return vs, desc, diags
}
