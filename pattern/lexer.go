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

// tokenize splits a raw pattern into whitespace-separated words, treating
// "{...}" spans as non-splitting regions (a description inside a
// parameter's braces may itself be free text). An unterminated "{"
// yields CodeMalformedBrace.
func tokenize(raw string, span diag.Span) ([]string, []diag.Diagnostic) {
	var (
		tokens []string
		buf    strings.Builder
		depth  int
		diags  []diag.Diagnostic
	)

	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}

	for _, r := range raw {
		switch {
		case r == '{':
			depth++
			buf.WriteRune(r)
		case r == '}':
			if depth > 0 {
				depth--
			}
			buf.WriteRune(r)
		case depth == 0 && isSpace(r):
			flush()
		default:
			buf.WriteRune(r)
		}
	}
	flush()

	if depth != 0 {
		diags = append(diags, diag.Errorf(CodeMalformedBrace, span,
			"malformed pattern %q: unterminated '{'", raw))
	}

	return tokens, diags
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// CodeMalformedBrace re-exports diag.CodeMalformedBrace for readability
// at call sites within this package.
const CodeMalformedBrace = diag.CodeMalformedBrace
