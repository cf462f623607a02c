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

// Display renders a SyntaxTree back to its canonical display form per
// §6.2: "literal", "{name}", "{name:type}", "{name?}", "{name:type?}",
// "{*name}", "--long,-s", "--long,-s {value:type}",
// "--long,-s?", trailing "--". Type constraints are always rendered in
// their canonical short form (spec §9).
func (t *SyntaxTree) Display() string {
	parts := make([]string, 0, len(t.Nodes))
	for _, n := range t.Nodes {
		parts = append(parts, n.Display())
	}
	return strings.Join(parts, " ")
}

// Display renders a single Node in canonical form.
func (n Node) Display() string {
	switch n.Kind {
	case NodeSeparator:
		return "--"
	case NodeLiteral:
		return n.Value
	case NodeParameter:
		var b strings.Builder
		b.WriteByte('{')
		if n.IsCatchAll {
			b.WriteByte('*')
		}
		b.WriteString(n.Name)
		if n.TypeConstraint != "" {
			b.WriteByte(':')
			b.WriteString(n.TypeConstraint)
		}
		if n.IsOptional {
			b.WriteByte('?')
		}
		b.WriteByte('}')
		return b.String()
	case NodeOption:
		var b strings.Builder
		b.WriteString("--")
		b.WriteString(n.LongForm)
		if n.ShortForm != "" {
			b.WriteByte(',')
			b.WriteByte('-')
			b.WriteString(n.ShortForm)
		}
		if n.IsOptional {
			b.WriteByte('?')
		}
		if n.ExpectsValue {
			b.WriteByte(' ')
			b.WriteByte('{')
			b.WriteString(n.ValueName)
			if n.ValueType != "" {
				b.WriteByte(':')
				b.WriteString(n.ValueType)
			}
			if n.ValueOptional {
				b.WriteByte('?')
			}
			b.WriteByte('}')
		}
		return b.String()
	default:
		return ""
	}
}

// Canonical parses raw and re-renders it in canonical display form. It
// is the identity used by the round-trip property in §8.1.1: for every
// legal pattern string p, Display(Parse(p)) == Canonical(p).
func Canonical(raw string) (string, error) {
	tree, err := Parse(raw, diag.Span{})
	if err != nil {
		return "", err
	}
	return tree.Display(), nil
}
