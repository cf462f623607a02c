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

// Package pattern implements the route pattern lexer, parser, and
// semantic validator (spec §4.1, §4.2). It lowers a pattern string such
// as "deploy {env} --force,-f" into a SyntaxTree of typed segment nodes,
// the way router/compiler.CompileRoute splits an HTTP path into static
// and parameter segments, generalized to options, catch-alls, and the
// "--" end-of-options separator.
package pattern

// NodeKind discriminates the syntax-tree node variants.
type NodeKind int

const (
	// NodeLiteral is a bare word segment.
	NodeLiteral NodeKind = iota
	// NodeParameter is a "{name[:type][?]}" or "{*name}" segment.
	NodeParameter
	// NodeOption is a "--long[,-s][?][ {value}]" segment.
	NodeOption
	// NodeSeparator is the literal "--" end-of-options marker.
	NodeSeparator
)

// Node is one parsed segment of a route pattern, positioned by its
// 0-based index among all segments (not characters).
type Node struct {
	Kind     NodeKind
	Position int

	// NodeLiteral
	Value string

	// NodeParameter
	Name          string
	TypeConstraint string // canonical, e.g. "int"; empty if untyped
	IsOptional    bool
	IsCatchAll    bool
	Description   string

	// NodeOption
	LongForm        string // without leading "--"
	ShortForm       string // without leading "-"; empty if none
	ExpectsValue    bool
	ValueName       string // ParameterName for the option's value slot
	ValueType       string // canonical type of the option's value
	ValueOptional   bool   // "{val?}"
}

// SyntaxTree is the parsed, validated-shape (not yet semantically
// validated) representation of a pattern string.
type SyntaxTree struct {
	Raw   string
	Nodes []Node
}

// CanonicalTypeNames maps every recognized alias to its canonical short
// form. Matching is case-insensitive; the canonical form is always the
// short one (spec §9 "Case normalization of type constraints").
var canonicalTypeNames = map[string]string{
	"int": "int", "int32": "int", "integer": "int",
	"long": "long", "int64": "long",
	"short": "short", "int16": "short",
	"byte": "byte", "sbyte": "sbyte",
	"uint": "uint", "uint32": "uint",
	"ulong": "ulong", "uint64": "ulong",
	"ushort": "ushort", "uint16": "ushort",
	"double": "double", "float": "float", "single": "float",
	"decimal": "decimal",
	"bool": "bool", "boolean": "bool",
	"guid": "guid", "uuid": "guid",
	"datetime": "datetime",
	"dateonly": "dateonly", "date": "dateonly",
	"timeonly": "timeonly", "time": "timeonly",
	"timespan": "timespan",
	"string": "string", "str": "string",
	"uri": "uri", "url": "uri",
	"fileinfo": "fileinfo", "file": "fileinfo",
	"directoryinfo": "directoryinfo", "directory": "directoryinfo",
	"ipaddress": "ipaddress", "ip": "ipaddress",
}

// CanonicalTypeName normalizes a lexed type identifier to its canonical
// short form, or returns ("", false) if the identifier is not one of the
// built-in type names. The parser keeps such identifiers lower-cased as
// custom type constraints.
func CanonicalTypeName(raw string) (string, bool) {
	c, ok := canonicalTypeNames[lower(raw)]
	return c, ok
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}
