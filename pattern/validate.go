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

import "github.com/timewarp-nuru/nuruc/diag"

// Validate enforces the pattern-level semantic rules of §4.2 against an
// already-parsed SyntaxTree. It returns every violation found; callers
// decide whether an Error-severity diagnostic means the whole route is
// dropped (per §7, semantic failures drop only the offending route).
func Validate(t *SyntaxTree, span diag.Span) []diag.Diagnostic {
	var ds []diag.Diagnostic

	ds = append(ds, validateCatchAll(t, span)...)
	ds = append(ds, validateOptionalPositionals(t, span)...)
	ds = append(ds, validateOptionForms(t, span)...)
	ds = append(ds, validateSeparator(t, span)...)

	return ds
}

// validateCatchAll enforces rule 1: at most one catch-all, and it must
// be the last positional segment (literals/parameters), though trailing
// options are still permitted after it.
func validateCatchAll(t *SyntaxTree, span diag.Span) []diag.Diagnostic {
	var ds []diag.Diagnostic
	catchAllIdx := -1

	for i, n := range t.Nodes {
		if n.Kind != NodeParameter || !n.IsCatchAll {
			continue
		}
		if catchAllIdx >= 0 {
			ds = append(ds, diag.Errorf(diag.CodeMultipleCatchAll, span,
				"pattern %q: at most one catch-all parameter is allowed", t.Raw))
			continue
		}
		catchAllIdx = i
	}

	if catchAllIdx < 0 {
		return ds
	}

	for i := catchAllIdx + 1; i < len(t.Nodes); i++ {
		n := t.Nodes[i]
		if n.Kind == NodeLiteral || n.Kind == NodeParameter {
			ds = append(ds, diag.Errorf(diag.CodeCatchAllNotLast, span,
				"pattern %q: catch-all parameter must be the last positional segment", t.Raw))
			break
		}
	}

	return ds
}

// validateOptionalPositionals enforces rules 2 and 3: no two consecutive
// optional positionals, and a required positional after an optional one
// is a warning while one after a catch-all is an error.
func validateOptionalPositionals(t *SyntaxTree, span diag.Span) []diag.Diagnostic {
	var ds []diag.Diagnostic

	sawOptional := false
	sawCatchAll := false

	for _, n := range t.Nodes {
		if n.Kind != NodeParameter {
			continue
		}
		if n.IsCatchAll {
			sawCatchAll = true
			continue
		}

		if n.IsOptional {
			if sawOptional {
				ds = append(ds, diag.Errorf(diag.CodeConsecutiveOptional, span,
					"pattern %q: two consecutive optional positional parameters are ambiguous", t.Raw))
			}
			sawOptional = true
			continue
		}

		// Required positional.
		if sawCatchAll {
			ds = append(ds, diag.Errorf(diag.CodeRequiredAfterCatchAll, span,
				"pattern %q: required positional parameter cannot follow a catch-all", t.Raw))
		} else if sawOptional {
			ds = append(ds, diag.Warnf(diag.CodeRequiredAfterOptional, span,
				"pattern %q: required positional parameter follows an optional one", t.Raw))
		}
		sawOptional = false
	}

	return ds
}

// validateOptionForms enforces rules 4 and 5: long/short form uniqueness
// within the pattern (the reserved -h/--help forms are not checked here or
// by any caller) and short-form single-character length (already
// checked in the parser; duplicated here defensively against
// programmatically constructed trees).
func validateOptionForms(t *SyntaxTree, span diag.Span) []diag.Diagnostic {
	var ds []diag.Diagnostic
	longSeen := map[string]bool{}
	shortSeen := map[string]bool{}

	for _, n := range t.Nodes {
		if n.Kind != NodeOption {
			continue
		}
		if n.LongForm != "" {
			if longSeen[n.LongForm] {
				ds = append(ds, diag.Errorf(diag.CodeDuplicateOptionForm, span,
					"pattern %q: duplicate long option form --%s", t.Raw, n.LongForm))
			}
			longSeen[n.LongForm] = true
		}
		if n.ShortForm != "" {
			if shortSeen[n.ShortForm] {
				ds = append(ds, diag.Errorf(diag.CodeDuplicateOptionForm, span,
					"pattern %q: duplicate short option form -%s", t.Raw, n.ShortForm))
			}
			if len(n.ShortForm) != 1 {
				ds = append(ds, diag.Errorf(diag.CodeInvalidShortForm, span,
					"pattern %q: short option form -%s must be a single character", t.Raw, n.ShortForm))
			}
			shortSeen[n.ShortForm] = true
		}
	}

	return ds
}

// validateSeparator enforces rule 6: "--" may appear at most once, and
// no option segment may appear after it.
func validateSeparator(t *SyntaxTree, span diag.Span) []diag.Diagnostic {
	var ds []diag.Diagnostic
	count := 0
	sepIdx := -1

	for i, n := range t.Nodes {
		if n.Kind != NodeSeparator {
			continue
		}
		count++
		if sepIdx < 0 {
			sepIdx = i
		}
	}

	if count > 1 {
		ds = append(ds, diag.Errorf(diag.CodeDuplicateSeparator, span,
			"pattern %q: the end-of-options separator '--' may appear at most once", t.Raw))
	}

	if sepIdx >= 0 {
		for i := sepIdx + 1; i < len(t.Nodes); i++ {
			if t.Nodes[i].Kind == NodeOption {
				ds = append(ds, diag.Errorf(diag.CodeSeparatorBeforeOption, span,
					"pattern %q: option segments may not follow the '--' separator", t.Raw))
				break
			}
		}
	}

	return ds
}

// ReservedOptionForms returns the built-in forms that are reserved unless
// the help route is explicitly disabled (rule 4, "-h and --help reserved
// if DisableHelpRoute=false").
func ReservedOptionForms() (long string, short string) {
	return "help", "h"
}
