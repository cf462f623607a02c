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

package diag

// Diagnostic codes. IDs are stable strings so emitted diagnostics can be
// grepped and tested against without caring about message wording.
const (
	// Pattern lexer/parser, §4.1.
	CodeMalformedBrace   = "NURU_P001"
	CodeUnknownModifier  = "NURU_P002"
	CodeInvalidTypeID    = "NURU_P003"

	// Semantic validator, §4.2. Codes are allocated densely; the spec
	// names the rule set as "NURU_S###" without pinning exact numbers
	// per rule, so each rule gets the next free code in rule order.
	CodeMultipleCatchAll       = "NURU_S001"
	CodeCatchAllNotLast        = "NURU_S002"
	CodeConsecutiveOptional    = "NURU_S003"
	CodeRequiredAfterOptional  = "NURU_S004" // warning
	CodeRequiredAfterCatchAll  = "NURU_S005"
	CodeDuplicateOptionForm    = "NURU_S006"
	CodeReservedOptionForm     = "NURU_S007"
	CodeInvalidShortForm       = "NURU_S008"
	CodeDuplicateSeparator     = "NURU_S009"
	CodeSeparatorBeforeOption  = "NURU_S010"
	CodeWhitespaceInLiteral    = "NURU_S011"
	CodeCatchAllOptional       = "NURU_S012"

	// Model combiner + validator, §4.6.
	CodeOverlappingRoutes  = "NURU_R001" // warning
	CodeDuplicateRoute     = "NURU_R002" // error
	CodeUnreachableRoute   = "NURU_R003" // error

	// Handler extraction, §4.5.
	CodeClosureCapture       = "NURU_H001"
	CodeUnsupportedDelegate  = "NURU_H002"

	// DI reachability, §4.6.
	CodeUnresolvedService       = "NURU_D001"
	CodeUnresolvedDependency    = "NURU051"
	CodeUnknownServiceBuilder   = "NURU050" // warning, non-fatal

	// DSL interpretation, §4.3.
	CodeUnknownBuilderMethod          = "NURU_B001"
	CodeBuilderReassigned             = "NURU_B002"
	CodeUnsupportedServiceRegistration = "NURU052"

	// Emission, §4.7.3.
	CodeBuiltinRouteShadowed = "NURU_E001" // warning: user route wins over a built-in flag route
)
