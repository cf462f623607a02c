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

package ir

// SortRoutesBySpecificity orders routes by descending Specificity,
// breaking ties by ascending Order (declaration index), matching
// router/compiler.RouteCompiler.sortRoutesBySpecificity's
// most-specific-first insertion sort generalized from a single
// static-segment count to the full Σ-of-contributions score.
func SortRoutesBySpecificity(routes []RouteDefinition) {
	for i := 1; i < len(routes); i++ {
		key := routes[i]
		j := i - 1
		for j >= 0 && less(routes[j], key) {
			routes[j+1] = routes[j]
			j--
		}
		routes[j+1] = key
	}
}

// less reports whether a sorts after b in the target order, i.e.
// whether b is more specific than a (or equally specific but declared
// earlier), meaning a must move right of b during insertion.
func less(a, b RouteDefinition) bool {
	if a.Specificity != b.Specificity {
		return a.Specificity < b.Specificity
	}
	return a.Order > b.Order
}
