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

// Package diag is the diagnostic reporter shared by every pipeline stage.
//
// # Reporting model
//
// A Diagnostic never aborts the pipeline by itself. Parse errors drop the
// offending route; semantic errors drop the offending route; combiner
// duplicate and unreachable errors drop the losing route, while an
// overlap is only a warning and drops nothing. Only a
// Reporter full of nothing but dropped routes still emits an interceptor,
// one that prints help (§7).
package diag
