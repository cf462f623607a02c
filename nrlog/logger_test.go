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

package nrlog_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timewarp-nuru/nuruc/diag"
	"github.com/timewarp-nuru/nuruc/nrlog"
)

func TestLogger_JSONHandlerEmitsStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := nrlog.New(nrlog.WithHandlerType(nrlog.JSONHandler), nrlog.WithOutput(&buf))

	logger.Info("compiled route", "pattern", "deploy {env}")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "compiled route", record["msg"])
	assert.Equal(t, "deploy {env}", record["pattern"])
}

func TestLogger_LevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	logger := nrlog.New(
		nrlog.WithHandlerType(nrlog.JSONHandler),
		nrlog.WithOutput(&buf),
		nrlog.WithLevel(slog.LevelWarn),
	)

	logger.Info("suppressed")
	assert.Empty(t, buf.Bytes())

	logger.Warn("kept")
	assert.NotEmpty(t, buf.Bytes())
}

func TestLogger_LogDiagnostic_SeverityMapsToLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := nrlog.New(nrlog.WithHandlerType(nrlog.JSONHandler), nrlog.WithOutput(&buf))

	logger.LogDiagnostic(diag.Errorf(diag.CodeMultipleCatchAll, diag.Span{File: "routes.cs", Line: 12}, "bad route"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "routes.cs", record["file"])
}

func TestLogger_With_ScopesSubsequentRecords(t *testing.T) {
	var buf bytes.Buffer
	base := nrlog.New(nrlog.WithHandlerType(nrlog.JSONHandler), nrlog.WithOutput(&buf))
	scoped := base.With("stage", "pattern-lexer")

	scoped.Info("tokenized")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "pattern-lexer", record["stage"])
}
