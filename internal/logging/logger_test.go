// Copyright 2025 The Rivaas Authors
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

package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Handlers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		handler HandlerType
		want    string
	}{
		{handler: JSONHandler, want: `"err":"boom"`},
		{handler: TextHandler, want: "err=boom"},
		{handler: ConsoleHandler, want: "record rejected"},
	}

	for _, tt := range tests {
		t.Run(string(tt.handler), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := New(WithHandlerType(tt.handler), WithOutput(&buf))
			logger.Warn("record rejected", "error", errors.New("boom"))

			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(WithHandlerType(JSONHandler), WithOutput(&buf), WithLevel(slog.LevelWarn))
	logger.Info("hidden")
	assert.Empty(t, buf.String())

	buf.Reset()
	console := New(WithOutput(&buf), WithLevel(slog.LevelDebug))
	console.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseHandlerType(t *testing.T) {
	t.Parallel()

	got, err := ParseHandlerType("json")
	require.NoError(t, err)
	assert.Equal(t, JSONHandler, got)

	_, err = ParseHandlerType("xml")
	require.Error(t, err)
}

func TestNewNop(t *testing.T) {
	t.Parallel()

	logger := NewNop()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}
