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

// Package logging builds the *slog.Logger used by the command line tool.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// HandlerType selects the output format.
type HandlerType string

// Handler types.
const (
	// ConsoleHandler writes human-readable lines through charmbracelet/log.
	ConsoleHandler HandlerType = "console"
	// JSONHandler writes one JSON object per record.
	JSONHandler HandlerType = "json"
	// TextHandler writes key=value lines.
	TextHandler HandlerType = "text"
)

// ParseHandlerType validates a handler type name.
func ParseHandlerType(s string) (HandlerType, error) {
	switch t := HandlerType(s); t {
	case ConsoleHandler, JSONHandler, TextHandler:
		return t, nil
	}

	return "", fmt.Errorf("unknown log format %q (want console, json or text)", s)
}

type config struct {
	handlerType HandlerType
	output      io.Writer
	level       slog.Level
}

// Option configures [New].
type Option func(*config)

// WithHandlerType sets the output format. The default is [ConsoleHandler].
func WithHandlerType(t HandlerType) Option {
	return func(c *config) { c.handlerType = t }
}

// WithOutput sets the writer. The default is os.Stderr so logs stay apart
// from command output.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.output = w }
}

// WithLevel sets the minimum level.
func WithLevel(level slog.Level) Option {
	return func(c *config) { c.level = level }
}

// New creates the application logger.
// JSON and text output rename the "error" key to "err".
func New(opts ...Option) *slog.Logger {
	c := &config{
		handlerType: ConsoleHandler,
		output:      os.Stderr,
		level:       slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(c)
	}

	handlerOpts := &slog.HandlerOptions{
		Level: c.level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}

	switch c.handlerType {
	case JSONHandler:
		return slog.New(slog.NewJSONHandler(c.output, handlerOpts))
	case TextHandler:
		return slog.New(slog.NewTextHandler(c.output, handlerOpts))
	case ConsoleHandler:
	}

	return slog.New(charmlog.NewWithOptions(c.output, charmlog.Options{
		Level:           charmlog.Level(c.level),
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "typed-validate",
	}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
