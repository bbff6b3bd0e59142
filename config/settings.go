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

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	typedvalidation "github.com/Workpop/typed-validation"
	"github.com/Workpop/typed-validation/schema"
)

// ErrNoSchema is returned when neither schema nor schemaFile is set.
var ErrNoSchema = errors.New("no schema configured")

// Settings configures a validator and the command line tool.
type Settings struct {
	// Schema is inline SDL text. It takes precedence over SchemaFile.
	Schema string `config:"schema"`
	// SchemaFile is the path of an SDL file.
	SchemaFile string `config:"schemaFile"`
	// CustomMessages replaces the default message of the listed fields.
	CustomMessages map[string]string `config:"customMessages"`
	// MaxDepth bounds nested record validation.
	MaxDepth int         `config:"maxDepth"`
	Log      LogSettings `config:"log"`
}

// LogSettings configures logging.
type LogSettings struct {
	// Level is a slog level name: debug, info, warn or error.
	Level string `config:"level"`
}

// Defaults returns the settings used for keys no source sets.
func Defaults() *Settings {
	return &Settings{
		MaxDepth: schema.DefaultMaxDepth,
		Log:      LogSettings{Level: "info"},
	}
}

// Validate checks the bound settings.
func (s *Settings) Validate() error {
	if s.MaxDepth < 1 {
		return NewFieldError("settings", "maxDepth", "validate",
			fmt.Errorf("must be positive, got %d", s.MaxDepth))
	}
	if _, err := s.LogLevel(); err != nil {
		return NewFieldError("settings", "log.level", "validate", err)
	}

	return nil
}

// LogLevel parses Log.Level. Names are case-insensitive and may carry an
// offset such as "warn+2".
func (s *Settings) LogLevel() (slog.Level, error) {
	var level slog.Level
	if s.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s.Log.Level)); err != nil {
		return 0, err
	}

	return level, nil
}

// SchemaText returns the inline schema, or reads SchemaFile.
func (s *Settings) SchemaText() (string, error) {
	if s.Schema != "" {
		return s.Schema, nil
	}
	if s.SchemaFile == "" {
		return "", ErrNoSchema
	}

	data, err := os.ReadFile(os.ExpandEnv(s.SchemaFile))
	if err != nil {
		return "", NewFieldError("settings", "schemaFile", "read", err)
	}

	return string(data), nil
}

// Options returns the validator options the settings describe.
func (s *Settings) Options() []typedvalidation.Option {
	opts := []typedvalidation.Option{typedvalidation.WithMaxDepth(s.MaxDepth)}
	if len(s.CustomMessages) > 0 {
		opts = append(opts, typedvalidation.WithCustomMessages(s.CustomMessages))
	}

	return opts
}

// NewValidator builds a validator from the settings. extra options are
// applied after the ones from [Settings.Options].
func (s *Settings) NewValidator(extra ...typedvalidation.Option) (*typedvalidation.Validator, error) {
	text, err := s.SchemaText()
	if err != nil {
		return nil, err
	}

	return typedvalidation.New(text, append(s.Options(), extra...)...)
}
