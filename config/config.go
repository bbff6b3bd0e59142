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
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/cast"

	"github.com/Workpop/typed-validation/config/codec"
)

// messagesKey is the normalized key whose children keep their case.
const messagesKey = "custommessages"

//go:embed settings.schema.json
var settingsSchemaJSON []byte

var (
	settingsSchema     *jsonschema.Schema
	settingsSchemaErr  error
	settingsSchemaOnce sync.Once
)

// compiledSettingsSchema compiles the embedded settings JSON Schema once.
func compiledSettingsSchema() (*jsonschema.Schema, error) {
	settingsSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(settingsSchemaJSON))
		if err != nil {
			settingsSchemaErr = fmt.Errorf("failed to parse settings schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err = compiler.AddResource("settings.schema.json", doc); err != nil {
			settingsSchemaErr = fmt.Errorf("failed to add settings schema: %w", err)
			return
		}

		settingsSchema, settingsSchemaErr = compiler.Compile("settings.schema.json")
	})

	return settingsSchema, settingsSchemaErr
}

// loader collects the sources and validators of one [Load] call.
type loader struct {
	sources    []Source
	validators []func(map[string]any) error
}

// Option configures [Load].
type Option func(*loader) error

// WithSource adds a custom source. Later sources override earlier ones.
func WithSource(src Source) Option {
	return func(l *loader) error {
		if src == nil {
			return NewError("source", "configure", errors.New("source must not be nil"))
		}
		l.sources = append(l.sources, src)

		return nil
	}
}

// WithFile adds a settings file. The format is detected from the extension
// (.json, .yaml, .yml, .toml, .env). Environment variables in path are expanded.
//
// Example:
//
//	settings, err := config.Load(ctx,
//	    config.WithFile("typed-validate.yaml"),
//	    config.WithEnv("TYPED_VALIDATION_"),
//	)
func WithFile(path string) Option {
	return func(l *loader) error {
		path = os.ExpandEnv(path)

		format, err := codec.TypeFromPath(path)
		if err != nil {
			return NewError("file-source", "detect-format", err)
		}

		return WithFileAs(path, format)(l)
	}
}

// WithFileAs adds a settings file decoded with codecType.
func WithFileAs(path string, codecType codec.Type) Option {
	return func(l *loader) error {
		decoder, err := codec.GetDecoder(codecType)
		if err != nil {
			return NewError("file-source", "get-decoder", err)
		}
		l.sources = append(l.sources, &fileSource{path: os.ExpandEnv(path), decoder: decoder})

		return nil
	}
}

// WithContent adds in-memory settings decoded with codecType.
func WithContent(data []byte, codecType codec.Type) Option {
	return func(l *loader) error {
		decoder, err := codec.GetDecoder(codecType)
		if err != nil {
			return NewError("content-source", "get-decoder", err)
		}
		l.sources = append(l.sources, &fileSource{data: data, decoder: decoder})

		return nil
	}
}

// WithEnv adds the environment variables starting with prefix. The prefix is
// stripped; a double underscore nests and single underscores are dropped, so
// with prefix "TV_", TV_MAX_DEPTH sets maxDepth and TV_LOG__LEVEL sets
// log.level. Message keys read from the environment are lowercased but keep
// their underscores: TV_CUSTOM_MESSAGES__FIRST_NAME sets the message of
// first_name.
func WithEnv(prefix string) Option {
	return func(l *loader) error {
		l.sources = append(l.sources, &envSource{prefix: prefix})
		return nil
	}
}

// WithValues adds fixed values, typically command line flags.
func WithValues(values map[string]any) Option {
	return func(l *loader) error {
		l.sources = append(l.sources, mapSource(values))
		return nil
	}
}

// WithValidator adds a check run on the merged raw values after schema validation.
func WithValidator(fn func(map[string]any) error) Option {
	return func(l *loader) error {
		if fn == nil {
			return NewError("validator", "configure", errors.New("validator must not be nil"))
		}
		l.validators = append(l.validators, fn)

		return nil
	}
}

// Load merges the configured sources in order, validates the result against
// the settings JSON Schema and binds it to [Settings].
//
// Errors:
//   - Returns [*Error] if an option is invalid or a source fails to load
//   - Returns [*Error] if schema, custom or settings validation fails
//   - Returns [*Error] if binding fails
func Load(ctx context.Context, opts ...Option) (*Settings, error) {
	if ctx == nil {
		return nil, errors.New("context cannot be nil")
	}

	l := &loader{}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	values, err := l.merge(ctx)
	if err != nil {
		return nil, err
	}

	compiled, err := compiledSettingsSchema()
	if err != nil {
		return nil, NewError("json-schema", "compile", err)
	}
	if err = compiled.Validate(values); err != nil {
		return nil, NewError("json-schema", "validate", err)
	}

	for i, fn := range l.validators {
		if err = runValidator(fn, values); err != nil {
			return nil, NewError(fmt.Sprintf("custom-validator[%d]", i), "validate", err)
		}
	}

	settings := Defaults()
	if err = bind(values, settings); err != nil {
		return nil, NewError("binding", "bind", err)
	}
	if err = settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// MustLoad is like [Load] but panics on error.
func MustLoad(ctx context.Context, opts ...Option) *Settings {
	s, err := Load(ctx, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

func runValidator(fn func(map[string]any) error, values map[string]any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("validator panic: %v", r)
		}
	}()

	return fn(values)
}

// merge loads every source in order, later sources overriding earlier ones.
func (l *loader) merge(ctx context.Context) (map[string]any, error) {
	merged := make(map[string]any)
	for i, src := range l.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		values, err := src.Load(ctx)
		if err != nil {
			return nil, NewError(fmt.Sprintf("source[%d]", i), "load", err)
		}
		if values == nil {
			continue
		}

		if err = mergo.Map(&merged, normalizeKeys(values, false), mergo.WithOverride); err != nil {
			return nil, NewError(fmt.Sprintf("source[%d]", i), "merge", err)
		}
	}

	return merged, nil
}

// normalizeKeys lowercases keys recursively. Keys below custommessages are
// record field names and keep their case.
func normalizeKeys(m map[string]any, keepCase bool) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		key := k
		if !keepCase {
			key = strings.ToLower(k)
		}
		if nested, ok := v.(map[string]any); ok {
			out[key] = normalizeKeys(nested, keepCase || key == messagesKey)
			continue
		}
		out[key] = v
	}

	return out
}

// bind decodes values into s with mapstructure, matching keys to the
// "config" struct tags case-insensitively.
func bind(values map[string]any, s *Settings) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.DecodeHookFuncType(castStringMapHook),
		Result:           s,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err = decoder.Decode(values); err != nil {
		return fmt.Errorf("failed to decode settings: %w", err)
	}

	return nil
}

var stringMapType = reflect.TypeFor[map[string]string]()

// castStringMapHook converts message maps with spf13/cast so numbers and
// booleans become their string form.
func castStringMapHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != stringMapType {
		return data, nil
	}

	return cast.ToStringMapStringE(data)
}
