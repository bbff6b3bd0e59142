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
	"context"
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/Workpop/typed-validation/config/codec"
)

// Source loads raw settings values.
type Source interface {
	// Load returns the values of the source. Keys are matched case-insensitively.
	Load(ctx context.Context) (map[string]any, error)
}

// fileSource reads a file, or fixed content, in one codec format.
type fileSource struct {
	path    string
	data    []byte
	decoder codec.Decoder
}

func (f *fileSource) Load(context.Context) (map[string]any, error) {
	data := f.data
	if f.path != "" {
		var err error
		data, err = os.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
	}

	var values map[string]any
	if err := f.decoder.Decode(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode file: %w", err)
	}

	return values, nil
}

// envSource reads the process environment variables starting with prefix.
type envSource struct {
	prefix string
}

func (e *envSource) Load(context.Context) (map[string]any, error) {
	lines := make([]string, 0, len(os.Environ()))
	for _, env := range os.Environ() {
		if rest, ok := strings.CutPrefix(env, e.prefix); ok {
			lines = append(lines, rest)
		}
	}

	// Message keys are record field names, which may contain underscores.
	dec := codec.EnvVarCodec{KeepUnderscoresBelow: []string{messagesKey}}

	var values map[string]any
	if err := dec.Decode([]byte(strings.Join(lines, "\n")), &values); err != nil {
		return nil, fmt.Errorf("failed to decode environment variables: %w", err)
	}

	return values, nil
}

// mapSource returns fixed values.
type mapSource map[string]any

func (m mapSource) Load(context.Context) (map[string]any, error) {
	return maps.Clone(map[string]any(m)), nil
}
