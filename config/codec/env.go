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

package codec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// TypeEnvVar identifies environment-style KEY=VALUE lines.
const TypeEnvVar Type = "env_var"

func init() {
	Register(TypeEnvVar, EnvVarCodec{})
}

// ErrEncodeUnsupported is returned by codecs that only decode.
var ErrEncodeUnsupported = errors.New("encoding is not supported")

// EnvVarCodec decodes KEY=VALUE lines into a nested map.
//
// Keys are lowercased. A double underscore starts a nested key and single
// underscores are dropped, so MAX_DEPTH=5 becomes {"maxdepth": "5"} and
// LOG__LEVEL=debug becomes {"log": {"level": "debug"}}. Blank lines and lines
// starting with # are skipped. Values are kept as strings.
type EnvVarCodec struct {
	// KeepUnderscoresBelow lists top-level keys whose nested segments keep
	// their single underscores. With "custommessages" listed,
	// CUSTOM_MESSAGES__FIRST_NAME becomes {"custommessages": {"first_name": ...}}.
	KeepUnderscoresBelow []string
}

// Encode always fails with [ErrEncodeUnsupported].
func (EnvVarCodec) Encode(_ any) ([]byte, error) {
	return nil, fmt.Errorf("env_var: %w", ErrEncodeUnsupported)
}

// Decode parses data into the *map[string]any pointed to by v.
func (c EnvVarCodec) Decode(data []byte, v any) error {
	ptr, ok := v.(*map[string]any)
	if !ok {
		return fmt.Errorf("EnvVarCodec.Decode: expected *map[string]any, got %T", v)
	}

	conf := make(map[string]any)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, val, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		path := c.envPath(key)
		if len(path) == 0 {
			continue
		}

		current := conf
		for _, part := range path[:len(path)-1] {
			next, ok := current[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				current[part] = next
			}
			current = next
		}
		current[path[len(path)-1]] = strings.TrimSpace(val)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to scan env data: %w", err)
	}

	*ptr = conf

	return nil
}

// envPath splits an env key into lowercased path segments.
func (c EnvVarCodec) envPath(key string) []string {
	segments := strings.Split(strings.ToLower(strings.TrimSpace(key)), "__")
	path := make([]string, 0, len(segments))
	for _, seg := range segments {
		if len(path) == 0 || !slices.Contains(c.KeepUnderscoresBelow, path[0]) {
			seg = strings.ReplaceAll(seg, "_", "")
		}
		if seg != "" {
			path = append(path, seg)
		}
	}

	return path
}
