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
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Registry holds the registered encoders and decoders.
type Registry struct {
	mu       sync.RWMutex
	encoders map[Type]Encoder
	decoders map[Type]Decoder
}

var registry = &Registry{
	encoders: make(map[Type]Encoder),
	decoders: make(map[Type]Decoder),
}

// extensionTypes maps file extensions to codec types for format detection.
var extensionTypes = map[string]Type{
	".json": TypeJSON,
	".yaml": TypeYAML,
	".yml":  TypeYAML,
	".toml": TypeTOML,
	".env":  TypeEnvVar,
}

// Register registers c as both encoder and decoder for name.
func Register(name Type, c Codec) {
	RegisterEncoder(name, c)
	RegisterDecoder(name, c)
}

// RegisterEncoder registers an encoder for the given type.
func RegisterEncoder(name Type, encoder Encoder) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.encoders[name] = encoder
}

// RegisterDecoder registers a decoder for the given type.
func RegisterDecoder(name Type, decoder Decoder) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.decoders[name] = decoder
}

// GetEncoder retrieves the registered encoder for the given type.
func GetEncoder(name Type) (Encoder, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	encoder, exists := registry.encoders[name]
	if !exists {
		return nil, fmt.Errorf("encoder not found for type: %s", name)
	}

	return encoder, nil
}

// GetDecoder retrieves the registered decoder for the given type.
func GetDecoder(name Type) (Decoder, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	decoder, exists := registry.decoders[name]
	if !exists {
		return nil, fmt.Errorf("decoder not found for type: %s", name)
	}

	return decoder, nil
}

// Decoders returns the registered decoder types, sorted.
func Decoders() []Type {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	return slices.Sorted(maps.Keys(registry.decoders))
}

// TypeFromPath detects the codec type from the extension of path.
func TypeFromPath(path string) (Type, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := extensionTypes[ext]; ok {
		return t, nil
	}

	return "", fmt.Errorf("cannot detect format from extension %q of %s", ext, path)
}

// DecodeMap decodes data of format t into a string-keyed map.
func DecodeMap(t Type, data []byte) (map[string]any, error) {
	dec, err := GetDecoder(t)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := dec.Decode(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", t, err)
	}
	if out == nil {
		out = make(map[string]any)
	}

	return out, nil
}
