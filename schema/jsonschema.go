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

package schema

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/Workpop/typed-validation/predicate"
)

// JSON Schema export constants.
const (
	// JSONSchemaDraft is the dialect of exported documents.
	JSONSchemaDraft = "https://json-schema.org/draft/2020-12/schema"

	// phonePattern accepts any string holding exactly ten digits.
	phonePattern = `^\D*(\d\D*){10}$`
)

// JSONSchema renders the expected field set for typeName (the root input
// types when empty) as a JSON Schema document. Every declared field is
// required; declared object types are emitted under "$defs" and referenced
// with "$ref".
//
// The result is plain JSON data (maps, slices and strings) ready for
// json.Marshal.
func (s *Schema) JSONSchema(typeName string) (map[string]any, error) {
	root, ok := s.ExpectedFields(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, typeName)
	}

	doc, err := s.objectSchema(root)
	if err != nil {
		return nil, err
	}
	doc["$schema"] = JSONSchemaDraft
	if typeName != "" {
		doc["title"] = typeName
	}

	if len(s.order) > 0 {
		defs := make(map[string]any, len(s.order))
		for _, name := range s.order {
			def, err := s.objectSchema(s.objects[name])
			if err != nil {
				return nil, fmt.Errorf("type %s: %w", name, err)
			}
			def["title"] = name
			defs[name] = def
		}
		doc["$defs"] = defs
	}

	return doc, nil
}

// CompileJSONSchema compiles the [Schema.JSONSchema] document for typeName
// with format assertions enabled.
func (s *Schema) CompileJSONSchema(typeName string) (*jsonschema.Schema, error) {
	doc, err := s.JSONSchema(typeName)
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat()

	schemaURL := "typed-validation.json"
	if typeName != "" {
		schemaURL = typeName + ".json"
	}
	if err := compiler.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	compiled, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return compiled, nil
}

func (s *Schema) objectSchema(fields FieldTypeMap) (map[string]any, error) {
	props := make(map[string]any, fields.Len())
	required := make([]any, 0, fields.Len())

	for name, tag := range fields.All() {
		prop, err := s.tagSchema(tag)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		props[name] = prop
		required = append(required, name)
	}

	out := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		out["required"] = required
	}

	return out, nil
}

func (s *Schema) tagSchema(tag Tag) (map[string]any, error) {
	switch tag.Kind() {
	case TagString:
		return map[string]any{"type": "string"}, nil
	case TagInt:
		return map[string]any{"type": "number"}, nil
	case TagBoolean:
		return map[string]any{"type": "boolean"}, nil
	case TagDate:
		return map[string]any{"type": "string", "format": "date-time"}, nil
	case TagEmail:
		return map[string]any{"type": "string", "pattern": predicate.EmailPattern}, nil
	case TagPhone:
		return map[string]any{"type": "string", "pattern": phonePattern}, nil
	case TagReference:
		if _, ok := s.objects[tag.Name()]; ok {
			return map[string]any{"$ref": "#/$defs/" + tag.Name()}, nil
		}
	case TagNone:
	}

	return nil, fmt.Errorf("%w: %q", ErrNoValidator, tag.Name())
}
