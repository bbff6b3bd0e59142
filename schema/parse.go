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
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// sourceName labels parse errors.
const sourceName = "schema.graphql"

// Parse parses GraphQL SDL text into definitions, in source order.
// Type extensions are returned with their *Extension kind.
//
// Parse only checks syntax: references to undeclared types (EmailType,
// PhoneType, DateType) are accepted.
func Parse(sdl string) ([]Definition, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: sourceName, Input: sdl})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	type positioned struct {
		def Definition
		pos int
	}

	all := make([]positioned, 0, len(doc.Definitions)+len(doc.Extensions))
	for _, d := range doc.Definitions {
		all = append(all, positioned{def: convertDefinition(d, false), pos: offset(d)})
	}
	for _, d := range doc.Extensions {
		all = append(all, positioned{def: convertDefinition(d, true), pos: offset(d)})
	}

	slices.SortStableFunc(all, func(a, b positioned) int {
		return cmp.Compare(a.pos, b.pos)
	})

	defs := make([]Definition, len(all))
	for i, p := range all {
		defs[i] = p.def
	}

	return defs, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(sdl string) []Definition {
	defs, err := Parse(sdl)
	if err != nil {
		panic(fmt.Sprintf("schema.MustParse: %v", err))
	}

	return defs
}

func offset(d *ast.Definition) int {
	if d.Position == nil {
		return 0
	}

	return d.Position.Start
}

func convertDefinition(d *ast.Definition, extension bool) Definition {
	def := Definition{
		Kind:   kindOf(d.Kind, extension),
		Name:   d.Name,
		Fields: make([]Field, 0, len(d.Fields)),
	}
	for _, f := range d.Fields {
		def.Fields = append(def.Fields, Field{Name: f.Name, Type: typeName(f.Type)})
	}

	return def
}

func kindOf(k ast.DefinitionKind, extension bool) Kind {
	var kind Kind
	switch k {
	case ast.Object:
		kind = KindObject
	case ast.InputObject:
		kind = KindInputObject
	case ast.Scalar:
		kind = KindScalar
	case ast.Interface:
		kind = KindInterface
	case ast.Union:
		kind = KindUnion
	case ast.Enum:
		kind = KindEnum
	default:
		kind = Kind(k)
	}

	if extension {
		kind = Kind(strings.Replace(string(kind), "Definition", "Extension", 1))
	}

	return kind
}

// typeName flattens a field type to the name used for tag lookup.
func typeName(t *ast.Type) string {
	if t == nil {
		return ""
	}
	if t.Elem != nil {
		return t.String()
	}

	return t.NamedType
}
