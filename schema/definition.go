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

import "iter"

// Kind is the definition kind as named by the GraphQL AST.
type Kind string

// Definition kinds.
const (
	KindObject               Kind = "ObjectTypeDefinition"
	KindInputObject          Kind = "InputObjectTypeDefinition"
	KindScalar               Kind = "ScalarTypeDefinition"
	KindInterface            Kind = "InterfaceTypeDefinition"
	KindUnion                Kind = "UnionTypeDefinition"
	KindEnum                 Kind = "EnumTypeDefinition"
	KindObjectExtension      Kind = "ObjectTypeExtension"
	KindInputObjectExtension Kind = "InputObjectTypeExtension"
	KindScalarExtension      Kind = "ScalarTypeExtension"
	KindInterfaceExtension   Kind = "InterfaceTypeExtension"
	KindUnionExtension       Kind = "UnionTypeExtension"
	KindEnumExtension        Kind = "EnumTypeExtension"
)

// Field is one field of a definition.
type Field struct {
	Name string
	// Type is the referenced type name. Non-null markers are dropped
	// ("String!" is "String"); list types keep their printed form ("[String]").
	Type string
}

// Definition is one parsed type definition.
type Definition struct {
	Kind   Kind
	Name   string
	Fields []Field
}

// FieldTypes returns the definition's field type map.
// A field name declared twice keeps its last type.
func (d Definition) FieldTypes() FieldTypeMap {
	var m FieldTypeMap
	for _, f := range d.Fields {
		m.Set(f.Name, TagOf(f.Type))
	}

	return m
}

// FieldTypeMap is an ordered mapping from field name to [Tag].
// The zero value is an empty map ready to use.
type FieldTypeMap struct {
	names []string
	tags  map[string]Tag
}

// Set stores tag under name. A name already present keeps its position.
func (m *FieldTypeMap) Set(name string, tag Tag) {
	if m.tags == nil {
		m.tags = make(map[string]Tag)
	}
	if _, ok := m.tags[name]; !ok {
		m.names = append(m.names, name)
	}
	m.tags[name] = tag
}

// Merge copies every entry of other into m, overwriting on collision.
func (m *FieldTypeMap) Merge(other FieldTypeMap) {
	for _, name := range other.names {
		m.Set(name, other.tags[name])
	}
}

// Get returns the tag stored under name.
func (m FieldTypeMap) Get(name string) (Tag, bool) {
	t, ok := m.tags[name]
	return t, ok
}

// Has reports whether name is declared.
func (m FieldTypeMap) Has(name string) bool {
	_, ok := m.tags[name]
	return ok
}

// Len returns the number of fields.
func (m FieldTypeMap) Len() int { return len(m.names) }

// Names returns the field names in declaration order.
func (m FieldTypeMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)

	return out
}

// Pick returns a map holding only name, or an empty map when name is absent.
func (m FieldTypeMap) Pick(name string) FieldTypeMap {
	var out FieldTypeMap
	if t, ok := m.tags[name]; ok {
		out.Set(name, t)
	}

	return out
}

// All iterates the fields in declaration order.
func (m FieldTypeMap) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		for _, name := range m.names {
			if !yield(name, m.tags[name]) {
				return
			}
		}
	}
}

// Map returns the fields as a plain name to type-name map.
func (m FieldTypeMap) Map() map[string]string {
	out := make(map[string]string, len(m.names))
	for name, t := range m.All() {
		out[name] = t.Name()
	}

	return out
}
