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
	"maps"
	"slices"

	"github.com/Workpop/typed-validation/predicate"
	"github.com/Workpop/typed-validation/value"
)

// DefaultMaxDepth bounds nested record validation.
const DefaultMaxDepth = 100

// CheckFunc reports whether v satisfies a type. depth is the nesting level of
// the record holding v; root fields are checked at depth 0.
// A non-nil error is a schema fault, not a failed check.
type CheckFunc func(v value.Value, depth int) (bool, error)

// RecordChecker validates a nested record against one declared object type.
// Synthesized object checkers delegate to it.
type RecordChecker interface {
	CheckRecord(rec value.Record, typeName string, depth int) (bool, error)
}

// Schema holds compiled definitions: the type registry (logical key to
// [Tag]) and the function registry ([Tag] to [CheckFunc]).
// A Schema is immutable once [Compile] returns.
type Schema struct {
	defs     []Definition
	types    map[string]Tag
	funcs    map[Tag]CheckFunc
	objects  map[string]FieldTypeMap
	order    []string
	checker  RecordChecker
	maxDepth int
}

// CompileOption configures [Compile].
type CompileOption func(*Schema)

// WithRecordChecker sets the checker that synthesized object checkers delegate to.
// By default the Schema checks nested records itself.
func WithRecordChecker(rc RecordChecker) CompileOption {
	return func(s *Schema) {
		s.checker = rc
	}
}

// WithMaxDepth bounds nested record validation. Values below 1 keep [DefaultMaxDepth].
func WithMaxDepth(depth int) CompileOption {
	return func(s *Schema) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// Compile builds the registries for defs.
//
// The type registry is seeded with string, int, email, boolean, date and
// telephone; the function registry with the matching built-in predicates.
// Every [KindObject] definition then adds its name to the type registry and a
// checker that validates a nested record against that type. Other kinds are
// not registered.
func Compile(defs []Definition, opts ...CompileOption) *Schema {
	s := &Schema{
		defs: slices.Clone(defs),
		types: map[string]Tag{
			"string":    String,
			"int":       Int,
			"email":     Email,
			"boolean":   Boolean,
			"date":      Date,
			"telephone": Phone,
		},
		funcs:    make(map[Tag]CheckFunc, len(builtinTags)),
		objects:  make(map[string]FieldTypeMap),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.checker == nil {
		s.checker = s
	}

	for _, t := range builtinTags {
		s.funcs[t] = lift(builtinPredicate(t.Kind()))
	}

	for _, d := range s.defs {
		if d.Kind != KindObject {
			continue
		}

		// A repeated type name replaces the earlier field set.
		if _, ok := s.objects[d.Name]; !ok {
			s.order = append(s.order, d.Name)
		}
		s.objects[d.Name] = d.FieldTypes()

		tag := Reference(d.Name)
		s.types[d.Name] = tag
		s.funcs[tag] = s.objectCheck(d.Name)
	}

	return s
}

// builtinPredicate maps a built-in tag kind to its predicate.
func builtinPredicate(k TagKind) predicate.Func {
	switch k {
	case TagString:
		return predicate.IsString
	case TagInt:
		return predicate.IsNumber
	case TagBoolean:
		return predicate.IsBoolean
	case TagDate:
		return predicate.IsDate
	case TagEmail:
		return predicate.IsEmail
	case TagPhone:
		return predicate.IsPhone
	case TagNone, TagReference:
		return nil
	}

	return nil
}

func lift(fn predicate.Func) CheckFunc {
	return func(v value.Value, _ int) (bool, error) {
		return fn(v), nil
	}
}

// objectCheck synthesizes the checker for a declared object type.
func (s *Schema) objectCheck(name string) CheckFunc {
	return func(v value.Value, depth int) (bool, error) {
		rec, ok := v.Record()
		if !ok {
			return false, nil
		}
		if depth+1 > s.maxDepth {
			return false, fmt.Errorf("%w: %d levels at type %s", ErrMaxDepth, s.maxDepth, name)
		}

		return s.checker.CheckRecord(rec, name, depth+1)
	}
}

// Definitions returns the compiled definitions in source order.
func (s *Schema) Definitions() []Definition {
	return slices.Clone(s.defs)
}

// MaxDepth returns the nesting bound used by object checkers.
func (s *Schema) MaxDepth() int { return s.maxDepth }

// TypeTag returns the tag registered under a logical key such as "email" or a
// declared object type name.
func (s *Schema) TypeTag(key string) (Tag, bool) {
	t, ok := s.types[key]
	return t, ok
}

// Types returns a copy of the type registry.
func (s *Schema) Types() map[string]Tag {
	return maps.Clone(s.types)
}

// ObjectTypes returns the declared object type names in source order.
func (s *Schema) ObjectTypes() []string {
	return slices.Clone(s.order)
}

// Lookup returns the checker registered for tag.
// It returns an error wrapping [ErrNoValidator] when none is registered.
func (s *Schema) Lookup(tag Tag) (CheckFunc, error) {
	switch tag.Kind() {
	case TagString, TagInt, TagBoolean, TagDate, TagEmail, TagPhone, TagReference:
		if fn, ok := s.funcs[tag]; ok {
			return fn, nil
		}
	case TagNone:
	}

	return nil, fmt.Errorf("%w: %q", ErrNoValidator, tag.Name())
}

// FieldTypeForKey returns the type declared for key across every
// definition regardless of kind. Later definitions overwrite earlier ones;
// the result is empty when no definition declares key.
func (s *Schema) FieldTypeForKey(key string) FieldTypeMap {
	var out FieldTypeMap
	for _, d := range s.defs {
		out.Merge(d.FieldTypes().Pick(key))
	}

	return out
}

// Declares reports whether any definition declares key.
func (s *Schema) Declares(key string) bool {
	return s.FieldTypeForKey(key).Len() > 0
}

// ExpectedFields returns the field set a record must contain.
//
// With an empty typeName it is the merge of every [KindInputObject]
// definition. Otherwise it is the named [KindObject] type, and found is false
// when no such type is declared.
func (s *Schema) ExpectedFields(typeName string) (fields FieldTypeMap, found bool) {
	if typeName != "" {
		m, ok := s.objects[typeName]
		return m, ok
	}

	for _, d := range s.defs {
		if d.Kind == KindInputObject {
			fields.Merge(d.FieldTypes())
		}
	}

	return fields, true
}

// ResolveField returns the tag used to check key. When typeName names an
// object type that declares key, its declaration wins; otherwise the tag comes
// from [Schema.FieldTypeForKey]. The zero tag means no definition declares key.
func (s *Schema) ResolveField(key, typeName string) Tag {
	if typeName != "" {
		if t, ok := s.objects[typeName].Get(key); ok {
			return t
		}
	}

	t, _ := s.FieldTypeForKey(key).Get(key)
	return t
}

// CheckRecord validates rec against typeName without collecting messages.
// It is the default [RecordChecker].
func (s *Schema) CheckRecord(rec value.Record, typeName string, depth int) (bool, error) {
	expected, ok := s.ExpectedFields(typeName)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownType, typeName)
	}

	for name := range expected.All() {
		if !rec.Has(name) {
			return false, nil
		}
	}

	for _, key := range slices.Sorted(maps.Keys(rec)) {
		check, err := s.Lookup(s.ResolveField(key, typeName))
		if err != nil {
			return false, fmt.Errorf("field %q: %w", key, err)
		}
		valid, err := check(rec.Get(key), depth)
		if err != nil {
			return false, err
		}
		if !valid {
			return false, nil
		}
	}

	return true, nil
}
