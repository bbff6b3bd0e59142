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

// Package schema compiles GraphQL SDL type definitions into field type maps
// and a registry of type checks.
//
// # Definitions
//
// [Parse] turns schema text into a list of [Definition] values. Only object
// (`type`) and input object (`input`) definitions carry meaning; every other
// kind is kept so field lookups can see it, but is never registered:
//
//	defs, err := schema.Parse(`
//		type User { id: String, name: Int }
//		input Signup { title: User, email: EmailType }
//	`)
//
// # Compilation
//
// [Compile] seeds the type registry with the built-in logical keys (string,
// int, email, boolean, date, telephone) and registers one checker per object
// type. Checkers are looked up by [Tag], a closed variant of the six built-in
// tags plus [Reference] for declared type names:
//
//	s := schema.Compile(defs)
//	check, err := s.Lookup(schema.TagOf("User"))
//
// Field types resolve with merge-overwrite semantics: when several
// definitions declare the same field name, the last declaration wins.
//
// # JSON Schema
//
// [Schema.JSONSchema] renders the expected field set of the root input types
// (or one object type) as a draft 2020-12 JSON Schema document.
package schema
