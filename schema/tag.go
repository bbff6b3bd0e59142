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

// TagKind enumerates the variants of [Tag].
type TagKind uint8

const (
	// TagNone is the zero tag: a field no definition declares.
	TagNone TagKind = iota
	TagString
	TagInt
	TagBoolean
	TagDate
	TagEmail
	TagPhone
	// TagReference names a type that is not built in, usually a declared object type.
	TagReference
)

// Tag identifies the type check applied to a field.
// Tags are comparable and usable as map keys.
type Tag struct {
	kind TagKind
	name string
}

// Built-in tags.
var (
	String  = Tag{kind: TagString, name: "String"}
	Int     = Tag{kind: TagInt, name: "Int"}
	Boolean = Tag{kind: TagBoolean, name: "Boolean"}
	Date    = Tag{kind: TagDate, name: "DateType"}
	Email   = Tag{kind: TagEmail, name: "EmailType"}
	Phone   = Tag{kind: TagPhone, name: "PhoneType"}
)

var builtinTags = []Tag{String, Int, Boolean, Date, Email, Phone}

// Reference returns the tag for a non-built-in type name.
func Reference(name string) Tag {
	return Tag{kind: TagReference, name: name}
}

// TagOf returns the built-in tag spelled name, or a [Reference] to name.
// An empty name yields the zero tag.
func TagOf(name string) Tag {
	if name == "" {
		return Tag{}
	}
	for _, t := range builtinTags {
		if t.name == name {
			return t
		}
	}

	return Reference(name)
}

// Kind returns the variant of t.
func (t Tag) Kind() TagKind { return t.kind }

// Name returns the type name as written in the schema.
func (t Tag) Name() string { return t.name }

// IsZero reports whether t is the zero tag.
func (t Tag) IsZero() bool { return t.kind == TagNone }

// IsBuiltin reports whether t is one of the six built-in tags.
func (t Tag) IsBuiltin() bool {
	return t.kind > TagNone && t.kind < TagReference
}

// String returns the type name.
func (t Tag) String() string { return t.name }
