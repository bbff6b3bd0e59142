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

// Package value classifies plain Go values into a small tagged union so type
// checks can switch on a [Kind] instead of probing dynamic types.
package value

import (
	"encoding/json"
	"reflect"
	"time"
)

// Kind identifies the variant held by a [Value].
type Kind uint8

const (
	// KindAbsent marks a key that is not present in its record.
	KindAbsent Kind = iota
	// KindNull marks a present key holding nil.
	KindNull
	KindString
	KindNumber
	KindBoolean
	KindDate
	KindRecord
	KindList
	// KindOther holds anything that fits no other variant (funcs, channels, structs).
	KindOther
)

var kindNames = [...]string{
	KindAbsent:  "absent",
	KindNull:    "null",
	KindString:  "string",
	KindNumber:  "number",
	KindBoolean: "boolean",
	KindDate:    "date",
	KindRecord:  "record",
	KindList:    "list",
	KindOther:   "other",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// Record is a plain key-value record as supplied by callers.
// Nested records may be either Record or map[string]any.
type Record map[string]any

// Get returns the classified value stored under key, or an absent value.
func (r Record) Get(key string) Value {
	raw, ok := r[key]
	if !ok {
		return Absent()
	}

	return Of(raw)
}

// Has reports whether key exists in the record, regardless of its value.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Value is a classified record value.
// The zero Value is absent.
type Value struct {
	kind Kind
	str  string
	num  float64
	bool bool
	date time.Time
	rec  Record
	raw  any
}

// Absent returns the value used for keys missing from a record.
func Absent() Value {
	return Value{kind: KindAbsent}
}

// Of classifies v.
//
// Every Go integer and float kind (including named types over them) and
// well-formed json.Number values classify as [KindNumber]; time.Time and
// non-nil *time.Time as [KindDate]; non-nil maps keyed by string as
// [KindRecord]; slices and arrays other than []byte as [KindList]. Nil maps
// and pointers are [KindNull].
func Of(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{kind: KindNull}
	case string:
		return Value{kind: KindString, str: t, raw: v}
	case bool:
		return Value{kind: KindBoolean, bool: t, raw: v}
	case float64:
		return Value{kind: KindNumber, num: t, raw: v}
	case int:
		return Value{kind: KindNumber, num: float64(t), raw: v}
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{kind: KindOther, raw: v}
		}
		return Value{kind: KindNumber, num: f, raw: v}
	case time.Time:
		return Value{kind: KindDate, date: t, raw: v}
	case *time.Time:
		if t == nil {
			return Value{kind: KindNull, raw: v}
		}
		return Value{kind: KindDate, date: *t, raw: v}
	case Record:
		if t == nil {
			return Value{kind: KindNull, raw: v}
		}
		return Value{kind: KindRecord, rec: t, raw: v}
	case map[string]any:
		if t == nil {
			return Value{kind: KindNull, raw: v}
		}
		return Value{kind: KindRecord, rec: Record(t), raw: v}
	}

	return ofReflect(v)
}

// ofReflect handles named and sized scalar types the fast path does not list.
func ofReflect(v any) Value {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return Value{kind: KindString, str: rv.String(), raw: v}
	case reflect.Bool:
		return Value{kind: KindBoolean, bool: rv.Bool(), raw: v}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value{kind: KindNumber, num: float64(rv.Int()), raw: v}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Value{kind: KindNumber, num: float64(rv.Uint()), raw: v}
	case reflect.Float32, reflect.Float64:
		return Value{kind: KindNumber, num: rv.Float(), raw: v}
	case reflect.Slice:
		if rv.IsNil() {
			return Value{kind: KindNull, raw: v}
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Value{kind: KindOther, raw: v}
		}
		return Value{kind: KindList, raw: v}
	case reflect.Array:
		return Value{kind: KindList, raw: v}
	case reflect.Map:
		if rv.IsNil() {
			return Value{kind: KindNull, raw: v}
		}
		if rv.Type().Key().Kind() == reflect.String {
			rec := make(Record, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				rec[iter.Key().String()] = iter.Value().Interface()
			}
			return Value{kind: KindRecord, rec: rec, raw: v}
		}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Value{kind: KindNull, raw: v}
		}
		return Of(rv.Elem().Interface())
	}

	return Value{kind: KindOther, raw: v}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v stands for a missing key.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Str returns the string payload and whether v is a string.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Number returns the numeric payload as float64 and whether v is a number.
func (v Value) Number() (float64, bool) { return v.num, v.kind == KindNumber }

// Bool returns the boolean payload and whether v is a boolean.
func (v Value) Bool() (bool, bool) { return v.bool, v.kind == KindBoolean }

// Date returns the time payload and whether v is a date.
func (v Value) Date() (time.Time, bool) { return v.date, v.kind == KindDate }

// Record returns the nested record and whether v is a record.
func (v Value) Record() (Record, bool) { return v.rec, v.kind == KindRecord }

// Interface returns the original Go value, or nil for absent values.
func (v Value) Interface() any { return v.raw }

// String describes v for diagnostics.
func (v Value) String() string {
	if v.kind == KindString {
		return v.str
	}

	return v.kind.String()
}
