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

package value

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float32

type label string

func TestOf(t *testing.T) {
	t.Parallel()

	now := time.Now()
	var nilTime *time.Time
	var nilMap map[string]any
	var nilRecord Record

	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{name: "nil", in: nil, want: KindNull},
		{name: "string", in: "Yo!", want: KindString},
		{name: "empty string", in: "", want: KindString},
		{name: "named string", in: label("x"), want: KindString},
		{name: "bool", in: false, want: KindBoolean},
		{name: "int", in: 1, want: KindNumber},
		{name: "int64", in: int64(-3), want: KindNumber},
		{name: "uint8", in: uint8(7), want: KindNumber},
		{name: "float64", in: 1.5, want: KindNumber},
		{name: "named float", in: celsius(21.5), want: KindNumber},
		{name: "json number", in: json.Number("42"), want: KindNumber},
		{name: "malformed json number", in: json.Number("abc"), want: KindOther},
		{name: "time", in: now, want: KindDate},
		{name: "time pointer", in: &now, want: KindDate},
		{name: "nil time pointer", in: nilTime, want: KindNull},
		{name: "record", in: Record{"id": "a"}, want: KindRecord},
		{name: "plain map", in: map[string]any{"id": "a"}, want: KindRecord},
		{name: "typed map", in: map[string]int{"n": 1}, want: KindRecord},
		{name: "nil map", in: nilMap, want: KindNull},
		{name: "nil record", in: nilRecord, want: KindNull},
		{name: "nil typed map", in: map[string]int(nil), want: KindNull},
		{name: "slice", in: []any{1, 2}, want: KindList},
		{name: "array", in: [2]int{1, 2}, want: KindList},
		{name: "bytes", in: []byte("raw"), want: KindOther},
		{name: "struct", in: struct{}{}, want: KindOther},
		{name: "func", in: func() {}, want: KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Of(tt.in).Kind())
		})
	}
}

func TestRecordGet(t *testing.T) {
	t.Parallel()

	rec := Record{"title": "Yo!", "count": nil}

	assert.True(t, rec.Get("missing").IsAbsent())
	assert.False(t, rec.Has("missing"))

	assert.True(t, rec.Has("count"))
	assert.Equal(t, KindNull, rec.Get("count").Kind())

	s, ok := rec.Get("title").Str()
	require.True(t, ok)
	assert.Equal(t, "Yo!", s)
}

func TestPayloadAccessors(t *testing.T) {
	t.Parallel()

	n, ok := Of(uint16(9)).Number()
	require.True(t, ok)
	assert.InDelta(t, 9.0, n, 0)

	_, ok = Of("9").Number()
	assert.False(t, ok)

	b, ok := Of(true).Bool()
	require.True(t, ok)
	assert.True(t, b)

	when := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	d, ok := Of(&when).Date()
	require.True(t, ok)
	assert.True(t, d.Equal(when))

	rec, ok := Of(map[string]any{"id": "a"}).Record()
	require.True(t, ok)
	assert.Equal(t, "a", rec["id"])

	assert.Nil(t, Absent().Interface())
	assert.Equal(t, "absent", Absent().String())
	assert.Equal(t, "Yo!", Of("Yo!").String())
	assert.Equal(t, "unknown", Kind(200).String())
}
