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

package typedvalidation

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Workpop/typed-validation/value"
)

const builtinSDL = `
	input ValidatingTypes {
		title: String
		num: Int
		email: EmailType
		subscribed: Boolean
		createdAt: DateType
		phone: PhoneType
	}
`

const nestedSDL = `
	type User {
		id: String
		name: Int
	}

	input ValidateOneType {
		title: User
	}
`

func validRecord() value.Record {
	return value.Record{
		"title":      "Yo!",
		"num":        1,
		"email":      "abhi@workpop.com",
		"subscribed": false,
		"createdAt":  time.Now(),
		"phone":      "(909) 456-4319",
	}
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	v := MustNew(builtinSDL)
	require.NoError(t, v.Validate(validRecord()))
	assert.Empty(t, v.InvalidKeys())
	require.NoError(t, v.Err())
}

func TestValidate_MissingShortCircuits(t *testing.T) {
	t.Parallel()

	v := MustNew(builtinSDL)
	rec := value.Record{"title": 42, "num": "wrong"}

	err := v.Validate(rec)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrValidation)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"email", "subscribed", "createdAt", "phone"}, verr.Names())
	for _, fe := range verr.Fields {
		assert.Equal(t, CodeRequired, fe.Code)
		assert.Equal(t, fe.Name+" is required", fe.Message)
	}
	assert.False(t, verr.Has("title"), "present fields are not type checked while keys are missing")
}

func TestValidate_NilCountsAsPresent(t *testing.T) {
	t.Parallel()

	v := MustNew(`input Profile { nickname: String }`)

	err := v.Validate(value.Record{"nickname": nil})
	require.Error(t, err)

	fe := v.InvalidKeys()
	require.Len(t, fe, 1)
	assert.Equal(t, CodeType, fe[0].Code)
	assert.Equal(t, "nickname must be a String", fe[0].Message)
}

func TestValidate_TypeErrors(t *testing.T) {
	t.Parallel()

	v := MustNew(builtinSDL)
	rec := validRecord()
	rec["num"] = "1"
	rec["email"] = "abhi@"
	rec["createdAt"] = "2020-01-01"

	err := v.Validate(rec)
	require.ErrorIs(t, err, ErrValidation)

	keys := v.InvalidKeys()
	require.Len(t, keys, 3)
	// Keys are checked in sorted order.
	assert.Equal(t, "createdAt", keys[0].Name)
	assert.Equal(t, "email", keys[1].Name)
	assert.Equal(t, "num", keys[2].Name)

	msg, ok := v.KeyErrorMessage("email")
	require.True(t, ok)
	assert.Equal(t, "email must be a EmailType", msg)
	assert.Equal(t, "EmailType", keys[1].Tag)

	_, ok = v.KeyErrorMessage("title")
	assert.False(t, ok)
}

func TestValidate_AggregateIsNotLastField(t *testing.T) {
	t.Parallel()

	v := MustNew(`input Pair { alpha: Int, beta: String }`)

	// alpha fails and beta, checked last, passes.
	err := v.Validate(value.Record{"alpha": "x", "beta": "ok"})
	require.Error(t, err)
	assert.Len(t, v.InvalidKeys(), 1)
}

func TestValidate_RecoveryAndIdempotence(t *testing.T) {
	t.Parallel()

	v := MustNew(`input ValidatingTypes { num: String }`)

	bad := value.Record{"num": 1}
	require.Error(t, v.Validate(bad))
	first := v.InvalidKeys()
	require.Len(t, first, 1)
	assert.Equal(t, "num", first[0].Name)

	require.Error(t, v.Validate(bad))
	assert.Equal(t, first, v.InvalidKeys())

	require.NoError(t, v.Validate(value.Record{"num": "1"}))
	assert.Empty(t, v.InvalidKeys())
	_, ok := v.KeyErrorMessage("num")
	assert.False(t, ok)
}

func TestValidate_Nested(t *testing.T) {
	t.Parallel()

	v := MustNew(nestedSDL)

	tests := []struct {
		name    string
		rec     value.Record
		wantErr bool
	}{
		{
			name: "valid nested record",
			rec:  value.Record{"title": map[string]any{"id": "Yo!", "name": 1}},
		},
		{
			name:    "nested type mismatch",
			rec:     value.Record{"title": map[string]any{"id": "Yo!", "name": "one"}},
			wantErr: true,
		},
		{
			name:    "nested missing field",
			rec:     value.Record{"title": map[string]any{"id": "Yo!"}},
			wantErr: true,
		},
		{
			name:    "scalar instead of record",
			rec:     value.Record{"title": "Yo!"},
			wantErr: true,
		},
		{
			name: "nested value.Record",
			rec:  value.Record{"title": value.Record{"id": "Yo!", "name": 2.5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := MustNew(nestedSDL)
			err := v.Validate(tt.rec)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidation)
			keys := v.InvalidKeys()
			require.Len(t, keys, 1)
			assert.Equal(t, "title", keys[0].Name)
			assert.Equal(t, "title must be a User", keys[0].Message)
		})
	}

	require.NoError(t, v.Validate(value.Record{"title": map[string]any{"id": "a", "name": 1}}))
}

func TestValidate_ForType(t *testing.T) {
	t.Parallel()

	v := MustNew(`
		type User { id: String, name: Int }
		input Rename { name: String }
	`)

	require.NoError(t, v.Validate(value.Record{"id": "u1", "name": 7}, ForType("User")))

	err := v.Validate(value.Record{"id": "u1"}, ForType("User"))
	require.ErrorIs(t, err, ErrValidation)
	msg, ok := v.KeyErrorMessage("name")
	require.True(t, ok)
	assert.Equal(t, "name is required", msg)

	// Without ForType, name resolves to the later input declaration.
	require.NoError(t, v.Validate(value.Record{"name": "Bob"}))

	err = v.Validate(value.Record{}, ForType("Missing"))
	require.ErrorIs(t, err, ErrUnknownType)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestValidate_UndeclaredKeyIsFault(t *testing.T) {
	t.Parallel()

	v := MustNew(`input Form { a: Int, c: String }`)

	err := v.Validate(value.Record{"a": "wrong", "b": true, "c": "ok"})
	require.ErrorIs(t, err, ErrNoValidator)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), `"b"`)

	// Records collected before the fault are kept.
	keys := v.InvalidKeys()
	require.Len(t, keys, 1)
	assert.Equal(t, "a", keys[0].Name)
}

func TestValidate_ListTypeIsFault(t *testing.T) {
	t.Parallel()

	v := MustNew(`input Tags { tags: [String] }`)
	err := v.Validate(value.Record{"tags": []string{"a"}})
	require.ErrorIs(t, err, ErrNoValidator)
}

func TestValidate_RedeclaredObjectType(t *testing.T) {
	t.Parallel()

	v := MustNew(`
		type User { id: String }
		type User { name: Int }
		input Post { title: User }
	`)

	require.NoError(t, v.Validate(value.Record{"title": map[string]any{"name": 1}}))
	require.Error(t, v.Validate(value.Record{"title": map[string]any{"id": "u1"}}))
}

func TestValidate_NilMapIsNotARecord(t *testing.T) {
	t.Parallel()

	v := MustNew(`
		type Empty
		input Wrapper { box: Empty }
	`)
	require.NoError(t, v.Validate(value.Record{"box": map[string]any{}}))

	var nilMap map[string]any
	err := v.Validate(value.Record{"box": nilMap})
	require.Error(t, err)

	msg, ok := v.KeyErrorMessage("box")
	require.True(t, ok)
	assert.Equal(t, "box must be a Empty", msg)
}

func TestValidate_MalformedJSONNumber(t *testing.T) {
	t.Parallel()

	v := MustNew(`input Counter { n: Int }`)
	require.NoError(t, v.Validate(value.Record{"n": json.Number("12")}))

	err := v.Validate(value.Record{"n": json.Number("abc")})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.HasCode(CodeType))
}

func TestValidate_NonNullResolvesToBaseType(t *testing.T) {
	t.Parallel()

	v := MustNew(`input Named { name: String! }`)
	require.NoError(t, v.Validate(value.Record{"name": "x"}))
	require.Error(t, v.Validate(value.Record{"name": 1}))
}

func TestValidate_MaxDepth(t *testing.T) {
	t.Parallel()

	v := MustNew(`
		type Node { next: Node }
		input Root { head: Node }
	`, WithMaxDepth(2))

	rec := value.Record{"head": map[string]any{"next": map[string]any{"next": map[string]any{"next": "end"}}}}
	err := v.Validate(rec)
	require.ErrorIs(t, err, ErrMaxDepth)
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestValidate_CustomMessages(t *testing.T) {
	t.Parallel()

	v := MustNew(`input Contact { email: EmailType, phone: PhoneType }`,
		WithCustomMessages(map[string]string{"email": "Please enter a valid email"}),
		WithCustomMessage("phone", "Phone numbers have ten digits"),
	)

	require.Error(t, v.Validate(value.Record{"phone": "123"}))
	msg, ok := v.KeyErrorMessage("email")
	require.True(t, ok)
	assert.Equal(t, "Please enter a valid email", msg)

	require.Error(t, v.Validate(value.Record{"email": "a@b.com", "phone": "123"}))
	msg, ok = v.KeyErrorMessage("phone")
	require.True(t, ok)
	assert.Equal(t, "Phone numbers have ten digits", msg)
}

func TestValidateOne(t *testing.T) {
	t.Parallel()

	v := MustNew(builtinSDL)
	rec := validRecord()

	for _, key := range []string{"title", "num", "email", "subscribed", "createdAt", "phone"} {
		require.NoError(t, v.ValidateOne(rec, key), key)
	}

	rec["phone"] = "456-4319"
	err := v.ValidateOne(rec, "phone")
	require.ErrorIs(t, err, ErrValidation)
	keys := v.InvalidKeys()
	require.Len(t, keys, 1)
	assert.Equal(t, CodeType, keys[0].Code)
	assert.Equal(t, "phone must be a PhoneType", keys[0].Message)
}

func TestValidateOne_AbsentKey(t *testing.T) {
	t.Parallel()

	v := MustNew(builtinSDL)

	err := v.ValidateOne(value.Record{}, "title")
	require.ErrorIs(t, err, ErrValidation)

	keys := v.InvalidKeys()
	require.Len(t, keys, 1)
	assert.Equal(t, CodeRequired, keys[0].Code)

	msg, ok := v.KeyErrorMessage("title")
	require.True(t, ok)
	assert.Equal(t, "title is required", msg)
}

func TestValidateOne_Faults(t *testing.T) {
	t.Parallel()

	v := MustNew(builtinSDL)

	require.Error(t, v.ValidateOne(value.Record{"num": "x"}, "num"))
	require.Len(t, v.InvalidKeys(), 1)

	err := v.ValidateOne(value.Record{"title": "x"}, "")
	require.ErrorIs(t, err, ErrKeyRequired)
	assert.Len(t, v.InvalidKeys(), 1, "misuse leaves the error set untouched")

	err = v.ValidateOne(value.Record{"unknown": 1}, "unknown")
	require.ErrorIs(t, err, ErrNoValidator)
	assert.Empty(t, v.InvalidKeys())
}

func TestValidateOne_ClearsPreviousErrors(t *testing.T) {
	t.Parallel()

	v := MustNew(builtinSDL)
	require.Error(t, v.Validate(value.Record{}))
	require.NotEmpty(t, v.InvalidKeys())

	require.NoError(t, v.ValidateOne(validRecord(), "title"))
	assert.Empty(t, v.InvalidKeys())
}

func TestHooks(t *testing.T) {
	t.Parallel()

	var (
		events []ValidateEvent
		fields []FieldError
	)
	v := MustNew(builtinSDL, WithHooks(Hooks{
		OnValidate:   func(ev ValidateEvent) { events = append(events, ev) },
		OnFieldError: func(fe FieldError) { fields = append(fields, fe) },
	}))

	require.NoError(t, v.Validate(validRecord()))
	require.Error(t, v.ValidateOne(value.Record{}, "num"))
	require.Error(t, v.Validate(value.Record{"nope": 1, "title": "", "num": 1, "email": "a@b.co",
		"subscribed": true, "createdAt": time.Now(), "phone": "9094564319"}))

	require.Len(t, events, 3)
	assert.Equal(t, OpValidate, events[0].Op)
	assert.Equal(t, ResultValid, events[0].Result)

	assert.Equal(t, OpValidateOne, events[1].Op)
	assert.Equal(t, "num", events[1].Key)
	assert.Equal(t, ResultInvalid, events[1].Result)

	assert.Equal(t, ResultFault, events[2].Result)
	require.ErrorIs(t, events[2].Fault, ErrNoValidator)

	require.Len(t, fields, 1)
	assert.Equal(t, "num", fields[0].Name)
}
