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

// Package predicate implements the built-in field type checks: String, Int,
// Boolean, DateType, EmailType and PhoneType.
//
// String-shaped checks (EmailType, PhoneType) are registered as custom tags on
// a go-playground/validator instance and evaluated with Var, so the same tags
// can be reused by callers that validate structs:
//
//	v := validator.New()
//	_ = predicate.Register(v)
//	err := v.Var("(909) 456-4319", predicate.TagPhone)
package predicate

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Workpop/typed-validation/value"
)

// Func reports whether a value satisfies a type.
type Func func(value.Value) bool

// Custom validator tags registered by [Register].
const (
	TagEmail = "email_type"
	TagPhone = "phone_type"
)

// PhoneDigits is the number of digits a phone number must contain.
const PhoneDigits = 10

// EmailPattern is the pattern an EmailType value must match.
const EmailPattern = `^([a-zA-Z0-9_.+-])+@(([a-zA-Z0-9-])+\.)+([a-zA-Z0-9]{2,4})+$`

var reEmail = regexp.MustCompile(EmailPattern)

var (
	tagValidator     *validator.Validate
	tagValidatorOnce sync.Once
)

// tags returns the shared validator with the custom tags registered.
func tags() *validator.Validate {
	tagValidatorOnce.Do(func() {
		v := validator.New()
		if err := Register(v); err != nil {
			panic(fmt.Sprintf("predicate: %v", err))
		}
		tagValidator = v
	})

	return tagValidator
}

// Register adds the [TagEmail] and [TagPhone] validations to v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(TagEmail, func(fl validator.FieldLevel) bool {
		return reEmail.MatchString(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register %s validator: %w", TagEmail, err)
	}

	if err := v.RegisterValidation(TagPhone, func(fl validator.FieldLevel) bool {
		return countDigits(fl.Field().String()) == PhoneDigits
	}); err != nil {
		return fmt.Errorf("failed to register %s validator: %w", TagPhone, err)
	}

	return nil
}

func countDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}

	return n
}

// IsString reports whether v is a string.
func IsString(v value.Value) bool {
	return v.Kind() == value.KindString
}

// IsNumber reports whether v is numeric. Integers and floats are not distinguished.
func IsNumber(v value.Value) bool {
	return v.Kind() == value.KindNumber
}

// IsBoolean reports whether v is exactly a boolean.
func IsBoolean(v value.Value) bool {
	return v.Kind() == value.KindBoolean
}

// IsDate reports whether v is a time value.
func IsDate(v value.Value) bool {
	return v.Kind() == value.KindDate
}

// IsEmail reports whether v is a non-empty string shaped like local@domain.tld.
func IsEmail(v value.Value) bool {
	return matchTag(v, TagEmail)
}

// IsPhone reports whether v is a non-empty string holding exactly ten digits
// once every non-digit character is ignored.
func IsPhone(v value.Value) bool {
	return matchTag(v, TagPhone)
}

func matchTag(v value.Value, tag string) bool {
	s, ok := v.Str()
	if !ok || s == "" {
		return false
	}

	return tags().Var(s, tag) == nil
}
