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
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/Workpop/typed-validation/schema"
)

// ErrValidation is a sentinel error for data validation failures.
// Use errors.Is(err, ErrValidation) to tell bad data apart from faults.
var ErrValidation = errors.New("validation")

// Faults. These are returned for API misuse or an incomplete schema and never
// wrap [ErrValidation].
var (
	// ErrKeyRequired is returned by [Validator.ValidateOne] when called with an empty key.
	ErrKeyRequired = errors.New("key is required")

	// ErrNoValidator is returned when a record key resolves to no registered type check.
	ErrNoValidator = schema.ErrNoValidator

	// ErrMaxDepth is returned when nested records exceed the configured depth.
	ErrMaxDepth = schema.ErrMaxDepth

	// ErrUnknownType is returned when [ForType] names an undeclared object type.
	ErrUnknownType = schema.ErrUnknownType

	// ErrParse is returned by [New] when the schema text is not valid SDL.
	ErrParse = schema.ErrParse
)

// Field error codes.
const (
	// CodeRequired marks a declared field missing from the record.
	CodeRequired = "required"
	// CodeType marks a present field whose value fails its type check.
	CodeType = "type"
)

// FieldError describes one invalid field.
// Multiple FieldError values are collected in an [Error].
type FieldError struct {
	Name    string `json:"name"`          // Field name as it appears in the record
	Message string `json:"message"`       // Human-readable message, possibly customized
	Code    string `json:"code"`          // CodeRequired or CodeType
	Tag     string `json:"tag,omitempty"` // Expected type, e.g. "EmailType"
}

// Error returns the message.
func (e FieldError) Error() string {
	return e.Message
}

// Unwrap returns [ErrValidation] for errors.Is/errors.As compatibility.
func (e FieldError) Unwrap() error {
	return ErrValidation
}

// HTTPStatus reports 422 Unprocessable Entity.
func (e FieldError) HTTPStatus() int {
	return http.StatusUnprocessableEntity
}

// Error aggregates the field errors produced by one validation call.
//
// Example:
//
//	var verr *typedvalidation.Error
//	if errors.As(err, &verr) {
//	    for _, fe := range verr.Fields {
//	        fmt.Printf("%s: %s\n", fe.Name, fe.Message)
//	    }
//	}
//
//nolint:recvcheck // Error uses value receivers for the error interface, Sort mutates
type Error struct {
	Fields []FieldError `json:"errors"`
}

// Error returns a formatted error message.
func (v Error) Error() string {
	switch len(v.Fields) {
	case 0:
		return ""
	case 1:
		return v.Fields[0].Error()
	}

	msgs := make([]string, 0, len(v.Fields))
	for _, fe := range v.Fields {
		msgs = append(msgs, fe.Error())
	}

	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// Unwrap returns [ErrValidation] for errors.Is/errors.As compatibility.
func (v Error) Unwrap() error {
	return ErrValidation
}

// HTTPStatus reports 422 Unprocessable Entity.
func (v Error) HTTPStatus() int {
	return http.StatusUnprocessableEntity
}

// Details returns the field errors.
func (v Error) Details() any {
	return v.Fields
}

// Code returns the stable machine-readable code.
func (v Error) Code() string {
	return "validation_error"
}

// Has reports whether the named field has an error.
func (v Error) Has(name string) bool {
	return v.Get(name) != nil
}

// HasCode reports whether any field error carries code.
func (v Error) HasCode(code string) bool {
	for _, fe := range v.Fields {
		if fe.Code == code {
			return true
		}
	}

	return false
}

// Get returns the last [FieldError] recorded for name, or nil.
func (v Error) Get(name string) *FieldError {
	for i := len(v.Fields) - 1; i >= 0; i-- {
		if v.Fields[i].Name == name {
			fe := v.Fields[i]
			return &fe
		}
	}

	return nil
}

// Names returns the names of the invalid fields in record order.
func (v Error) Names() []string {
	names := make([]string, 0, len(v.Fields))
	for _, fe := range v.Fields {
		names = append(names, fe.Name)
	}

	return names
}

// Sort sorts errors by name, then by code.
func (v *Error) Sort() {
	sort.SliceStable(v.Fields, func(i, j int) bool {
		if v.Fields[i].Name != v.Fields[j].Name {
			return v.Fields[i].Name < v.Fields[j].Name
		}

		return v.Fields[i].Code < v.Fields[j].Code
	})
}
