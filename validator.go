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
	"fmt"
	"slices"

	"github.com/Workpop/typed-validation/schema"
	"github.com/Workpop/typed-validation/value"
)

// Validator checks records against a compiled schema and keeps the field
// errors of its most recent call.
//
// A Validator is not safe for concurrent use: every validation call replaces
// its error set. Build one per goroutine, or share the [schema.Schema] from
// [Validator.Schema] through [NewFromDefinitions].
//
// Example:
//
//	v := typedvalidation.MustNew(`input Signup { email: EmailType }`)
//	if err := v.Validate(rec); err != nil {
//	    msg, _ := v.KeyErrorMessage("email")
//	    fmt.Println(msg)
//	}
type Validator struct {
	cfg    *config
	schema *schema.Schema
	errs   []FieldError
}

// New parses schemaText and returns a [Validator] for it.
// New returns an error wrapping [ErrParse] when the text is not valid SDL, or
// an error when the options are invalid.
//
// Example:
//
//	v, err := typedvalidation.New(sdl, typedvalidation.WithLogger(logger))
//	if err != nil {
//	    return fmt.Errorf("failed to create validator: %w", err)
//	}
func New(schemaText string, opts ...Option) (*Validator, error) {
	defs, err := schema.Parse(schemaText)
	if err != nil {
		return nil, err
	}

	return NewFromDefinitions(defs, opts...)
}

// MustNew is like [New] but panics on error.
//
// Use in main() or init() where panic on startup is acceptable.
func MustNew(schemaText string, opts ...Option) *Validator {
	v, err := New(schemaText, opts...)
	if err != nil {
		panic(fmt.Sprintf("typedvalidation.MustNew: %v", err))
	}

	return v
}

// NewFromDefinitions returns a [Validator] for already parsed definitions.
func NewFromDefinitions(defs []schema.Definition, opts ...Option) (*Validator, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	v := &Validator{cfg: cfg}
	v.schema = schema.Compile(defs,
		schema.WithRecordChecker(recordCheckerFunc(v.checkNested)),
		schema.WithMaxDepth(cfg.maxDepth),
	)

	cfg.logger.Debug("schema compiled",
		"definitions", len(defs),
		"object_types", v.schema.ObjectTypes(),
		"max_depth", cfg.maxDepth,
	)

	return v, nil
}

// recordCheckerFunc adapts a function to [schema.RecordChecker].
type recordCheckerFunc func(rec value.Record, typeName string, depth int) (bool, error)

func (f recordCheckerFunc) CheckRecord(rec value.Record, typeName string, depth int) (bool, error) {
	return f(rec, typeName, depth)
}

// Schema returns the compiled schema.
func (v *Validator) Schema() *schema.Schema {
	return v.schema
}

// NewContext returns v. Validation state lives on the Validator itself.
func (v *Validator) NewContext() *Validator {
	return v
}

// InvalidKeys returns a copy of the field errors of the most recent call.
func (v *Validator) InvalidKeys() []FieldError {
	return slices.Clone(v.errs)
}

// KeyErrorMessage returns the message of the most recent error recorded for
// name, and false when name has no error.
func (v *Validator) KeyErrorMessage(name string) (string, bool) {
	for i := len(v.errs) - 1; i >= 0; i-- {
		if v.errs[i].Name == name {
			return v.errs[i].Message, true
		}
	}

	return "", false
}

// Err returns the field errors of the most recent call as an [*Error], or nil
// when there are none.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}

	return &Error{Fields: slices.Clone(v.errs)}
}
