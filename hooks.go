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

import "time"

// Op names the validation operation reported in a [ValidateEvent].
type Op string

// Operations.
const (
	OpValidate    Op = "validate"
	OpValidateOne Op = "validate_one"
)

// Result classifies the outcome of a validation call.
type Result string

// Results.
const (
	ResultValid   Result = "valid"
	ResultInvalid Result = "invalid"
	ResultFault   Result = "fault"
)

// ValidateEvent describes one finished validation call.
type ValidateEvent struct {
	Op       Op
	TypeName string // set when ForType was used
	Key      string // set for OpValidateOne
	Result   Result
	Errors   []FieldError
	Fault    error // set when Result is ResultFault
	Duration time.Duration
}

// Hooks are invoked synchronously after each top-level validation call.
// Nested record checks do not trigger hooks. Nil fields are skipped.
type Hooks struct {
	// OnValidate is called once per call.
	OnValidate func(ValidateEvent)
	// OnFieldError is called for each field error, before OnValidate.
	OnFieldError func(FieldError)
}

func (h Hooks) fire(ev ValidateEvent) {
	if h.OnFieldError != nil {
		for _, fe := range ev.Errors {
			h.OnFieldError(fe)
		}
	}
	if h.OnValidate != nil {
		h.OnValidate(ev)
	}
}
