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

// Package typedvalidation validates plain key-value records against types
// declared in GraphQL schema definition language.
//
// # Getting Started
//
// Declare the record shape once and check records against it:
//
//	v := typedvalidation.MustNew(`
//		input Signup {
//			email: EmailType
//			phone: PhoneType
//			age: Int
//		}
//	`)
//
//	err := v.Validate(map[string]any{"email": "john@", "phone": "456-4319", "age": 30})
//	var verr *typedvalidation.Error
//	if errors.As(err, &verr) {
//		for _, fe := range verr.Fields {
//			fmt.Println(fe.Message) // "email must be a EmailType", ...
//		}
//	}
//
// # Types
//
// Fields may use the built-in types String, Int (any number), Boolean,
// DateType (time.Time), EmailType and PhoneType (a string holding exactly
// ten digits), or any object type declared with "type". A field of an object
// type accepts a nested record that itself validates against that type.
//
// Without [ForType], records are checked against the merge of every "input"
// definition. Keys of the record are resolved across all definitions, the
// later declaration winning, so a key that nothing declares is a fault
// ([ErrNoValidator]) rather than a field error. Use [Validator.Clean] to drop
// such keys first.
//
// # Errors
//
// Data problems are returned as [*Error], which wraps [ErrValidation] and lists
// one [FieldError] per field. All other errors are faults: schema text that
// does not parse ([ErrParse]), undeclared keys or types ([ErrNoValidator],
// [ErrUnknownType]), nesting deeper than [WithMaxDepth] ([ErrMaxDepth]) and an
// empty key passed to [Validator.ValidateOne] ([ErrKeyRequired]).
//
// The errors of the most recent call also stay on the validator and are
// available through [Validator.InvalidKeys] and [Validator.KeyErrorMessage].
//
// # Observability
//
// [WithLogger] routes debug and fault logs to a *slog.Logger; [WithHooks]
// reports every call, which the metrics package turns into Prometheus series.
package typedvalidation
