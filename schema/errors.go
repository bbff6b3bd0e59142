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

import "errors"

// Schema faults. These signal an incomplete schema or API misuse, never bad data.
var (
	// ErrParse is returned when schema text is not valid SDL.
	ErrParse = errors.New("invalid schema")

	// ErrNoValidator is returned when a field's type has no registered check.
	ErrNoValidator = errors.New("no validator defined for type")

	// ErrUnknownType is returned when validation targets an undeclared object type.
	ErrUnknownType = errors.New("unknown object type")

	// ErrMaxDepth is returned when nested records exceed the configured depth.
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")
)
