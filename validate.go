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
	"maps"
	"slices"
	"time"

	"github.com/Workpop/typed-validation/schema"
	"github.com/Workpop/typed-validation/value"
)

// Validate checks rec against the merged input types of the schema, or the
// object type named with [ForType].
//
// Every declared field must be present as a key; a nil value counts as
// present. When any is missing, one [CodeRequired] error per missing field is
// recorded in declaration order and present fields are not checked. Otherwise
// every key of rec is type checked in sorted order.
//
// Validate returns nil when rec is valid and an [*Error] wrapping
// [ErrValidation] when it is not. Keys no definition declares, and types with
// no registered check, are faults: the returned error wraps [ErrNoValidator]
// (or [ErrMaxDepth], [ErrUnknownType]) and the error set keeps the records
// collected before the fault.
//
// Each call replaces the error set read by [Validator.InvalidKeys].
func (v *Validator) Validate(rec value.Record, opts ...ValidateOption) error {
	var call callConfig
	for _, opt := range opts {
		opt(&call)
	}

	start := time.Now()
	errs, fault := v.validateRecord(rec, call.typeName, 0)
	v.errs = errs

	v.finish(ValidateEvent{
		Op:       OpValidate,
		TypeName: call.typeName,
		Duration: time.Since(start),
	}, fault)

	if fault != nil {
		return fault
	}

	return v.Err()
}

// ValidateOne checks the single field key of rec.
//
// A missing key is recorded as [CodeRequired], a value of the wrong type as
// [CodeType]; at most one error is recorded. An empty key returns
// [ErrKeyRequired] and leaves the error set untouched. A key no definition
// declares returns an error wrapping [ErrNoValidator].
func (v *Validator) ValidateOne(rec value.Record, key string, opts ...ValidateOption) error {
	if key == "" {
		return fmt.Errorf("validate one: %w", ErrKeyRequired)
	}

	var call callConfig
	for _, opt := range opts {
		opt(&call)
	}

	start := time.Now()
	v.errs = nil

	fe, fault := v.checkField(rec, key, call.typeName, 0)
	if fe != nil {
		v.errs = []FieldError{*fe}
	}

	v.finish(ValidateEvent{
		Op:       OpValidateOne,
		TypeName: call.typeName,
		Key:      key,
		Duration: time.Since(start),
	}, fault)

	if fault != nil {
		return fault
	}

	return v.Err()
}

// validateRecord collects the field errors of rec against typeName.
// It never touches the instance error set.
func (v *Validator) validateRecord(rec value.Record, typeName string, depth int) ([]FieldError, error) {
	expected, ok := v.schema.ExpectedFields(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, typeName)
	}

	var errs []FieldError
	for name, tag := range expected.All() {
		if !rec.Has(name) {
			errs = append(errs, v.requiredError(name, tag))
		}
	}
	if len(errs) > 0 {
		return errs, nil
	}

	for _, key := range slices.Sorted(maps.Keys(rec)) {
		fe, err := v.checkField(rec, key, typeName, depth)
		if err != nil {
			return errs, err
		}
		if fe != nil {
			errs = append(errs, *fe)
		}
	}

	return errs, nil
}

// checkField runs the type check of key. It returns a field error when the
// check fails and an error on a fault.
func (v *Validator) checkField(rec value.Record, key, typeName string, depth int) (*FieldError, error) {
	tag := v.schema.ResolveField(key, typeName)
	check, err := v.schema.Lookup(tag)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}

	val := rec.Get(key)
	ok, err := check(val, depth)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	if ok {
		return nil, nil
	}

	var fe FieldError
	if val.IsAbsent() {
		fe = v.requiredError(key, tag)
	} else {
		fe = v.typeError(key, tag)
	}

	return &fe, nil
}

// checkNested validates a record nested under a declared object type.
// Nested field errors are not surfaced; the parent field fails instead.
func (v *Validator) checkNested(rec value.Record, typeName string, depth int) (bool, error) {
	errs, err := v.validateRecord(rec, typeName, depth)
	if err != nil {
		return false, err
	}

	return len(errs) == 0, nil
}

func (v *Validator) requiredError(name string, tag schema.Tag) FieldError {
	return FieldError{
		Name:    name,
		Message: v.message(name, "%s is required", name),
		Code:    CodeRequired,
		Tag:     tag.Name(),
	}
}

func (v *Validator) typeError(name string, tag schema.Tag) FieldError {
	return FieldError{
		Name:    name,
		Message: v.message(name, "%s must be a %s", name, tag.Name()),
		Code:    CodeType,
		Tag:     tag.Name(),
	}
}

// message returns the custom message for name or the formatted default.
func (v *Validator) message(name, format string, args ...any) string {
	if msg, ok := v.cfg.messages[name]; ok {
		return msg
	}

	return fmt.Sprintf(format, args...)
}

// finish logs the outcome of a call and fires the hooks.
func (v *Validator) finish(ev ValidateEvent, fault error) {
	ev.Errors = slices.Clone(v.errs)

	switch {
	case fault != nil:
		ev.Result = ResultFault
		ev.Fault = fault
		v.cfg.logger.Warn("validation fault",
			"op", ev.Op,
			"type", ev.TypeName,
			"error", fault,
		)
	case len(ev.Errors) > 0:
		ev.Result = ResultInvalid
		v.cfg.logger.Debug("validation failed",
			"op", ev.Op,
			"type", ev.TypeName,
			"fields", (&Error{Fields: ev.Errors}).Names(),
		)
	default:
		ev.Result = ResultValid
	}

	v.cfg.hooks.fire(ev)
}
