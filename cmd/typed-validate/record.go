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

package main

import (
	"fmt"
	"os"

	typedvalidation "github.com/Workpop/typed-validation"
	"github.com/Workpop/typed-validation/config/codec"
	"github.com/Workpop/typed-validation/schema"
	"github.com/Workpop/typed-validation/value"
)

// readRecord decodes the record file at path, detecting its format from the
// extension.
func readRecord(path string) (value.Record, codec.Type, error) {
	format, err := codec.TypeFromPath(path)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	rec, err := codec.DecodeMap(format, data)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	return rec, format, nil
}

var timeCaster = codec.NewCaster(codec.CastTypeTime)

// castDates converts string values of DateType fields to time.Time, since
// none of the record formats carries a date type of its own. Records nested
// under object type fields are converted against that type. Strings that do
// not parse are left alone and reported by validation.
func castDates(v *typedvalidation.Validator, rec value.Record, typeName string) {
	s := v.Schema()
	for key, raw := range rec {
		tag := s.ResolveField(key, typeName)

		switch tag.Kind() {
		case schema.TagDate:
			if _, ok := raw.(string); !ok {
				continue
			}
			if t, err := timeCaster.Cast(raw); err == nil {
				rec[key] = t
			}
		case schema.TagReference:
			if nested, ok := raw.(map[string]any); ok {
				castDates(v, nested, tag.Name())
			}
		}
	}
}
