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

import "github.com/Workpop/typed-validation/value"

// Clean deletes from rec, in place, every key that no definition declares,
// and returns rec. Declared keys keep their values, zero values included.
// Nested records are not cleaned.
func (v *Validator) Clean(rec value.Record) value.Record {
	removed := 0
	for key := range rec {
		if !v.schema.Declares(key) {
			delete(rec, key)
			removed++
		}
	}

	if removed > 0 {
		v.cfg.logger.Debug("record cleaned", "removed", removed)
	}

	return rec
}
