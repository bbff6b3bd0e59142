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

// Package codec encodes and decodes records and settings in the formats the
// command line accepts.
//
// Codecs register themselves under a [Type] at init time:
//
//   - [TypeJSON]: JSON, numbers decoded as json.Number
//   - [TypeYAML]: YAML
//   - [TypeTOML]: TOML, datetimes decoded as time.Time
//   - [TypeEnvVar]: KEY=VALUE lines, decode only
//
// [TypeFromPath] picks the type from a file extension and [DecodeMap]
// decodes a document into a map:
//
//	t, err := codec.TypeFromPath("record.yaml")
//	if err != nil {
//	    return err
//	}
//	rec, err := codec.DecodeMap(t, data)
//
// # Type Casting
//
// [Caster] converts loose values with spf13/cast. Casters are also registered
// as decoders:
//
//	dec, _ := codec.GetDecoder(codec.TypeCasterTime)
//	var v any
//	_ = dec.Decode([]byte("2024-03-01T10:00:00Z"), &v) // v is a time.Time
package codec
