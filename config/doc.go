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

// Package config loads [Settings] for a validator from files, in-memory
// content, environment variables and fixed values.
//
// Sources are merged in order, later ones overriding earlier ones. Keys are
// case-insensitive, except the field names under customMessages. The merged
// values are checked against an embedded JSON Schema before being bound to
// [Settings], so unknown keys and malformed values are reported with the
// source that caused them.
//
//	settings, err := config.Load(ctx,
//	    config.WithFile("typed-validate.yaml"),
//	    config.WithEnv("TYPED_VALIDATION_"),
//	)
//	if err != nil {
//	    return err
//	}
//	v, err := settings.NewValidator()
//
// A settings file looks like:
//
//	schemaFile: ./signup.graphql
//	maxDepth: 20
//	customMessages:
//	  email: Please enter a valid email address
//	log:
//	  level: debug
package config
