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

// Command typed-validate checks JSON, YAML and TOML records against a
// GraphQL SDL schema.
//
// Usage:
//
//	typed-validate validate --schema schema.graphql record.json
//	typed-validate clean --schema schema.graphql record.yaml
//	typed-validate schema --schema schema.graphql --type Signup
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	os.Exit(exitCode(err))
}

// errInvalid is returned when at least one record failed validation.
// The failures have already been reported, so main prints nothing more.
var errInvalid = errors.New("invalid records")

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errInvalid):
		return 1
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}
}
