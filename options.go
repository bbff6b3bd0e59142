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
	"errors"
	"log/slog"
	"maps"

	"github.com/Workpop/typed-validation/schema"
)

// config holds the construction-time configuration of a [Validator].
type config struct {
	messages map[string]string // field name -> message replacing the default
	logger   *slog.Logger
	hooks    Hooks
	maxDepth int
}

func newConfig() *config {
	return &config{
		logger:   slog.New(slog.DiscardHandler),
		maxDepth: schema.DefaultMaxDepth,
	}
}

// validate checks the configuration for errors.
func (c *config) validate() error {
	if c.maxDepth < 1 {
		return errors.New("maxDepth must be positive")
	}
	if c.logger == nil {
		return errors.New("logger must not be nil")
	}

	return nil
}

// Option configures a [Validator]. Options are passed to [New], [MustNew]
// or [NewFromDefinitions].
type Option func(*config)

// WithCustomMessages replaces the default message of the listed fields.
// The message is used for both missing and mistyped values.
// Calling it again adds to the messages already set.
//
// Example:
//
//	v := typedvalidation.MustNew(sdl, typedvalidation.WithCustomMessages(map[string]string{
//	    "email": "Please enter a valid email address",
//	}))
func WithCustomMessages(messages map[string]string) Option {
	return func(c *config) {
		if c.messages == nil {
			c.messages = make(map[string]string, len(messages))
		}
		maps.Copy(c.messages, messages)
	}
}

// WithCustomMessage replaces the default message of a single field.
func WithCustomMessage(field, message string) Option {
	return func(c *config) {
		if c.messages == nil {
			c.messages = make(map[string]string)
		}
		c.messages[field] = message
	}
}

// WithLogger sets the logger used for schema compilation and fault reporting.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithHooks sets callbacks invoked after every validation call.
func WithHooks(h Hooks) Option {
	return func(c *config) {
		c.hooks = h
	}
}

// WithMaxDepth bounds how deeply nested records are validated through
// declared object types. The default is [schema.DefaultMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}

// callConfig holds per-call settings for [Validator.Validate] and
// [Validator.ValidateOne].
type callConfig struct {
	typeName string
}

// ValidateOption configures a single validation call.
type ValidateOption func(*callConfig)

// ForType validates the record against the named object type instead of the
// merged input types. Fields the type declares are checked with the type's
// own declaration.
//
// Example:
//
//	err := v.Validate(rec, typedvalidation.ForType("User"))
func ForType(name string) ValidateOption {
	return func(c *callConfig) {
		c.typeName = name
	}
}
