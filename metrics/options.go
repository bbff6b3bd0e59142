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

package metrics

import (
	"errors"
	"maps"
	"slices"

	promclient "github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every series name.
const DefaultNamespace = "typed_validation"

// DefaultBuckets suit in-process validation, which usually takes microseconds.
var DefaultBuckets = []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1}

type config struct {
	registry    *promclient.Registry
	namespace   string
	buckets     []float64
	constLabels map[string]string
	scopeInfo   bool
	targetInfo  bool
}

func defaultConfig() *config {
	return &config{
		registry:  promclient.NewRegistry(),
		namespace: DefaultNamespace,
		buckets:   DefaultBuckets,
	}
}

func (c *config) validate() error {
	if c.registry == nil {
		return errors.New("registry must not be nil")
	}
	if len(c.buckets) == 0 {
		return errors.New("at least one histogram bucket is required")
	}
	if !slices.IsSorted(c.buckets) {
		return errors.New("histogram buckets must be sorted")
	}

	return nil
}

// Option configures a [Collector].
type Option func(*config)

// WithRegistry registers the series with reg instead of a private registry.
func WithRegistry(reg *promclient.Registry) Option {
	return func(c *config) {
		c.registry = reg
	}
}

// WithNamespace replaces [DefaultNamespace].
func WithNamespace(ns string) Option {
	return func(c *config) {
		c.namespace = ns
	}
}

// WithDurationBuckets sets the histogram buckets, in seconds.
func WithDurationBuckets(buckets ...float64) Option {
	return func(c *config) {
		c.buckets = slices.Clone(buckets)
	}
}

// WithConstLabels adds labels to every series, e.g. the schema name.
func WithConstLabels(labels map[string]string) Option {
	return func(c *config) {
		c.constLabels = maps.Clone(labels)
	}
}

// WithScopeInfo adds the otel_scope_* labels naming the instrumentation
// scope to every series. They are omitted by default.
func WithScopeInfo() Option {
	return func(c *config) {
		c.scopeInfo = true
	}
}

// WithTargetInfo exports the target_info series describing the resource.
// It is omitted by default.
func WithTargetInfo() Option {
	return func(c *config) {
		c.targetInfo = true
	}
}
