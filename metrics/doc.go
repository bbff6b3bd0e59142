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

// Package metrics exports validation outcomes as Prometheus metrics.
//
// Instruments are created with the OpenTelemetry metrics API on an SDK meter
// provider whose reader is the OpenTelemetry Prometheus exporter, registered
// with a Prometheus registry.
//
// A [Collector] plugs into a validator through its hooks:
//
//	c := metrics.MustNew(metrics.WithConstLabels(map[string]string{"schema": "signup"}))
//	v := typedvalidation.MustNew(sdl, typedvalidation.WithHooks(c.Hooks()))
//
//	http.Handle("/metrics", c.Handler())
package metrics
