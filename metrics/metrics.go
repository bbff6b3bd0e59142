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
	"context"
	"fmt"
	"io"
	"net/http"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	typedvalidation "github.com/Workpop/typed-validation"
)

// meterName is the instrumentation scope of the instruments.
const meterName = "github.com/Workpop/typed-validation/metrics"

// Collector records validation calls with OpenTelemetry instruments exported
// to a Prometheus registry:
//
//	typed_validation_validations_total{op,result}
//	typed_validation_field_errors_total{field,code}
//	typed_validation_duration_seconds{op}
//
// All methods are safe for concurrent use.
type Collector struct {
	registry      *promclient.Registry
	meterProvider *sdkmetric.MeterProvider
	constAttrs    []attribute.KeyValue

	validations metric.Int64Counter
	fieldErrors metric.Int64Counter
	duration    metric.Float64Histogram
}

// New creates a [Collector] and registers its exporter.
// By default the series go to a private registry; see [WithRegistry].
func New(opts ...Option) (*Collector, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	exporterOpts := []prometheus.Option{prometheus.WithRegisterer(cfg.registry)}
	if cfg.namespace != "" {
		exporterOpts = append(exporterOpts, prometheus.WithNamespace(cfg.namespace))
	}
	if !cfg.scopeInfo {
		exporterOpts = append(exporterOpts, prometheus.WithoutScopeInfo())
	}
	if !cfg.targetInfo {
		exporterOpts = append(exporterOpts, prometheus.WithoutTargetInfo())
	}

	exporter, err := prometheus.New(exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}

	c := &Collector{
		registry:      cfg.registry,
		meterProvider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter)),
	}
	for name, val := range cfg.constLabels {
		c.constAttrs = append(c.constAttrs, attribute.String(name, val))
	}

	meter := c.meterProvider.Meter(meterName)

	if c.validations, err = meter.Int64Counter("validations",
		metric.WithDescription("Validation calls, partitioned by operation and result."),
	); err != nil {
		return nil, fmt.Errorf("failed to create validations counter: %w", err)
	}
	if c.fieldErrors, err = meter.Int64Counter("field_errors",
		metric.WithDescription("Invalid fields, partitioned by field name and error code."),
	); err != nil {
		return nil, fmt.Errorf("failed to create field errors counter: %w", err)
	}
	if c.duration, err = meter.Float64Histogram("duration",
		metric.WithDescription("Duration of validation calls in seconds."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(cfg.buckets...),
	); err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return c, nil
}

// MustNew is like [New] but panics on error.
func MustNew(opts ...Option) *Collector {
	c, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("metrics.MustNew: %v", err))
	}

	return c
}

// Hooks returns validator hooks feeding the collector.
//
// Example:
//
//	c := metrics.MustNew()
//	v := typedvalidation.MustNew(sdl, typedvalidation.WithHooks(c.Hooks()))
func (c *Collector) Hooks() typedvalidation.Hooks {
	return typedvalidation.Hooks{
		OnValidate:   c.ObserveValidation,
		OnFieldError: c.ObserveFieldError,
	}
}

// ObserveValidation records one finished validation call.
func (c *Collector) ObserveValidation(ev typedvalidation.ValidateEvent) {
	ctx := context.Background()
	op := attribute.String("op", string(ev.Op))

	c.validations.Add(ctx, 1, c.attrs(op, attribute.String("result", string(ev.Result))))
	c.duration.Record(ctx, ev.Duration.Seconds(), c.attrs(op))
}

// ObserveFieldError records one invalid field.
func (c *Collector) ObserveFieldError(fe typedvalidation.FieldError) {
	c.fieldErrors.Add(context.Background(), 1, c.attrs(
		attribute.String("field", fe.Name),
		attribute.String("code", fe.Code),
	))
}

func (c *Collector) attrs(kv ...attribute.KeyValue) metric.MeasurementOption {
	return metric.WithAttributes(append(kv, c.constAttrs...)...)
}

// Registry returns the registry the exporter is registered with.
func (c *Collector) Registry() *promclient.Registry {
	return c.registry
}

// Handler returns an HTTP handler serving the registry in the Prometheus
// exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// WriteText writes every gathered series to w in the text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}

// Shutdown stops the meter provider. Series recorded afterwards are dropped.
func (c *Collector) Shutdown(ctx context.Context) error {
	if err := c.meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down meter provider: %w", err)
	}

	return nil
}
