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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	typedvalidation "github.com/Workpop/typed-validation"
	"github.com/Workpop/typed-validation/metrics"
	"github.com/Workpop/typed-validation/problem"
)

// Output formats of the validate command.
const (
	outputText    = "text"
	outputJSON    = "json"
	outputProblem = "problem"
)

type validateOptions struct {
	*rootOptions

	typeName   string
	output     string
	problemURL string
	metrics    bool
}

// result is the JSON report of one record.
type result struct {
	Record string                       `json:"record"`
	Valid  bool                         `json:"valid"`
	Errors []typedvalidation.FieldError `json:"errors,omitempty"`
	Fault  string                       `json:"fault,omitempty"`
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	opts := &validateOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "validate RECORD...",
		Short: "Validate record files",
		Long: `Validate decodes each record file (format by extension), converts string
values of DateType fields to timestamps, and validates it. The exit status is
1 when any record is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.typeName, "type", "t", "", "validate against this object type only")
	flags.StringVarP(&opts.output, "output", "o", outputText, "output format: text, json or problem")
	flags.StringVar(&opts.problemURL, "problem-base-url", "", "base URL of problem type URIs")
	flags.BoolVar(&opts.metrics, "metrics", false, "print Prometheus metrics to stderr when done")

	return cmd
}

func (o *validateOptions) run(cmd *cobra.Command, paths []string) error {
	switch o.output {
	case outputText, outputJSON, outputProblem:
	default:
		return fmt.Errorf("unknown output format %q", o.output)
	}

	var extra []typedvalidation.Option
	var collector *metrics.Collector
	if o.metrics {
		var err error
		if collector, err = metrics.New(); err != nil {
			return err
		}
		defer func() { _ = collector.Shutdown(context.WithoutCancel(cmd.Context())) }()
		extra = append(extra, typedvalidation.WithHooks(collector.Hooks()))
	}

	v, logger, err := o.validator(cmd, extra...)
	if err != nil {
		return err
	}

	var callOpts []typedvalidation.ValidateOption
	if o.typeName != "" {
		callOpts = append(callOpts, typedvalidation.ForType(o.typeName))
	}

	results := make([]result, 0, len(paths))
	problems := make([]problem.Detail, 0)
	formatter := problem.New(o.problemURL)
	failed := false

	for _, path := range paths {
		if err := cmd.Context().Err(); err != nil {
			return err
		}

		rec, _, err := readRecord(path)
		if err != nil {
			return err
		}
		castDates(v, rec, o.typeName)

		verr := v.Validate(rec, callOpts...)
		res := result{Record: path, Valid: verr == nil}
		if verr != nil {
			failed = true
			var data *typedvalidation.Error
			if errors.As(verr, &data) {
				res.Errors = data.Fields
			} else {
				res.Fault = verr.Error()
			}
			problems = append(problems, formatter.Format(path, verr))
			logger.Debug("record rejected", "record", path, "error", verr)
		}
		results = append(results, res)
	}

	if err := o.write(cmd.OutOrStdout(), results, problems); err != nil {
		return err
	}
	if collector != nil {
		if err := collector.WriteText(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}
	if failed {
		return errInvalid
	}

	return nil
}

func (o *validateOptions) write(w io.Writer, results []result, problems []problem.Detail) error {
	switch o.output {
	case outputJSON:
		return writeJSON(w, results)
	case outputProblem:
		return writeJSON(w, problems)
	}

	for _, res := range results {
		switch {
		case res.Valid:
			fmt.Fprintf(w, "%s: ok\n", res.Record)
		case res.Fault != "":
			fmt.Fprintf(w, "%s: error: %s\n", res.Record, res.Fault)
		default:
			fmt.Fprintf(w, "%s: invalid\n", res.Record)
			for _, fe := range res.Errors {
				fmt.Fprintf(w, "  %s: %s\n", fe.Name, fe.Message)
			}
		}
	}

	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
