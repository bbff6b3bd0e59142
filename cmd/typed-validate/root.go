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
	"log/slog"

	"github.com/spf13/cobra"

	typedvalidation "github.com/Workpop/typed-validation"
	"github.com/Workpop/typed-validation/config"
	"github.com/Workpop/typed-validation/internal/logging"
)

// envPrefix selects the environment variables read as settings,
// e.g. TYPED_VALIDATE_MAXDEPTH or TYPED_VALIDATE_LOG__LEVEL.
const envPrefix = "TYPED_VALIDATE_"

type rootOptions struct {
	configFile string
	schemaFile string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "typed-validate",
		Short: "Validate records against a GraphQL SDL schema",
		Long: `typed-validate checks JSON, YAML and TOML records against the object and
input types of a GraphQL SDL schema. Settings are read from --config, then
from TYPED_VALIDATE_* environment variables, then from flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "settings file (.json, .yaml, .toml or .env)")
	flags.StringVarP(&opts.schemaFile, "schema", "s", "", "GraphQL SDL schema file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", string(logging.ConsoleHandler), "log format: console, json or text")

	cmd.AddCommand(
		newValidateCmd(opts),
		newCleanCmd(opts),
		newSchemaCmd(opts),
	)

	return cmd
}

// settings loads the layered settings for cmd.
func (o *rootOptions) settings(cmd *cobra.Command) (*config.Settings, error) {
	loadOpts := []config.Option{}
	if o.configFile != "" {
		loadOpts = append(loadOpts, config.WithFile(o.configFile))
	}
	loadOpts = append(loadOpts, config.WithEnv(envPrefix))

	overrides := map[string]any{}
	if o.schemaFile != "" {
		overrides["schemaFile"] = o.schemaFile
	}
	if o.logLevel != "" {
		overrides["log"] = map[string]any{"level": o.logLevel}
	}
	if len(overrides) > 0 {
		loadOpts = append(loadOpts, config.WithValues(overrides))
	}

	return config.Load(cmd.Context(), loadOpts...)
}

// logger builds the logger for settings. Logs go to the command's error stream.
func (o *rootOptions) logger(cmd *cobra.Command, settings *config.Settings) (*slog.Logger, error) {
	format, err := logging.ParseHandlerType(o.logFormat)
	if err != nil {
		return nil, err
	}
	level, err := settings.LogLevel()
	if err != nil {
		return nil, err
	}

	return logging.New(
		logging.WithHandlerType(format),
		logging.WithLevel(level),
		logging.WithOutput(cmd.ErrOrStderr()),
	), nil
}

// validator loads the settings and builds the validator they describe.
func (o *rootOptions) validator(cmd *cobra.Command, extra ...typedvalidation.Option) (*typedvalidation.Validator, *slog.Logger, error) {
	settings, err := o.settings(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("load settings: %w", err)
	}
	logger, err := o.logger(cmd, settings)
	if err != nil {
		return nil, nil, err
	}

	v, err := settings.NewValidator(append([]typedvalidation.Option{typedvalidation.WithLogger(logger)}, extra...)...)
	if err != nil {
		return nil, nil, err
	}

	return v, logger, nil
}
