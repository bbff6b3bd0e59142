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
	"github.com/spf13/cobra"
)

func newSchemaCmd(root *rootOptions) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the loaded SDL schema",
		Long: `Schema prints a JSON Schema (draft 2020-12) document describing the
fields expected of records: those of the input types, or those of --type.
Declared object types are emitted under $defs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, _, err := root.validator(cmd)
			if err != nil {
				return err
			}

			s := v.Schema()
			if _, err := s.CompileJSONSchema(typeName); err != nil {
				return err
			}
			doc, err := s.JSONSchema(typeName)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), doc)
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "export only this object type")

	return cmd
}
