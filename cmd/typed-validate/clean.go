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

	"github.com/spf13/cobra"

	"github.com/Workpop/typed-validation/config/codec"
)

func newCleanCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clean RECORD",
		Short: "Print a record without the keys the schema does not declare",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := root.validator(cmd)
			if err != nil {
				return err
			}

			rec, format, err := readRecord(args[0])
			if err != nil {
				return err
			}

			enc, err := codec.GetEncoder(format)
			if err != nil {
				return err
			}
			out, err := enc.Encode(v.Clean(rec))
			if err != nil {
				return fmt.Errorf("encode %s: %w", format, err)
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
}
