// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/openmethod/doccollect/pkg/header"
	"github.com/openmethod/doccollect/pkg/toolchain"
)

// compilerTableDocument is the serialized output of the compilers command.
type compilerTableDocument struct {
	header.Header   `json:",inline" yaml:",inline"`
	toolchain.Table `json:",inline" yaml:",inline"`
}

func compilersCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compilers",
		EnableShellCompletion: true,
		Usage:                 "Print the compiler table for this platform",
		ArgsUsage:             "[snippet-dir]",
		Description: `Resolve the repository root and print the compilers that the collecting
commands would invoke, including the selected toolkit on windows and any
table configured with --config.

# Examples

  doccollect compilers --format table
  doccollect compilers --platform windows --toolkit-root /mnt/c/Boost/include`,
		Flags: []cli.Flag{
			repoFlag(),
			platformFlag(),
			toolkitRootFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			table, err := s.compilerTable(cmd)
			if err != nil {
				return err
			}

			doc := compilerTableDocument{
				Header: *header.New(header.KindCompilerTable, version),
				Table:  *table,
			}
			return writeReport(ctx, outFormat, cmd.String("output"), doc)
		},
	}
}
