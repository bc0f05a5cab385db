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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/openmethod/doccollect/pkg/cache"
	"github.com/openmethod/doccollect/pkg/render"
	"github.com/openmethod/doccollect/pkg/snippet"
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:                  "render",
		EnableShellCompletion: true,
		Usage:                 "Render fragments from existing cache files",
		ArgsUsage:             "[snippet-dir]",
		Description: `Render <name>.adoc for every snippet and the aggregate fragments.adoc from the
cache files written by a previous "examples" run. No compiler is invoked.
A snippet without a cache file renders an empty tabs block.

# Examples

  doccollect render doc/modules/ROOT/examples/troubleshooting`,
		Flags: []cli.Flag{
			globFlag(),
			cacheFormatFlag(),
			includeDirFlag(),
			fragmentsDirFlag(),
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

			paths, err := snippet.Discover(s.dir, s.glob)
			if err != nil {
				return err
			}

			store := cache.NewStore(s.cacheFormat)
			names := make([]string, 0, len(paths))
			entries := make(map[string]cache.Entry, len(paths))
			for _, p := range paths {
				sn := &snippet.Snippet{Path: p, Name: snippet.Stem(p)}
				names = append(names, sn.Name)
				entries[sn.Name] = store.Load(sn.SiblingPath(store.Extension()))
			}

			out, err := render.NewRenderer(render.WithIncludeDir(s.includeDir)).WriteAll(s.fragmentsDir, names, entries)
			if err != nil {
				return err
			}
			slog.Info("rendered fragments", "count", len(out.Fragments), "aggregate", out.Aggregate)

			return writeReport(ctx, outFormat, cmd.String("output"), out)
		},
	}
}
