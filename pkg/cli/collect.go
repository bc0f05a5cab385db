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
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/openmethod/doccollect/pkg/cache"
	"github.com/openmethod/doccollect/pkg/collector"
	"github.com/openmethod/doccollect/pkg/render"
	"github.com/openmethod/doccollect/pkg/runner"
	"github.com/openmethod/doccollect/pkg/serializer"
	"github.com/openmethod/doccollect/pkg/snippet"
)

func examplesCmd() *cli.Command {
	return collectCmd(collector.ModeExamples,
		"Build snippets, capture diagnostics or runtime output, and render fragments",
		`Build every snippet with each compiler of the platform table.

When a compiler fails to build a snippet, its diagnostics are cached under the
compiler name, kept up to the snippet's "// up to: <regex>" marker line if it
has one. When a compiler builds it, the example is run, its standard error is
cached as the whole entry under "runtime", and the remaining compilers are
skipped.

Fragments are rendered afterwards: one <name>.adoc per snippet and the
aggregate fragments.adoc.

# Examples

  doccollect examples doc/modules/ROOT/examples/troubleshooting
  doccollect examples --jobs 4 --timeout 2m .`,
		includeDirFlag(),
		fragmentsDirFlag(),
	)
}

func troubleshootCmd() *cli.Command {
	return collectCmd(collector.ModeTroubleshoot,
		"Compile snippets and keep diagnostics up to each snippet's marker",
		`Compile every snippet with each compiler of the platform table and cache the
diagnostics up to and including the first line matching the snippet's
"// up to: <regex>" marker. A snippet without a marker aborts the run.

# Examples

  doccollect troubleshoot doc/modules/ROOT/troubleshooting`,
	)
}

func diagnosticsCmd() *cli.Command {
	return collectCmd(collector.ModeDiagnostics,
		"Syntax-check snippets and keep the full diagnostics",
		`Check every snippet with each compiler of the platform table without
producing object files and cache the full diagnostics. Markers are ignored.

# Examples

  doccollect diagnostics doc/troubleshooting`,
	)
}

func collectCmd(mode collector.Mode, usage, description string, extra ...cli.Flag) *cli.Command {
	return &cli.Command{
		Name:                  string(mode),
		EnableShellCompletion: true,
		Usage:                 usage,
		ArgsUsage:             "[snippet-dir]",
		Description:           description,
		Flags:                 append(collectFlags(), extra...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCollect(ctx, cmd, mode)
		},
	}
}

func runCollect(ctx context.Context, cmd *cli.Command, mode collector.Mode) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	s, err := loadCollectSettings(cmd)
	if err != nil {
		return err
	}

	table, err := s.compilerTable(cmd)
	if err != nil {
		return err
	}

	paths, err := snippet.Discover(s.dir, s.glob)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		slog.Warn("no snippets found", "dir", s.dir, "glob", s.glob)
	}

	var status io.Writer = color.Error
	if cmd.Bool("quiet") {
		status = io.Discard
	}

	c := &collector.Collector{
		Mode:        mode,
		Table:       table,
		Version:     version,
		Executor:    runner.NewProcessExecutor(runner.WithTimeout(s.timeout)),
		Store:       cache.NewStore(s.cacheFormat),
		Placeholder: s.placeholder,
		Jobs:        s.jobs,
		Status:      status,
	}

	report, err := c.Collect(ctx, paths)
	writeMetrics(cmd.String("metrics-file"))
	if err != nil {
		return err
	}

	if mode == collector.ModeExamples {
		r := render.NewRenderer(render.WithIncludeDir(s.includeDir))
		out, err := r.WriteAll(s.fragmentsDir, report.Names(), report.Entries())
		if err != nil {
			return err
		}
		report.Fragments = out
	}

	return writeReport(ctx, outFormat, cmd.String("output"), report)
}

// writeMetrics exports collector metrics when a metrics file was requested.
// Failures are logged and never fail the run.
func writeMetrics(path string) {
	if path == "" {
		return
	}
	if err := collector.WriteMetrics(path); err != nil {
		slog.Warn("failed to write metrics file", "path", path, "error", err)
		return
	}
	slog.Debug("metrics written", "path", path)
}

// writeReport serializes v to path, or stdout when path is empty.
func writeReport(ctx context.Context, format serializer.Format, path string, v any) error {
	ser := serializer.NewFileWriterOrStdout(format, path)
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()
	return ser.Serialize(ctx, v)
}
