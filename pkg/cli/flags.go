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
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/openmethod/doccollect/pkg/config"
	"github.com/openmethod/doccollect/pkg/defaults"
	"github.com/openmethod/doccollect/pkg/repo"
	"github.com/openmethod/doccollect/pkg/serializer"
	"github.com/openmethod/doccollect/pkg/toolchain"
)

func envName(flag string) string {
	return strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// Flag constructors return fresh values so each command owns its flag state.
func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:      "output",
		Aliases:   []string{"o"},
		Usage:     "report file path (default: stdout)",
		Sources:   cli.EnvVars(envVar("output")),
		TakesFile: true,
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("report format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Sources: cli.EnvVars(envVar("format")),
		Value:   string(serializer.FormatYAML),
	}
}

func repoFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "repo",
		Usage:   "repository root holding the include directory (default: enclosing git work tree)",
		Sources: cli.EnvVars(envVar("repo")),
	}
}

func platformFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "platform",
		Usage:   "platform selecting the compiler table (linux, darwin, windows)",
		Sources: cli.EnvVars(envVar("platform")),
		Value:   runtime.GOOS,
	}
}

func toolkitRootFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "toolkit-root",
		Usage:   "directory scanned for versioned toolkit installations on windows",
		Sources: cli.EnvVars(envVar("toolkit-root")),
		Value:   defaults.WindowsToolkitRoot,
	}
}

func globFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "glob",
		Usage:   "pattern selecting snippet files in the snippet directory",
		Sources: cli.EnvVars(envVar("glob")),
		Value:   defaults.SnippetGlob,
	}
}

func cacheFormatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "cache-format",
		Usage:   "cache file format (json, yaml)",
		Sources: cli.EnvVars(envVar("cache-format")),
		Value:   string(serializer.FormatJSON),
	}
}

func includeDirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "include-dir",
		Usage:   "directory named in generated include directives",
		Sources: cli.EnvVars(envVar("include-dir")),
		Value:   defaults.FragmentIncludeDir,
	}
}

func fragmentsDirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "fragments-dir",
		Usage:   "directory receiving rendered fragments (default: the snippet directory)",
		Sources: cli.EnvVars(envVar("fragments-dir")),
	}
}

// collectFlags returns the flags shared by the collecting commands.
func collectFlags() []cli.Flag {
	return []cli.Flag{
		repoFlag(),
		platformFlag(),
		toolkitRootFlag(),
		globFlag(),
		cacheFormatFlag(),
		&cli.StringFlag{
			Name:    "placeholder",
			Usage:   "text replacing the absolute snippet path in captured output",
			Sources: cli.EnvVars(envVar("placeholder")),
			Value:   defaults.PathPlaceholder,
		},
		&cli.IntFlag{
			Name:    "jobs",
			Aliases: []string{"j"},
			Usage:   "number of snippets processed concurrently",
			Sources: cli.EnvVars(envVar("jobs")),
			Value:   1,
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "per-invocation timeout for compilers and examples (0 disables)",
			Sources: cli.EnvVars(envVar("timeout")),
			Value:   defaults.CommandTimeout,
		},
		&cli.StringFlag{
			Name:      "metrics-file",
			Usage:     "write Prometheus metrics to this file after the run",
			Sources:   cli.EnvVars(envVar("metrics-file")),
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "suppress per-snippet status lines",
			Sources: cli.EnvVars(envVar("quiet")),
		},
		outputFlag(),
		formatFlag(),
	}
}

// parseOutputFormat returns the report format selected with --format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", outFormat)
	}
	return outFormat, nil
}

// parseCacheFormat returns the cache format selected with --cache-format.
func parseCacheFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("cache-format"))
	switch f {
	case "":
		return serializer.FormatJSON, nil
	case serializer.FormatJSON, serializer.FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported cache format: %q", f)
	}
}

// settings merges command line flags with the optional config file.
// Flags set explicitly win over the config file, which wins over defaults.
type settings struct {
	dir          string
	glob         string
	placeholder  string
	includeDir   string
	fragmentsDir string
	toolkitRoot  string
	jobs         int
	timeout      time.Duration
	cacheFormat  serializer.Format
	file         *config.File
}

func loadSettings(cmd *cli.Command) (*settings, error) {
	s := &settings{file: &config.File{}}

	if path := cmd.String("config"); path != "" {
		f, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		s.file = f
	}

	dir := cmd.Args().First()
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve snippet directory %q: %w", dir, err)
	}
	s.dir = abs

	s.glob = pick(cmd, "glob", s.file.SnippetGlob)
	s.includeDir = pick(cmd, "include-dir", s.file.IncludeDir)
	s.toolkitRoot = pick(cmd, "toolkit-root", s.file.ToolkitRoot)

	s.fragmentsDir = cmd.String("fragments-dir")
	if s.fragmentsDir == "" {
		s.fragmentsDir = s.dir
	}

	if s.cacheFormat, err = parseCacheFormat(cmd); err != nil {
		return nil, err
	}

	return s, nil
}

// loadCollectSettings adds the settings used only by the collecting commands.
func loadCollectSettings(cmd *cli.Command) (*settings, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	s.placeholder = pick(cmd, "placeholder", s.file.Placeholder)

	s.jobs = int(cmd.Int("jobs"))
	if !cmd.IsSet("jobs") && s.file.Jobs > 0 {
		s.jobs = s.file.Jobs
	}
	if s.jobs < 1 {
		return nil, fmt.Errorf("invalid jobs value: %d (must be >= 1)", s.jobs)
	}

	s.timeout = cmd.Duration("timeout")
	if !cmd.IsSet("timeout") && s.file.Timeout != "" {
		if s.timeout, err = s.file.TimeoutDuration(); err != nil {
			return nil, err
		}
	}
	if s.timeout < 0 || s.timeout > defaults.MaxCommandTimeout {
		return nil, fmt.Errorf("invalid timeout %s (must be between 0 and %s)", s.timeout, defaults.MaxCommandTimeout)
	}

	return s, nil
}

// pick returns the flag value when it was set explicitly or the config file
// has no value, and the config file value otherwise.
func pick(cmd *cli.Command, flag, fromFile string) string {
	if fromFile == "" || cmd.IsSet(flag) {
		return cmd.String(flag)
	}
	return fromFile
}

// compilerTable resolves the repository root and builds the compiler table.
func (s *settings) compilerTable(cmd *cli.Command) (*toolchain.Table, error) {
	root, err := repo.Root(s.dir, cmd.String("repo"))
	if err != nil {
		return nil, err
	}
	return toolchain.BuildTable(cmd.String("platform"), root,
		toolchain.WithToolkitRoot(s.toolkitRoot),
		toolchain.WithCompilers(s.file.Compilers),
	)
}
