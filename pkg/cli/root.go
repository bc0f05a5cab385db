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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	apperrors "github.com/openmethod/doccollect/pkg/errors"
	"github.com/openmethod/doccollect/pkg/logging"
)

const (
	name           = "doccollect"
	versionDefault = "dev"
	envPrefix      = "DOCCOLLECT_"
	dotEnvFile     = ".env"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the root command with the process arguments and exits with
// a non-zero status on failure. This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	loadDotEnv(dotEnvFile)

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(exitCode(err))
	}
}

// loadDotEnv populates unset environment variables from path, if it exists.
// Variables already present in the environment win.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", path, err)
	}
}

// exitCode maps an error to the process exit status: 2 for cancellation and
// timeouts, 1 otherwise.
func exitCode(err error) int {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return 2
	case apperrors.CodeOf(err) == apperrors.ErrCodeTimeout:
		return 2
	default:
		return 1
	}
}

func envVar(flag string) string {
	return envPrefix + envName(flag)
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Capture compiler diagnostics for documentation snippets",
		Description: `doccollect compiles documentation example snippets with the installed
C++ compilers, caches the diagnostics (or the runtime output of examples that
build) next to each snippet, and renders AsciiDoc fragments from the cache.

Commands:

  examples      build snippets, capture diagnostics or runtime output, render fragments
  troubleshoot  compile snippets and keep diagnostics up to each snippet's marker
  diagnostics   syntax-check snippets and keep the full diagnostics
  render        render fragments from existing cache files
  compilers     print the compiler table for this platform

Every flag can also be set through a DOCCOLLECT_<FLAG> environment variable,
and a .env file in the working directory is loaded on start.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error); defaults to $LOG_LEVEL",
				Sources: cli.EnvVars(envVar("log-level")),
			},
			&cli.StringFlag{
				Name:      "config",
				Aliases:   []string{"c"},
				Usage:     "configuration file (.toml, .yaml or .json)",
				Sources:   cli.EnvVars(envVar("config")),
				TakesFile: true,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			examplesCmd(),
			troubleshootCmd(),
			diagnosticsCmd(),
			renderCmd(),
			compilersCmd(),
		},
	}
}
