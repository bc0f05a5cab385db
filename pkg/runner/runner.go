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

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	apperrors "github.com/openmethod/doccollect/pkg/errors"
	"github.com/openmethod/doccollect/pkg/textfile"
)

// waitDelay bounds how long Run waits for output pipes after the process
// exits or is killed.
const waitDelay = 2 * time.Second

// Result is the captured outcome of one process invocation.
type Result struct {
	// ExitCode is the process exit status.
	ExitCode int

	// Stdout and Stderr hold the captured streams split into lines.
	Stdout []string
	Stderr []string

	// Duration is the wall time of the invocation.
	Duration time.Duration
}

// Succeeded reports whether the process exited with status zero.
func (r *Result) Succeeded() bool {
	return r != nil && r.ExitCode == 0
}

// Executor runs an external program to completion.
//
// A non-zero exit is reported through Result.ExitCode, not as an error.
// Errors mean the program could not be run at all or did not finish.
type Executor interface {
	Run(ctx context.Context, argv []string) (*Result, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, argv []string) (*Result, error)

// Run calls f(ctx, argv).
func (f ExecutorFunc) Run(ctx context.Context, argv []string) (*Result, error) {
	return f(ctx, argv)
}

// Option configures a ProcessExecutor.
type Option func(*ProcessExecutor)

// WithTimeout bounds every invocation. Zero or negative disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(p *ProcessExecutor) {
		p.timeout = timeout
	}
}

// WithDir sets the working directory of started processes.
func WithDir(dir string) Option {
	return func(p *ProcessExecutor) {
		p.dir = dir
	}
}

// ProcessExecutor runs programs with os/exec, never through a shell.
type ProcessExecutor struct {
	timeout time.Duration
	dir     string
}

// NewProcessExecutor returns an Executor backed by os/exec.
func NewProcessExecutor(opts ...Option) *ProcessExecutor {
	p := &ProcessExecutor{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run starts argv[0] with the remaining arguments and waits for it.
//
// Errors are structured: UNAVAILABLE when the program cannot be started,
// TIMEOUT when the per-invocation timeout fires. Cancellation of ctx is
// returned as the context error.
func (p *ProcessExecutor) Run(ctx context.Context, argv []string) (*Result, error) {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "empty command")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	cmd.Dir = p.dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	errCtx := map[string]any{"command": argv[0]}
	if err != nil {
		switch {
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case runCtx.Err() != nil:
			errCtx["timeout"] = p.timeout.String()
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeTimeout,
				"command timed out", runCtx.Err(), errCtx)
		}

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeUnavailable,
				fmt.Sprintf("failed to start %s", argv[0]), err, errCtx)
		}
	}

	res := &Result{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   textfile.SplitLines(stdout.String()),
		Stderr:   textfile.SplitLines(stderr.String()),
		Duration: elapsed,
	}

	slog.Debug("command finished",
		slog.String("command", argv[0]),
		slog.Int("exitCode", res.ExitCode),
		slog.Duration("duration", elapsed))

	return res, nil
}
