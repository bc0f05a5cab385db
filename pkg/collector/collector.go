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

package collector

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/openmethod/doccollect/pkg/cache"
	"github.com/openmethod/doccollect/pkg/defaults"
	apperrors "github.com/openmethod/doccollect/pkg/errors"
	"github.com/openmethod/doccollect/pkg/header"
	"github.com/openmethod/doccollect/pkg/runner"
	"github.com/openmethod/doccollect/pkg/serializer"
	"github.com/openmethod/doccollect/pkg/snippet"
	"github.com/openmethod/doccollect/pkg/toolchain"
)

// Collector runs every compiler of a table over a set of snippets and
// caches the captured output next to each snippet.
type Collector struct {
	// Mode selects the pipeline variant. Required.
	Mode Mode

	// Table is the compiler table. Required and must not be empty.
	Table *toolchain.Table

	// Version is stamped on the report header.
	Version string

	// Executor runs compilers and examples. If nil, a ProcessExecutor is used.
	Executor runner.Executor

	// Store persists cache entries. If nil, a JSON store is used.
	Store *cache.Store

	// Placeholder replaces the absolute snippet path in captured output.
	// If empty, defaults.PathPlaceholder is used.
	Placeholder string

	// Jobs bounds the number of snippets processed concurrently.
	// Values below 1 process snippets sequentially.
	Jobs int

	// Status receives one human readable line per snippet. If nil, status
	// lines are discarded.
	Status io.Writer

	// RunID identifies the run in logs and the report. Generated when empty.
	RunID string
}

// Collect processes the snippets at paths and returns the run report.
// Results are reported in the order of paths regardless of Jobs.
//
// The first snippet that fails aborts the run. Cache files already written
// stay on disk.
func (c *Collector) Collect(ctx context.Context, paths []string) (*Report, error) {
	if err := c.init(); err != nil {
		return nil, err
	}

	log := slog.With("run", c.RunID, "mode", string(c.Mode))
	log.Info("collecting", "snippets", len(paths), "compilers", c.Table.Names(), "jobs", c.Jobs)

	start := time.Now()
	defer func() {
		runDuration.WithLabelValues(string(c.Mode)).Observe(time.Since(start).Seconds())
	}()

	scratch, err := os.MkdirTemp("", "doccollect-")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create scratch directory", err)
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			log.Warn("failed to remove scratch directory", "path", scratch, "error", err)
		}
	}()

	results := make([]*SnippetResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := c.processSnippet(gctx, path, scratch)
			if err != nil {
				snippetsTotal.WithLabelValues(string(c.Mode), "error").Inc()
				c.statusFailed(path, err)
				return err
			}
			snippetsTotal.WithLabelValues(string(c.Mode), "success").Inc()
			c.statusDone(res)
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("collection failed", "error", err)
		return nil, err
	}

	report := &Report{
		Mode:      c.Mode,
		Platform:  c.Table.Platform,
		Toolkit:   c.Table.Toolkit,
		Compilers: c.Table.Names(),
		Snippets:  results,
	}
	report.Init(header.KindCollectionReport, c.Version)
	report.Metadata[header.MetadataRunID] = c.RunID

	log.Info("collection complete", "snippets", len(results), "duration", time.Since(start))
	return report, nil
}

func (c *Collector) init() error {
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid collector mode", err)
	}
	if c.Table == nil || len(c.Table.Compilers) == 0 {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "compiler table is empty")
	}
	if c.Executor == nil {
		c.Executor = runner.NewProcessExecutor()
	}
	if c.Store == nil {
		c.Store = cache.NewStore(serializer.FormatJSON)
	}
	if c.Placeholder == "" {
		c.Placeholder = defaults.PathPlaceholder
	}
	if c.Jobs < 1 {
		c.Jobs = 1
	}
	if c.Status == nil {
		c.Status = io.Discard
	}
	if c.RunID == "" {
		c.RunID = uuid.NewString()
	}
	return nil
}

// processSnippet runs every compiler over one snippet, saving the cache
// entry after each invocation.
func (c *Collector) processSnippet(ctx context.Context, path, scratch string) (*SnippetResult, error) {
	s, err := snippet.Load(path)
	if err != nil {
		return nil, err
	}

	if c.Mode.RequiresMarker() && !s.HasMarker() {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("snippet has no %q marker line", defaults.MarkerPrefix),
			map[string]any{"snippet": s.Path})
	}

	marker := s.Marker
	if !c.Mode.Truncates() {
		marker = nil
	}

	res := &SnippetResult{
		Name:   s.Name,
		Source: s.Path,
		Cache:  s.SiblingPath(c.Store.Extension()),
		Lines:  make(map[string]int),
	}
	if marker != nil {
		res.Marker = marker.String()
	}

	entry := c.Store.Load(res.Cache)
	exe := filepath.Join(scratch, s.Name+c.executableSuffix())

	for _, comp := range c.Table.Compilers {
		argv := comp.Command(c.Mode.Invocation(), s.Path, exe)
		out, err := c.run(ctx, comp.Name, argv)
		if err != nil {
			return nil, wrapInvocation(err, fmt.Sprintf("%s failed on %s", comp.Name, s.Name),
				map[string]any{"compiler": comp.Name, "snippet": s.Path})
		}

		if c.Mode.CapturesRuntime() && out.Succeeded() {
			invocationsTotal.WithLabelValues(comp.Name, outcomeBuilt).Inc()

			lines, err := c.captureRuntime(ctx, s, exe)
			if err != nil {
				return nil, err
			}
			entry = cache.Entry{cache.RuntimeKey: lines}
			res.Runtime = true
			res.Lines = map[string]int{}
			res.record(cache.RuntimeKey, lines)

			if err := c.save(res.Cache, entry); err != nil {
				return nil, err
			}
			break
		}

		invocationsTotal.WithLabelValues(comp.Name, outcomeDiagnostics).Inc()
		lines := capture(comp.Diagnostics(out.Stdout, out.Stderr), s.Path, c.Placeholder, marker)
		if c.Mode.CapturesRuntime() {
			delete(entry, cache.RuntimeKey)
		}
		entry[comp.Name] = lines
		res.record(comp.Name, lines)

		if err := c.save(res.Cache, entry); err != nil {
			return nil, err
		}
	}

	res.Entry = entry
	return res, nil
}

// captureRuntime runs the built example and returns its standard error.
func (c *Collector) captureRuntime(ctx context.Context, s *snippet.Snippet, exe string) ([]string, error) {
	out, err := c.run(ctx, cache.RuntimeKey, []string{exe})
	if err != nil {
		return nil, wrapInvocation(err, fmt.Sprintf("failed to run example %s", s.Name),
			map[string]any{"snippet": s.Path})
	}
	invocationsTotal.WithLabelValues(cache.RuntimeKey, outcomeCaptured).Inc()
	slog.Debug("captured runtime output",
		slog.String("snippet", s.Name),
		slog.Int("exitCode", out.ExitCode),
		slog.Int("lines", len(out.Stderr)))
	return snippet.Normalize(out.Stderr, s.Path, c.Placeholder), nil
}

func (c *Collector) run(ctx context.Context, program string, argv []string) (*runner.Result, error) {
	start := time.Now()
	defer func() {
		invocationDuration.WithLabelValues(program).Observe(time.Since(start).Seconds())
	}()

	out, err := c.Executor.Run(ctx, argv)
	if err != nil {
		invocationsTotal.WithLabelValues(program, outcomeError).Inc()
		return nil, err
	}
	if out == nil {
		out = &runner.Result{}
	}
	return out, nil
}

func (c *Collector) save(path string, entry cache.Entry) error {
	if err := c.Store.Save(path, entry); err != nil {
		return err
	}
	cacheWritesTotal.Inc()
	return nil
}

func (c *Collector) executableSuffix() string {
	if c.Table.Platform == toolchain.PlatformWindows {
		return ".exe"
	}
	return ""
}

// capture bounds lines at the first marker match, then replaces the source
// path with the placeholder. Matching runs on the raw compiler output.
func capture(lines []string, source, placeholder string, marker *regexp.Regexp) []string {
	return snippet.Normalize(snippet.Truncate(lines, marker), source, placeholder)
}

// wrapInvocation adds snippet context to a failed invocation, keeping the
// structured code of err. Context cancellation is passed through unchanged.
func wrapInvocation(err error, message string, ctx map[string]any) error {
	code := apperrors.CodeOf(err)
	if code == "" {
		return fmt.Errorf("%s: %w", message, err)
	}
	return apperrors.WrapWithContext(code, message, err, ctx)
}
