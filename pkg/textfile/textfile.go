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

package textfile

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"
)

// Options for configuring the Reader.
type Option func(*Reader)

// Reader reads text files as lines with customizable settings.
type Reader struct {
	maxSize       int
	trimSpace     bool
	skipEmpty     bool
	commentPrefix string
}

// WithMaxSize sets the maximum size (in bytes) of the file to be read.
// Default is 1MB.
func WithMaxSize(size int) Option {
	return func(r *Reader) {
		r.maxSize = size
	}
}

// WithTrimSpace sets whether surrounding whitespace is removed from each line.
// Default is false.
func WithTrimSpace(trim bool) Option {
	return func(r *Reader) {
		r.trimSpace = trim
	}
}

// WithSkipEmpty sets whether blank lines are dropped.
// Default is false.
func WithSkipEmpty(skip bool) Option {
	return func(r *Reader) {
		r.skipEmpty = skip
	}
}

// WithCommentPrefix drops lines whose trimmed text starts with prefix.
// Default is no comment filtering.
func WithCommentPrefix(prefix string) Option {
	return func(r *Reader) {
		r.commentPrefix = prefix
	}
}

// NewReader creates a new line reader with the provided options.
// Default settings keep every line verbatim and allow files up to 1MB.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		maxSize: 1 << 20, // 1MB default
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetLines reads the file at the given path and splits its content into lines.
// An error is returned if the file cannot be read, exceeds the maximum size,
// or contains invalid UTF-8 content.
func (r *Reader) GetLines(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	if !utf8.Valid(b) {
		return nil, fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	if len(b) > r.maxSize {
		return nil, fmt.Errorf("file %q exceeds maximum size of %d bytes", path, r.maxSize)
	}

	return r.filter(SplitLines(string(b))), nil
}

func (r *Reader) filter(lines []string) []string {
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if r.skipEmpty && trimmed == "" {
			continue
		}
		if r.commentPrefix != "" && strings.HasPrefix(trimmed, r.commentPrefix) {
			slog.Debug("skipping comment line", slog.String("line", line))
			continue
		}
		if r.trimSpace {
			line = trimmed
		}
		result = append(result, line)
	}
	return result
}

// SplitLines splits text on line boundaries. "\n", "\r\n" and "\r" all end
// a line, line terminators are not kept, and a trailing terminator does not
// produce an empty final line. Empty input yields no lines.
func SplitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
