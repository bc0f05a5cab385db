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

package snippet

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/openmethod/doccollect/pkg/defaults"
	apperrors "github.com/openmethod/doccollect/pkg/errors"
	"github.com/openmethod/doccollect/pkg/textfile"
)

// Snippet is an example source file together with its truncation marker.
type Snippet struct {
	// Path is the absolute path of the source file.
	Path string

	// Name is the base name without extension; cache and fragment files are
	// named after it.
	Name string

	// Lines holds the source text, one entry per line.
	Lines []string

	// Marker bounds captured output when non-nil.
	Marker *regexp.Regexp
}

// HasMarker reports whether the snippet declares a truncation marker.
func (s *Snippet) HasMarker() bool {
	return s.Marker != nil
}

// SiblingPath returns the path next to the snippet sharing its base name
// with the given extension (".json", ".adoc").
func (s *Snippet) SiblingPath(ext string) string {
	return filepath.Join(filepath.Dir(s.Path), s.Name+ext)
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads the snippet at path and extracts its marker.
func Load(path string) (*Snippet, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve snippet path %q: %w", path, err)
	}

	lines, err := textfile.NewReader(textfile.WithMaxSize(defaults.MaxSnippetSize)).GetLines(abs)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to read snippet", err)
	}

	marker, err := ParseMarker(lines)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid marker", err, map[string]any{"snippet": abs})
	}

	return &Snippet{
		Path:   abs,
		Name:   Stem(abs),
		Lines:  lines,
		Marker: marker,
	}, nil
}

// Discover returns the paths in dir matching pattern, sorted by name.
// A missing directory is a NOT_FOUND error; an empty match is not an error.
func Discover(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
			"snippet directory not accessible", err, map[string]any{"dir": dir})
	}
	if !info.IsDir() {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"snippet path is not a directory", map[string]any{"dir": dir})
	}

	if pattern == "" {
		pattern = defaults.SnippetGlob
	}

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid snippet pattern", err)
	}
	sort.Strings(matches)

	slog.Debug("discovered snippets",
		slog.String("dir", dir),
		slog.String("pattern", pattern),
		slog.Int("count", len(matches)))

	return matches, nil
}
