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

package toolchain

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/openmethod/doccollect/pkg/defaults"
	apperrors "github.com/openmethod/doccollect/pkg/errors"
	"github.com/openmethod/doccollect/pkg/version"
)

// PlatformWindows is the runtime.GOOS value selecting the MSVC table.
const PlatformWindows = "windows"

// Table is the ordered set of compilers used for a run.
type Table struct {
	// Platform is the operating system the table was built for.
	Platform string `json:"platform" yaml:"platform"`

	// Toolkit is the selected toolkit include directory, if any.
	Toolkit string `json:"toolkit,omitempty" yaml:"toolkit,omitempty"`

	// Compilers run in order for every snippet.
	Compilers []Compiler `json:"compilers" yaml:"compilers"`
}

// Names returns the compiler names in table order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.Compilers))
	for _, c := range t.Compilers {
		names = append(names, c.Name)
	}
	return names
}

// Option configures BuildTable.
type Option func(*tableOptions)

type tableOptions struct {
	toolkitRoot string
	overrides   []Compiler
}

// WithToolkitRoot overrides the directory scanned for versioned toolkits.
func WithToolkitRoot(root string) Option {
	return func(o *tableOptions) {
		if root != "" {
			o.toolkitRoot = root
		}
	}
}

// WithCompilers replaces the platform table. An empty list is ignored.
func WithCompilers(compilers []Compiler) Option {
	return func(o *tableOptions) {
		if len(compilers) > 0 {
			o.overrides = compilers
		}
	}
}

// BuildTable returns the compiler table for platform with include paths
// rooted at repoRoot.
//
// Windows gets a single MSVC entry that needs the newest versioned toolkit
// under the toolkit root; every other platform gets clang and gcc.
func BuildTable(platform, repoRoot string, opts ...Option) (*Table, error) {
	o := &tableOptions{toolkitRoot: defaults.WindowsToolkitRoot}
	for _, opt := range opts {
		opt(o)
	}

	if o.overrides != nil {
		return overrideTable(platform, o.overrides)
	}

	if platform == PlatformWindows {
		toolkit, err := FindToolkit(o.toolkitRoot)
		if err != nil {
			return nil, err
		}
		slog.Info("using toolkit", "path", toolkit)

		return &Table{
			Platform: platform,
			Toolkit:  toolkit,
			Compilers: []Compiler{{
				Name:       "msvc",
				Executable: "cl",
				Flavor:     FlavorMSVC,
				Args:       []string{"/std:" + defaults.CXXStandard, "/EHsc"},
				Includes:   []string{toolkit, repoRoot + `\include`},
				Stream:     StreamStdout,
				SkipLines:  1,
			}},
		}, nil
	}

	include := filepath.Join(repoRoot, "include")
	return &Table{
		Platform: platform,
		Compilers: []Compiler{
			{Name: "clang", Executable: "clang++", Flavor: FlavorGNU, Includes: []string{include}, Stream: StreamStderr},
			{Name: "gcc", Executable: "g++", Flavor: FlavorGNU, Includes: []string{include}, Stream: StreamStderr},
		},
	}, nil
}

func overrideTable(platform string, compilers []Compiler) (*Table, error) {
	seen := make(map[string]bool, len(compilers))
	out := make([]Compiler, 0, len(compilers))
	for _, c := range compilers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if seen[c.Name] {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
				"duplicate compiler name", map[string]any{"compiler": c.Name})
		}
		seen[c.Name] = true
		out = append(out, c.withDefaults())
	}
	slog.Debug("using configured compiler table", "compilers", len(out))
	return &Table{Platform: platform, Compilers: out}, nil
}

// FindToolkit returns the highest-versioned toolkit directory under root.
// Directory names carry the version after the prefix, with '_' separating
// components (boost-1_86 is 1.86).
func FindToolkit(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
			"toolkit root not accessible", err, map[string]any{"root": root})
	}

	prefix := strings.TrimSuffix(defaults.ToolkitDirGlob, "*")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}

	best, ok := version.Latest(names, prefix)
	if !ok {
		return "", apperrors.NewWithContext(apperrors.ErrCodeNotFound,
			"no toolkit installation found", map[string]any{"root": root, "pattern": defaults.ToolkitDirGlob})
	}
	return filepath.Join(root, best), nil
}
