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

package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/openmethod/doccollect/pkg/defaults"
	apperrors "github.com/openmethod/doccollect/pkg/errors"
	"github.com/openmethod/doccollect/pkg/serializer"
	"github.com/openmethod/doccollect/pkg/toolchain"
)

// File is the optional configuration file. Every field is optional; command
// line flags take precedence over values set here.
type File struct {
	// Compilers replaces the platform compiler table when non-empty.
	Compilers []toolchain.Compiler `json:"compilers,omitempty" yaml:"compilers,omitempty" toml:"compilers"`

	// ToolkitRoot overrides the directory scanned for versioned toolkits.
	ToolkitRoot string `json:"toolkitRoot,omitempty" yaml:"toolkitRoot,omitempty" toml:"toolkit_root"`

	// SnippetGlob selects snippet files.
	SnippetGlob string `json:"snippetGlob,omitempty" yaml:"snippetGlob,omitempty" toml:"snippet_glob"`

	// IncludeDir is the directory named in generated include directives.
	IncludeDir string `json:"includeDir,omitempty" yaml:"includeDir,omitempty" toml:"include_dir"`

	// Placeholder replaces the absolute snippet path in captured output.
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty" toml:"placeholder"`

	// Timeout bounds each compiler or example invocation, as a Go duration.
	Timeout string `json:"timeout,omitempty" yaml:"timeout,omitempty" toml:"timeout"`

	// Jobs is the number of snippets processed concurrently.
	Jobs int `json:"jobs,omitempty" yaml:"jobs,omitempty" toml:"jobs"`
}

// Load reads the configuration file at path. The format follows the
// extension: .toml, .yaml/.yml or .json.
func Load(path string) (*File, error) {
	var (
		f   *File
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		f, err = loadTOML(path)
	case ".yaml", ".yml", ".json":
		f, err = serializer.FromFile[File](path)
	default:
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"unsupported config file extension", map[string]any{"path": path})
	}

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
				"config file not found", err, map[string]any{"path": path})
		}
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"failed to parse config file", err, map[string]any{"path": path})
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("loaded config file",
		slog.String("path", path),
		slog.Int("compilers", len(f.Compilers)))
	return f, nil
}

func loadTOML(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		slog.Warn("ignoring unknown config keys", "path", path, "keys", keys)
	}
	return &f, nil
}

// Validate checks field values.
func (f *File) Validate() error {
	for _, c := range f.Compilers {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	if f.Jobs < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "jobs must not be negative")
	}
	if _, err := f.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// TimeoutDuration parses Timeout. An empty value yields the default.
func (f *File) TimeoutDuration() (time.Duration, error) {
	if f.Timeout == "" {
		return defaults.CommandTimeout, nil
	}
	d, err := time.ParseDuration(f.Timeout)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid timeout", err)
	}
	if d < 0 || d > defaults.MaxCommandTimeout {
		return 0, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"timeout out of range", map[string]any{"timeout": f.Timeout, "max": defaults.MaxCommandTimeout.String()})
	}
	return d, nil
}
