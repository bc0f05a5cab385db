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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/openmethod/doccollect/pkg/defaults"
	apperrors "github.com/openmethod/doccollect/pkg/errors"
)

// Mode selects how far a compiler invocation goes.
type Mode string

const (
	// ModeSyntaxOnly checks the snippet without producing any output file.
	ModeSyntaxOnly Mode = "syntax-only"
	// ModeCompile compiles and links the snippet with default language settings.
	ModeCompile Mode = "compile"
	// ModeBuild compiles and links the snippet with the pinned language standard.
	ModeBuild Mode = "build"
)

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	switch m {
	case ModeSyntaxOnly, ModeCompile, ModeBuild:
		return true
	default:
		return false
	}
}

// Flavor selects the command line dialect of a compiler driver.
type Flavor string

const (
	// FlavorGNU covers gcc and clang style drivers.
	FlavorGNU Flavor = "gnu"
	// FlavorMSVC covers cl.exe.
	FlavorMSVC Flavor = "msvc"
)

// Stream names the process output stream holding diagnostics.
type Stream string

const (
	StreamStderr Stream = "stderr"
	StreamStdout Stream = "stdout"
)

// Compiler describes one compiler invocation template.
type Compiler struct {
	// Name is the cache key for this compiler's output.
	Name string `json:"name" yaml:"name" toml:"name"`

	// Executable is the driver looked up on PATH or an absolute path.
	Executable string `json:"executable" yaml:"executable" toml:"executable"`

	// Flavor selects the argument dialect. Defaults to FlavorGNU.
	Flavor Flavor `json:"flavor,omitempty" yaml:"flavor,omitempty" toml:"flavor"`

	// Args are passed before include directories on every invocation.
	Args []string `json:"args,omitempty" yaml:"args,omitempty" toml:"args"`

	// Includes are added as include directories.
	Includes []string `json:"includes,omitempty" yaml:"includes,omitempty" toml:"includes"`

	// Stream holds the diagnostics. Defaults to StreamStderr.
	Stream Stream `json:"stream,omitempty" yaml:"stream,omitempty" toml:"stream"`

	// SkipLines drops leading lines of the captured stream, such as a banner.
	SkipLines int `json:"skipLines,omitempty" yaml:"skipLines,omitempty" toml:"skip_lines"`
}

// withDefaults fills unset optional fields.
func (c Compiler) withDefaults() Compiler {
	if c.Flavor == "" {
		c.Flavor = FlavorGNU
	}
	if c.Stream == "" {
		c.Stream = StreamStderr
	}
	return c
}

// Validate checks that the compiler can be invoked.
func (c Compiler) Validate() error {
	ctx := map[string]any{"compiler": c.Name}
	switch {
	case strings.TrimSpace(c.Name) == "":
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "compiler name is required")
	case c.Name == defaults.RuntimeKey:
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("compiler name %q is reserved", defaults.RuntimeKey), ctx)
	case strings.TrimSpace(c.Executable) == "":
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest, "compiler executable is required", ctx)
	case c.SkipLines < 0:
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest, "skipLines must not be negative", ctx)
	}

	switch c.Flavor {
	case "", FlavorGNU, FlavorMSVC:
	default:
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown compiler flavor %q", c.Flavor), ctx)
	}
	switch c.Stream {
	case "", StreamStderr, StreamStdout:
	default:
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown output stream %q", c.Stream), ctx)
	}
	return nil
}

// Command returns the argument vector, executable first, compiling source
// in the given mode. output names the executable to produce and is ignored
// in ModeSyntaxOnly.
func (c Compiler) Command(mode Mode, source, output string) []string {
	c = c.withDefaults()

	argv := make([]string, 0, 2+len(c.Args)+2*len(c.Includes)+5)
	argv = append(argv, c.Executable)
	argv = append(argv, c.Args...)

	if c.Flavor == FlavorMSVC {
		for _, inc := range c.Includes {
			argv = append(argv, "/I", inc)
		}
		switch mode {
		case ModeSyntaxOnly:
			return append(argv, "/Zs", source)
		default:
			obj := strings.TrimSuffix(output, filepath.Ext(output)) + ".obj"
			return append(argv, source, "/Fe"+output, "/Fo"+obj)
		}
	}

	if mode == ModeSyntaxOnly {
		argv = append(argv, "-fsyntax-only")
	}
	for _, inc := range c.Includes {
		argv = append(argv, "-I", inc)
	}
	argv = append(argv, source)

	switch mode {
	case ModeCompile:
		argv = append(argv, "-o", output)
	case ModeBuild:
		argv = append(argv, "-o", output, "-std="+defaults.CXXStandard)
	}
	return argv
}

// Diagnostics selects the configured stream from captured output and drops
// the configured leading lines.
func (c Compiler) Diagnostics(stdout, stderr []string) []string {
	c = c.withDefaults()

	lines := stderr
	if c.Stream == StreamStdout {
		lines = stdout
	}
	if c.SkipLines >= len(lines) {
		return []string{}
	}
	return lines[c.SkipLines:]
}
