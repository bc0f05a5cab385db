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
	"fmt"

	"github.com/openmethod/doccollect/pkg/toolchain"
)

// Mode selects which pipeline variant runs for each snippet.
type Mode string

const (
	// ModeExamples builds each snippet, captures runtime output of examples
	// that build, and keeps compiler output up to an optional marker.
	ModeExamples Mode = "examples"

	// ModeTroubleshoot compiles each snippet and keeps compiler output up to
	// its marker. Every snippet must declare a marker.
	ModeTroubleshoot Mode = "troubleshoot"

	// ModeDiagnostics checks syntax only and keeps the full output.
	ModeDiagnostics Mode = "diagnostics"
)

// Modes returns all modes in display order.
func Modes() []Mode {
	return []Mode{ModeExamples, ModeTroubleshoot, ModeDiagnostics}
}

// ParseMode converts s to a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Invocation returns the compiler invocation mode.
func (m Mode) Invocation() toolchain.Mode {
	switch m {
	case ModeExamples:
		return toolchain.ModeBuild
	case ModeTroubleshoot:
		return toolchain.ModeCompile
	default:
		return toolchain.ModeSyntaxOnly
	}
}

// RequiresMarker reports whether every snippet must declare a marker.
func (m Mode) RequiresMarker() bool {
	return m == ModeTroubleshoot
}

// Truncates reports whether markers bound captured output.
func (m Mode) Truncates() bool {
	return m != ModeDiagnostics
}

// CapturesRuntime reports whether a successful build runs the example.
func (m Mode) CapturesRuntime() bool {
	return m == ModeExamples
}
