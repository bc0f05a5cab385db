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

package defaults

import "time"

// Snippet discovery and capture.
const (
	// SnippetGlob selects the snippet files inside a snippet directory.
	SnippetGlob = "*.cpp"

	// MarkerPrefix starts the in-file line naming the truncation pattern.
	MarkerPrefix = "// up to: "

	// PathPlaceholder replaces the absolute snippet path in captured output.
	PathPlaceholder = "example.cpp"

	// MaxSnippetSize bounds the size of a snippet file read for marker scanning.
	MaxSnippetSize = 1 << 20

	// RuntimeKey is the cache key holding output of a successfully built example.
	RuntimeKey = "runtime"
)

// Cache and fragment outputs.
const (
	// CacheExtension is appended to the snippet stem to name its cache file.
	CacheExtension = ".json"

	// FragmentExtension is appended to the snippet stem to name its fragment.
	FragmentExtension = ".adoc"

	// FragmentsFileName is the aggregate fragment file written beside the snippets.
	FragmentsFileName = "fragments.adoc"

	// FragmentIncludeDir is the directory used in generated include directives.
	FragmentIncludeDir = "troubleshooting"

	// OutputFilePerm is the permission used for cache and fragment files.
	OutputFilePerm = 0o644
)

// Toolchain discovery.
const (
	// WindowsToolkitRoot is scanned for versioned toolkit directories.
	WindowsToolkitRoot = `C:\Boost\include`

	// ToolkitDirGlob matches versioned toolkit directories under the root.
	ToolkitDirGlob = "boost-*"

	// CXXStandard is the language standard passed to build invocations.
	CXXStandard = "c++17"
)

// Invocation timeouts.
const (
	// CommandTimeout is the default per-invocation timeout. Zero disables it,
	// so a hung compiler blocks the run until interrupted.
	CommandTimeout time.Duration = 0

	// MaxCommandTimeout caps user supplied timeouts.
	MaxCommandTimeout = 30 * time.Minute
)
