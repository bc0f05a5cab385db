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

// Package cli implements the doccollect command line interface.
//
// # Commands
//
// examples - Build snippets and render fragments:
//
//	doccollect examples doc/modules/ROOT/examples/troubleshooting
//
// Builds every snippet with each platform compiler. Diagnostics of failed
// builds are cached per compiler; when a build succeeds the example runs and
// its standard error is cached under "runtime". Renders <name>.adoc per
// snippet and the aggregate fragments.adoc.
//
// troubleshoot - Compile snippets and keep diagnostics up to the marker:
//
//	doccollect troubleshoot doc/modules/ROOT/troubleshooting
//
// diagnostics - Syntax-check snippets and keep full diagnostics:
//
//	doccollect diagnostics doc/troubleshooting
//
// render - Render fragments from existing cache files:
//
//	doccollect render doc/modules/ROOT/examples/troubleshooting
//
// compilers - Print the compiler table:
//
//	doccollect compilers --format table
//
// # Global Flags
//
//	--config, -c   Configuration file (.toml, .yaml, .json)
//	--log-level    Log level (debug, info, warn, error)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// Run reports are written to --output (default: stdout) as YAML (default),
// JSON or a flattened table, selected with --format.
//
// # Environment Variables
//
//	LOG_LEVEL           Logging verbosity when --log-level is not set
//	DOCCOLLECT_<FLAG>   Value for any flag, e.g. DOCCOLLECT_JOBS=4
//
// A .env file in the working directory is loaded before flags are parsed;
// variables already set in the environment take precedence.
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, missing toolkit, compiler not found)
//	2  Context canceled or timeout
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/openmethod/doccollect/pkg/cli.version=1.0.0'"
package cli
