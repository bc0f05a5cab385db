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

// Package collector runs compilers over documentation snippets and caches
// the captured output next to each snippet.
//
// # Modes
//
// ModeExamples builds each snippet. When a compiler builds it successfully,
// the example is run, its standard error replaces the whole cache entry
// under the "runtime" key, and the remaining compilers are skipped.
// Otherwise each compiler's output is kept up to the snippet's marker.
//
// ModeTroubleshoot compiles each snippet and keeps output up to the marker.
// A snippet without a marker aborts the run.
//
// ModeDiagnostics checks syntax only and keeps full output.
//
// In every mode the snippet's absolute path is replaced with a placeholder
// and the cache file is rewritten after every invocation, so an interrupted
// run leaves usable partial results.
//
// # Concurrency
//
// Jobs bounds how many snippets are processed at once. Compilers for one
// snippet always run in table order, and each snippet owns its cache file.
// The report lists snippets in input order regardless of Jobs.
//
// # Usage
//
//	c := &collector.Collector{
//	    Mode:    collector.ModeExamples,
//	    Table:   table,
//	    Version: version,
//	}
//	report, err := c.Collect(ctx, paths)
package collector
