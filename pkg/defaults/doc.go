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

// Package defaults provides centralized configuration constants for doccollect.
//
// This package defines file naming conventions, the marker prefix, the path
// placeholder, toolkit discovery locations and invocation timeouts used across
// the codebase. Centralizing these values keeps the collectors, the cache and
// the renderer in agreement about where things live.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/openmethod/doccollect/pkg/defaults"
//
//	cachePath := filepath.Join(dir, stem+defaults.CacheExtension)
//
// # Timeout Guidelines
//
// External compilers are trusted to terminate. CommandTimeout is zero, which
// disables the per-invocation deadline; the --timeout flag enables one.
package defaults
