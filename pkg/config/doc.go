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

// Package config loads the optional doccollect configuration file.
//
// The file can replace the compiler table and set defaults for the snippet
// glob, include directory, path placeholder, timeout and concurrency. TOML,
// YAML and JSON are accepted:
//
//	# doccollect.toml
//	timeout = "2m"
//
//	[[compilers]]
//	name = "clang"
//	executable = "clang++-18"
//	includes = ["/src/openmethod/include"]
package config
