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

// Package cache persists captured compiler and runtime output next to each
// snippet.
//
// An Entry maps a compiler name, or the "runtime" key, to the ordered output
// lines. Files are written with four-space indentation after every compiler
// invocation and replaced atomically. Reading is forgiving: a missing or
// corrupt file is treated as an empty entry.
package cache
