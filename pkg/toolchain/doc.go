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

// Package toolchain builds the per-platform compiler table and the argument
// vectors used to invoke each compiler.
//
// On Windows the table holds a single cl.exe entry that includes the newest
// versioned toolkit found under the toolkit root. Elsewhere it holds clang++
// and g++. A configured compiler list replaces the platform table.
//
// Invocations never go through a shell; Compiler.Command returns an argv.
package toolchain
