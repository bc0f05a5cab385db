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

// Package version parses and compares dotted version numbers.
//
// It is used to pick the newest installed toolkit when several versioned
// directories (boost-1_84, boost-1_86, ...) exist under the toolkit root.
// Components are compared numerically, so 1_86 is newer than 1_9.
//
//	name, ok := version.Latest([]string{"boost-1_9", "boost-1_86"}, "boost-")
//	// name == "boost-1_86", ok == true
package version
