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

// Package snippet loads example source files and slices captured output.
//
// A snippet may carry a marker line naming a regular expression:
//
//	// up to: poke_boost_openmethod_guide
//
// Output captured for the snippet is cut after the first line the pattern
// matches (Truncate) and the snippet's absolute path is replaced by a fixed
// placeholder (Normalize) so that cached output is stable across machines.
package snippet
