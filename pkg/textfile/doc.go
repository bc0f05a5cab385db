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

// Package textfile reads text files and process output as lines.
//
// Snippet sources are read verbatim so that marker lines are matched against
// their exact text; compiler output is split with SplitLines, which accepts
// any of the common line terminators and never yields a trailing empty line.
//
//	lines, err := textfile.NewReader(textfile.WithMaxSize(64 << 10)).GetLines("example.cpp")
//	if err != nil {
//	    return err
//	}
//
// Errors are wrapped with the offending path:
//
//	failed to read file "/nonexistent": open /nonexistent: no such file or directory
package textfile
