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

// Package render turns cached compiler and runtime output into AsciiDoc
// fragments.
//
// Each snippet gets a <name>.adoc file holding either a fenced block of
// runtime output or a [tabs] block with one tab per compiler. The aggregate
// fragments.adoc lists every snippet as an "Example" section that includes
// the snippet source and its fragment. Templates are embedded text/template
// files under templates/.
package render
