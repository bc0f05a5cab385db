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

// Package serializer provides encoding and decoding of structured data in
// JSON, YAML and table formats.
//
// Writers encode run reports and cache entries. JSON output is indented
// (two spaces by default, configurable with WithIndent) and never escapes
// '<', '>' or '&', so compiler diagnostics stay readable on disk.
//
// Table format is a flattened FIELD/VALUE listing meant for terminals and
// cannot be deserialized.
//
// Write to stdout:
//
//	w := serializer.NewStdoutWriter(serializer.FormatYAML)
//	if err := w.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// Replace a file atomically:
//
//	err := serializer.WriteFile("hello.json", serializer.FormatJSON, entry, 4, 0o644)
//
// Read a file with the format detected from its extension:
//
//	cfg, err := serializer.FromFile[config.File]("doccollect.yaml")
package serializer
