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

package snippet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/openmethod/doccollect/pkg/defaults"
)

// ParseMarker scans lines for the first one starting with the marker prefix
// and compiles the rest of that line as a regular expression. It returns nil
// when no line carries the prefix.
func ParseMarker(lines []string) (*regexp.Regexp, error) {
	for _, line := range lines {
		rest, ok := strings.CutPrefix(line, defaults.MarkerPrefix)
		if !ok {
			continue
		}
		pattern := strings.TrimSpace(rest)
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("marker pattern %q: %w", pattern, err)
		}
		return re, nil
	}
	return nil, nil
}

// Truncate returns lines up to and including the first line matched by
// marker. With a nil marker, or no match, lines are returned unchanged.
func Truncate(lines []string, marker *regexp.Regexp) []string {
	if marker == nil {
		return lines
	}
	for i, line := range lines {
		if marker.MatchString(line) {
			return lines[:i+1]
		}
	}
	return lines
}

// Normalize replaces every occurrence of path in lines with placeholder.
// The input slice is not modified.
func Normalize(lines []string, path, placeholder string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if path != "" {
			line = strings.ReplaceAll(line, path, placeholder)
		}
		out[i] = line
	}
	return out
}
