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

package collector

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var (
	statusOKColor      = color.New(color.FgGreen, color.Bold)
	statusRuntimeColor = color.New(color.FgYellow, color.Bold)
	statusErrorColor   = color.New(color.FgRed, color.Bold)
	statusMu           sync.Mutex
)

// statusDone prints one line summarizing what was captured for a snippet.
func (c *Collector) statusDone(res *SnippetResult) {
	tag := statusOKColor.Sprint("captured")
	if res.Runtime {
		tag = statusRuntimeColor.Sprint("runtime ")
	}

	parts := make([]string, 0, len(res.Lines))
	for _, k := range slices.Sorted(maps.Keys(res.Lines)) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, res.Lines[k]))
	}

	c.printStatus("%s %s (%s)\n", tag, res.Name, strings.Join(parts, " "))
}

// statusFailed prints the failure of a snippet.
func (c *Collector) statusFailed(path string, err error) {
	c.printStatus("%s %s: %v\n", statusErrorColor.Sprint("failed  "), filepath.Base(path), err)
}

func (c *Collector) printStatus(format string, args ...any) {
	statusMu.Lock()
	defer statusMu.Unlock()
	fmt.Fprintf(c.Status, format, args...)
}
