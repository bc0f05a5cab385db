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
	"github.com/openmethod/doccollect/pkg/cache"
	"github.com/openmethod/doccollect/pkg/header"
	"github.com/openmethod/doccollect/pkg/render"
)

// Report summarizes a collection run.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Mode is the pipeline variant that ran.
	Mode Mode `json:"mode" yaml:"mode"`

	// Platform and Toolkit describe the compiler table used.
	Platform string `json:"platform" yaml:"platform"`
	Toolkit  string `json:"toolkit,omitempty" yaml:"toolkit,omitempty"`

	// Compilers lists compiler names in invocation order.
	Compilers []string `json:"compilers" yaml:"compilers"`

	// Snippets holds one result per snippet in name order.
	Snippets []*SnippetResult `json:"snippets" yaml:"snippets"`

	// Fragments lists rendered files, when rendering ran.
	Fragments *render.Output `json:"fragments,omitempty" yaml:"fragments,omitempty"`
}

// Names returns the snippet names in report order.
func (r *Report) Names() []string {
	names := make([]string, 0, len(r.Snippets))
	for _, s := range r.Snippets {
		names = append(names, s.Name)
	}
	return names
}

// Entries returns the cache entry of every snippet keyed by name.
func (r *Report) Entries() map[string]cache.Entry {
	out := make(map[string]cache.Entry, len(r.Snippets))
	for _, s := range r.Snippets {
		out[s.Name] = s.Entry
	}
	return out
}

// SnippetResult is the outcome of processing one snippet.
type SnippetResult struct {
	// Name is the snippet base name.
	Name string `json:"name" yaml:"name"`

	// Source and Cache are the snippet and cache file paths.
	Source string `json:"source" yaml:"source"`
	Cache  string `json:"cache" yaml:"cache"`

	// Marker is the truncation pattern, if any.
	Marker string `json:"marker,omitempty" yaml:"marker,omitempty"`

	// Runtime is set when the example built and its output was captured.
	Runtime bool `json:"runtime" yaml:"runtime"`

	// Lines counts the captured lines per cache key written this run.
	Lines map[string]int `json:"lines" yaml:"lines"`

	// Entry is the cache content after the run.
	Entry cache.Entry `json:"-" yaml:"-"`
}

func (s *SnippetResult) record(key string, lines []string) {
	if s.Lines == nil {
		s.Lines = make(map[string]int)
	}
	s.Lines[key] = len(lines)
}
