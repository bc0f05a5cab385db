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

package render

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/openmethod/doccollect/pkg/cache"
	"github.com/openmethod/doccollect/pkg/defaults"
	apperrors "github.com/openmethod/doccollect/pkg/errors"
)

var funcs = template.FuncMap{
	"join": strings.Join,
}

// TemplateRenderer executes named text templates.
type TemplateRenderer struct {
	// templateGetter retrieves template content by name.
	templateGetter func(name string) (string, bool)
}

// NewTemplateRenderer creates a renderer reading templates from getter.
func NewTemplateRenderer(getter func(name string) (string, bool)) *TemplateRenderer {
	return &TemplateRenderer{
		templateGetter: getter,
	}
}

// Render executes the named template with data.
func (r *TemplateRenderer) Render(name string, data any) (string, error) {
	tmplContent, ok := r.templateGetter(name)
	if !ok {
		return "", fmt.Errorf("template %s not found", name)
	}

	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(tmplContent)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

// Tab is one compiler's block inside a tabs fragment.
type Tab struct {
	Compiler string
	Lines    []string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithIncludeDir sets the directory named in generated include directives.
func WithIncludeDir(dir string) Option {
	return func(r *Renderer) {
		if dir != "" {
			r.includeDir = dir
		}
	}
}

// WithTemplateGetter replaces the embedded templates.
func WithTemplateGetter(getter func(name string) (string, bool)) Option {
	return func(r *Renderer) {
		if getter != nil {
			r.templates = NewTemplateRenderer(getter)
		}
	}
}

// Renderer produces AsciiDoc fragments from cache entries.
type Renderer struct {
	includeDir string
	templates  *TemplateRenderer
}

// NewRenderer returns a Renderer using the embedded templates.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		includeDir: defaults.FragmentIncludeDir,
		templates:  NewTemplateRenderer(GetTemplate),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Example renders the aggregate section that includes the snippet source and
// its fragment.
func (r *Renderer) Example(name string) (string, error) {
	return r.templates.Render(TemplateExample, map[string]string{
		"Dir":  r.includeDir,
		"Name": name,
	})
}

// Fragment renders the output block for one snippet.
//
// An entry with the runtime key renders a single fenced block and must not
// hold any other key. Otherwise each compiler gets a tab, sorted by name.
func (r *Renderer) Fragment(name string, entry cache.Entry) (string, error) {
	if entry.HasRuntime() {
		if len(entry) != 1 {
			return "", apperrors.NewWithContext(apperrors.ErrCodeInternal,
				"cache entry mixes runtime and compiler output",
				map[string]any{"snippet": name, "keys": entry.Keys()})
		}
		return r.templates.Render(TemplateRuntime, map[string][]string{
			"Lines": entry[cache.RuntimeKey],
		})
	}

	keys := entry.Keys()
	tabs := make([]Tab, 0, len(keys))
	for _, k := range keys {
		tabs = append(tabs, Tab{Compiler: k, Lines: entry[k]})
	}
	return r.templates.Render(TemplateTabs, map[string][]Tab{"Tabs": tabs})
}

// Output lists the files written by WriteAll.
type Output struct {
	// Aggregate is the path of the aggregate fragment file.
	Aggregate string `json:"aggregate" yaml:"aggregate"`

	// Fragments holds one path per snippet in name order.
	Fragments []string `json:"fragments" yaml:"fragments"`
}

// WriteAll writes one fragment per name into dir and the aggregate file
// listing them. names are rendered in the order given.
func (r *Renderer) WriteAll(dir string, names []string, entries map[string]cache.Entry) (*Output, error) {
	var aggregate strings.Builder
	out := &Output{
		Aggregate: filepath.Join(dir, defaults.FragmentsFileName),
		Fragments: make([]string, 0, len(names)),
	}

	for _, name := range names {
		section, err := r.Example(name)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to render example section", err)
		}
		aggregate.WriteString(section)

		fragment, err := r.Fragment(name, entries[name])
		if err != nil {
			return nil, err
		}

		path := filepath.Join(dir, name+defaults.FragmentExtension)
		if err := writeFile(path, fragment); err != nil {
			return nil, err
		}
		out.Fragments = append(out.Fragments, path)
	}

	if err := writeFile(out.Aggregate, aggregate.String()); err != nil {
		return nil, err
	}
	return out, nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), defaults.OutputFilePerm); err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to write fragment", err, map[string]any{"path": path})
	}
	slog.Debug("file written",
		"path", path,
		"size_bytes", len(content),
	)
	return nil
}
