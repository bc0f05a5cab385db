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
	_ "embed"
)

// Template names.
const (
	TemplateExample = "example"
	TemplateRuntime = "runtime"
	TemplateTabs    = "tabs"
)

//go:embed templates/example.adoc.tmpl
var exampleTemplate string

//go:embed templates/runtime.adoc.tmpl
var runtimeTemplate string

//go:embed templates/tabs.adoc.tmpl
var tabsTemplate string

// GetTemplate returns the named fragment template.
func GetTemplate(name string) (string, bool) {
	templates := map[string]string{
		TemplateExample: exampleTemplate,
		TemplateRuntime: runtimeTemplate,
		TemplateTabs:    tabsTemplate,
	}

	tmpl, ok := templates[name]
	return tmpl, ok
}
