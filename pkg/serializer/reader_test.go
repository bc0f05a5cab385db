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

package serializer

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Test data structures
type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Format
	}{
		{name: "json lowercase", path: "config.json", expected: FormatJSON},
		{name: "json uppercase", path: "CONFIG.JSON", expected: FormatJSON},
		{name: "yaml extension", path: "config.yaml", expected: FormatYAML},
		{name: "yml extension", path: "config.yml", expected: FormatYAML},
		{name: "txt extension", path: "report.txt", expected: FormatTable},
		{name: "unknown extension", path: "hello.cpp", expected: FormatJSON},
		{name: "no extension", path: "Makefile", expected: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.expected {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestNewReader(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   io.Reader
		wantErr bool
	}{
		{name: "json", format: FormatJSON, input: strings.NewReader("{}")},
		{name: "yaml", format: FormatYAML, input: strings.NewReader("a: b")},
		{name: "table rejected", format: FormatTable, input: strings.NewReader(""), wantErr: true},
		{name: "unknown rejected", format: Format("xml"), input: strings.NewReader(""), wantErr: true},
		{name: "nil input", format: FormatJSON, input: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(tt.format, tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewReader() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReader_Deserialize(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		r, err := NewReader(FormatJSON, strings.NewReader(`{"name":"clang","value":2}`))
		if err != nil {
			t.Fatalf("NewReader failed: %v", err)
		}
		var got testConfig
		if err := r.Deserialize(&got); err != nil {
			t.Fatalf("Deserialize failed: %v", err)
		}
		if got.Name != "clang" || got.Value != 2 {
			t.Errorf("unexpected result: %+v", got)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		r, err := NewReader(FormatYAML, strings.NewReader("name: gcc\nvalue: 3\n"))
		if err != nil {
			t.Fatalf("NewReader failed: %v", err)
		}
		var got testConfig
		if err := r.Deserialize(&got); err != nil {
			t.Fatalf("Deserialize failed: %v", err)
		}
		if got.Name != "gcc" || got.Value != 3 {
			t.Errorf("unexpected result: %+v", got)
		}
	})

	t.Run("empty input is EOF", func(t *testing.T) {
		r, err := NewReader(FormatJSON, strings.NewReader(""))
		if err != nil {
			t.Fatalf("NewReader failed: %v", err)
		}
		var got testConfig
		if err := r.Deserialize(&got); !errors.Is(err, io.EOF) {
			t.Errorf("expected io.EOF, got %v", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		r, err := NewReader(FormatJSON, strings.NewReader(`{"name":`))
		if err != nil {
			t.Fatalf("NewReader failed: %v", err)
		}
		var got testConfig
		if err := r.Deserialize(&got); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})

	t.Run("nil reader", func(t *testing.T) {
		var r *Reader
		if err := r.Deserialize(&testConfig{}); err == nil {
			t.Error("expected error for nil reader")
		}
	})
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "config.json")
	if err := os.WriteFile(jsonPath, []byte(`{"name":"msvc","value":1}`), 0o600); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(yamlPath, []byte("name: clang\nvalue: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := FromFile[testConfig](jsonPath)
	if err != nil {
		t.Fatalf("FromFile(json) failed: %v", err)
	}
	if got.Name != "msvc" || got.Value != 1 {
		t.Errorf("unexpected json result: %+v", got)
	}

	got, err = FromFile[testConfig](yamlPath)
	if err != nil {
		t.Fatalf("FromFile(yaml) failed: %v", err)
	}
	if got.Name != "clang" || got.Value != 7 {
		t.Errorf("unexpected yaml result: %+v", got)
	}

	if _, err := FromFile[testConfig](filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReader_Close(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.json")
	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	r, err := NewFileReaderAuto(path)
	if err != nil {
		t.Fatalf("NewFileReaderAuto failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
