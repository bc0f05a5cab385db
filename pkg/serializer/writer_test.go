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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const test1Name = "test1"

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{
		{Name: test1Name, Value: 123},
		{Name: "test2", Value: 456},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}
	if result[0].Name != test1Name || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeJSONNoHTMLEscape(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := map[string][]string{
		"clang": {"error: no viable conversion from 'std::vector<int>' to 'int' && more"},
	}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "std::vector<int>") || !strings.Contains(out, "&&") {
		t.Errorf("expected literal brackets and ampersands, got %s", out)
	}
	if strings.Contains(out, `\u003c`) {
		t.Errorf("unexpected HTML escaping in %s", out)
	}
}

func TestWriter_WithIndent(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf, WithIndent(4))

	if err := writer.Serialize(context.Background(), map[string][]string{"gcc": {"x"}}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	want := "{\n    \"gcc\": [\n        \"x\"\n    ]\n}\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testConfig{
		{Name: test1Name, Value: 123},
		{Name: "test2", Value: 456},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}
	if result[1].Name != "test2" || result[1].Value != 456 {
		t.Errorf("Unexpected data: %+v", result[1])
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := struct {
		Name   string
		Nested map[string]int
		Items  []string
	}{
		Name:   "run",
		Nested: map[string]int{"b": 2, "a": 1},
		Items:  []string{"x"},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"FIELD", "VALUE", "Name", "run", "Nested.a", "Nested.b", "Items.[0]"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Nested.a") > strings.Index(out, "Nested.b") {
		t.Errorf("expected sorted keys:\n%s", out)
	}
}

func TestWriter_SerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), map[string]string{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if buf.String() != "<empty>\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestNewWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)
	if writer.format != FormatJSON {
		t.Errorf("expected JSON, got %s", writer.format)
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		if Format(f).IsUnknown() {
			t.Errorf("%s reported as unknown", f)
		}
	}
	if !Format("csv").IsUnknown() {
		t.Error("csv should be unknown")
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")

	s := NewFileWriterOrStdout(FormatYAML, path)
	if err := s.Serialize(context.Background(), testConfig{Name: "x", Value: 1}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if c, ok := s.(Closer); ok {
		if err := c.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(content), "name: x") {
		t.Errorf("unexpected content: %s", content)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.json")

	if err := os.WriteFile(path, []byte("stale"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, FormatJSON, map[string][]string{"runtime": {"boom"}}, 4, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	want := "{\n    \"runtime\": [\n        \"boom\"\n    ]\n}\n"
	if string(content) != want {
		t.Errorf("got %q, want %q", content, want)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected temporary files to be cleaned up, found %d entries", len(entries))
	}
}

func TestWriteFile_Table(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.txt")
	if err := WriteFile(path, FormatTable, map[string]int{"a": 1}, 0, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file: %v", err)
	}
}
