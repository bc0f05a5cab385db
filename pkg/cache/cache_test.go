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

package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmethod/doccollect/pkg/serializer"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{name: "two compilers", entry: Entry{"clang": {"error: X"}, "gcc": {"error: Y"}}},
		{name: "runtime", entry: Entry{RuntimeKey: {"boom"}}},
		{name: "empty lines", entry: Entry{"msvc": {}}},
		{name: "empty entry", entry: Entry{}},
		{name: "brackets", entry: Entry{"clang": {"std::vector<int> && x", "  ^~~"}}},
	}

	for _, format := range []serializer.Format{serializer.FormatJSON, serializer.FormatYAML} {
		store := NewStore(format)
		for _, tt := range tests {
			t.Run(string(format)+"/"+tt.name, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "snippet"+store.Extension())
				require.NoError(t, store.Save(path, tt.entry))
				assert.Equal(t, tt.entry, store.Load(path))
			})
		}
	}
}

func TestSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.json")
	require.NoError(t, Save(path, Entry{"clang": {"error: X"}, "gcc": {"error: Y"}}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "{\n" +
		"    \"clang\": [\n" +
		"        \"error: X\"\n" +
		"    ],\n" +
		"    \"gcc\": [\n" +
		"        \"error: Y\"\n" +
		"    ]\n" +
		"}\n"
	assert.Equal(t, want, string(content))
}

func TestLoadTolerant(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content *string
	}{
		{name: "missing", content: nil},
		{name: "empty", content: ptr("")},
		{name: "malformed", content: ptr(`{"clang": [`)},
		{name: "wrong shape", content: ptr(`["a", "b"]`)},
		{name: "null", content: ptr(`null`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o600))
			}
			got := Load(path)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.json")
	require.NoError(t, Save(path, Entry{"clang": {"old"}, "gcc": {"old"}}))
	require.NoError(t, Save(path, Entry{RuntimeKey: {"boom"}}))

	assert.Equal(t, Entry{RuntimeKey: {"boom"}}, Load(path))
}

func TestSaveUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "a.json")
	assert.Error(t, Save(path, Entry{}))
}

func TestEntryHelpers(t *testing.T) {
	e := Entry{"gcc": {"b"}, "clang": {"a"}}
	assert.Equal(t, []string{"clang", "gcc"}, e.Keys())
	assert.False(t, e.HasRuntime())

	clone := e.Clone()
	clone["gcc"][0] = "changed"
	assert.Equal(t, "b", e["gcc"][0])

	assert.True(t, Entry{RuntimeKey: nil}.HasRuntime())
}

func TestNewStoreTableFallsBack(t *testing.T) {
	assert.Equal(t, serializer.FormatJSON, NewStore(serializer.FormatTable).Format())
	assert.Equal(t, ".json", NewStore(serializer.FormatJSON).Extension())
	assert.Equal(t, ".yaml", NewStore(serializer.FormatYAML).Extension())
}

func ptr(s string) *string { return &s }
