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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/openmethod/doccollect/pkg/errors"
)

const markedSource = `// Copyright notice

// up to: poke_boost_openmethod_guide

// tag::content[]
#include <boost/openmethod.hpp>
// end::content[]
`

func writeSnippet(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeSnippet(t, dir, "match_method_not_visible.cpp", markedSource)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "match_method_not_visible", s.Name)
	assert.True(t, filepath.IsAbs(s.Path))
	assert.True(t, s.HasMarker())
	assert.Equal(t, "poke_boost_openmethod_guide", s.Marker.String())
	assert.Len(t, s.Lines, 7)
	assert.Equal(t, filepath.Join(dir, "match_method_not_visible.json"), s.SiblingPath(".json"))
}

func TestLoad_NoMarker(t *testing.T) {
	dir := t.TempDir()
	path := writeSnippet(t, dir, "plain.cpp", "int main() { return 0; }\n")

	s, err := Load(path)
	require.NoError(t, err)
	assert.False(t, s.HasMarker())
}

func TestLoad_InvalidMarker(t *testing.T) {
	dir := t.TempDir()
	path := writeSnippet(t, dir, "bad.cpp", "// up to: ([unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeSnippet(t, dir, "b.cpp", "")
	writeSnippet(t, dir, "a.cpp", "")
	writeSnippet(t, dir, "a.json", "{}")
	writeSnippet(t, dir, "notes.txt", "")

	got, err := Discover(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.cpp"), filepath.Join(dir, "b.cpp")}, got)

	got, err = Discover(dir, "*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "notes.txt")}, got)
}

func TestDiscover_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Discover(filepath.Join(dir, "missing"), "")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))

	file := writeSnippet(t, dir, "file.cpp", "")
	_, err = Discover(file, "")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))

	_, err = Discover(dir, "[")
	require.Error(t, err)
}

func TestStem(t *testing.T) {
	tests := map[string]string{
		"/doc/hello.cpp":   "hello",
		"relative/a.b.cpp": "a.b",
		"noext":            "noext",
		"/doc/.hidden.cpp": ".hidden",
	}
	for in, want := range tests {
		assert.Equal(t, want, Stem(in), in)
	}
}
