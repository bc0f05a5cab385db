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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/openmethod/doccollect/pkg/errors"
	"github.com/openmethod/doccollect/pkg/toolchain"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "doccollect.toml", `
timeout = "90s"
jobs = 4
include_dir = "errors"

[[compilers]]
name = "clang"
executable = "clang++-18"
includes = ["/repo/include"]

[[compilers]]
name = "msvc"
executable = "cl"
flavor = "msvc"
stream = "stdout"
skip_lines = 1
`)

	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, f.Jobs)
	assert.Equal(t, "errors", f.IncludeDir)
	d, err := f.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	require.Len(t, f.Compilers, 2)
	assert.Equal(t, toolchain.Compiler{Name: "clang", Executable: "clang++-18", Includes: []string{"/repo/include"}}, f.Compilers[0])
	assert.Equal(t, toolchain.FlavorMSVC, f.Compilers[1].Flavor)
	assert.Equal(t, toolchain.StreamStdout, f.Compilers[1].Stream)
	assert.Equal(t, 1, f.Compilers[1].SkipLines)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "doccollect.yaml", `
snippetGlob: "*.cc"
placeholder: snippet.cc
compilers:
  - name: gcc
    executable: g++-14
    args: ["-Wall"]
`)

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "*.cc", f.SnippetGlob)
	assert.Equal(t, "snippet.cc", f.Placeholder)
	require.Len(t, f.Compilers, 1)
	assert.Equal(t, []string{"-Wall"}, f.Compilers[0].Args)
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "doccollect.json", `{"toolkitRoot": "D:\\Boost\\include"}`)

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, `D:\Boost\include`, f.ToolkitRoot)

	d, err := f.TimeoutDuration()
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode apperrors.ErrorCode
	}{
		{name: "unknown extension", file: "c.ini", content: "", wantCode: apperrors.ErrCodeInvalidRequest},
		{name: "bad toml", file: "c.toml", content: "jobs = ", wantCode: apperrors.ErrCodeInvalidRequest},
		{name: "bad yaml", file: "c.yaml", content: "jobs: [", wantCode: apperrors.ErrCodeInvalidRequest},
		{name: "negative jobs", file: "c.yaml", content: "jobs: -1", wantCode: apperrors.ErrCodeInvalidRequest},
		{name: "bad timeout", file: "c.yaml", content: "timeout: soon", wantCode: apperrors.ErrCodeInvalidRequest},
		{name: "timeout too long", file: "c.yaml", content: "timeout: 2h", wantCode: apperrors.ErrCodeInvalidRequest},
		{name: "reserved compiler", file: "c.yaml", content: "compilers:\n  - name: runtime\n    executable: x\n", wantCode: apperrors.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
		})
	}
}

func TestLoadMissing(t *testing.T) {
	for _, name := range []string{"missing.toml", "missing.yaml"} {
		_, err := Load(filepath.Join(t.TempDir(), name))
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err), name)
	}
}
