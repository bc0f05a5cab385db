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

package runner

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/openmethod/doccollect/pkg/errors"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestProcessExecutorCapturesStreams(t *testing.T) {
	skipOnWindows(t)

	p := NewProcessExecutor()
	res, err := p.Run(t.Context(), []string{"sh", "-c", "echo out1; echo out2; echo err >&2; exit 3"})
	require.NoError(t, err)

	assert.Equal(t, 3, res.ExitCode)
	assert.False(t, res.Succeeded())
	assert.Equal(t, []string{"out1", "out2"}, res.Stdout)
	assert.Equal(t, []string{"err"}, res.Stderr)
}

func TestProcessExecutorSuccess(t *testing.T) {
	skipOnWindows(t)

	res, err := NewProcessExecutor(WithDir(t.TempDir())).Run(t.Context(), []string{"sh", "-c", "true"})
	require.NoError(t, err)
	assert.True(t, res.Succeeded())
	assert.Empty(t, res.Stdout)
	assert.Empty(t, res.Stderr)
}

func TestProcessExecutorMissingProgram(t *testing.T) {
	_, err := NewProcessExecutor().Run(t.Context(), []string{"doccollect-no-such-compiler"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeUnavailable, apperrors.CodeOf(err))
}

func TestProcessExecutorEmptyCommand(t *testing.T) {
	_, err := NewProcessExecutor().Run(t.Context(), nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
}

func TestProcessExecutorTimeout(t *testing.T) {
	skipOnWindows(t)

	p := NewProcessExecutor(WithTimeout(50 * time.Millisecond))
	_, err := p.Run(t.Context(), []string{"sleep", "5"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeTimeout, apperrors.CodeOf(err))
}

func TestProcessExecutorCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := NewProcessExecutor().Run(ctx, []string{"sh", "-c", "true"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestExecutorFunc(t *testing.T) {
	var got []string
	var e Executor = ExecutorFunc(func(_ context.Context, argv []string) (*Result, error) {
		got = argv
		return &Result{ExitCode: 1, Stderr: []string{"error: X"}}, nil
	})

	res, err := e.Run(t.Context(), []string{"clang++", "a.cpp"})
	require.NoError(t, err)
	assert.Equal(t, []string{"clang++", "a.cpp"}, got)
	assert.Equal(t, []string{"error: X"}, res.Stderr)
}
