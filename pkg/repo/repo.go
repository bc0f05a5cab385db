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

package repo

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	apperrors "github.com/openmethod/doccollect/pkg/errors"
)

// Root returns the top-level directory of the work tree enclosing start.
// When override is set it is returned as an absolute path without consulting
// version control, but it must name an existing directory.
func Root(start, override string) (string, error) {
	if override != "" {
		return checkDir(override)
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", start, err)
	}

	r, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
				"not inside a git repository", err, map[string]any{"path": abs})
		}
		return "", apperrors.WrapWithContext(apperrors.ErrCodeUnavailable,
			"failed to open git repository", err, map[string]any{"path": abs})
	}

	wt, err := r.Worktree()
	if err != nil {
		return "", apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
			"repository has no work tree", err, map[string]any{"path": abs})
	}

	root := wt.Filesystem.Root()
	slog.Debug("resolved repository root", "start", abs, "root", root)
	return root, nil
}

func checkDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
			"repository root not accessible", err, map[string]any{"path": abs})
	}
	if !info.IsDir() {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"repository root is not a directory", map[string]any{"path": abs})
	}
	return abs, nil
}
