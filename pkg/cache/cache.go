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
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"slices"

	"github.com/openmethod/doccollect/pkg/defaults"
	apperrors "github.com/openmethod/doccollect/pkg/errors"
	"github.com/openmethod/doccollect/pkg/serializer"
)

// RuntimeKey names the entry holding output of a successfully built example.
const RuntimeKey = defaults.RuntimeKey

// Indent is the number of spaces used for cache file indentation.
const Indent = 4

// Entry maps a compiler name (or RuntimeKey) to its captured output lines.
type Entry map[string][]string

// HasRuntime reports whether the entry holds runtime output.
// Presence of the key counts, even with no lines.
func (e Entry) HasRuntime() bool {
	_, ok := e[RuntimeKey]
	return ok
}

// Keys returns the entry keys in sorted order.
func (e Entry) Keys() []string {
	return slices.Sorted(maps.Keys(e))
}

// Clone returns a deep copy of the entry.
func (e Entry) Clone() Entry {
	out := make(Entry, len(e))
	for k, v := range e {
		out[k] = slices.Clone(v)
	}
	return out
}

// Store reads and writes cache entries in one format.
type Store struct {
	format serializer.Format
}

// NewStore returns a Store for the given format. Table format cannot be read
// back, so it falls back to JSON.
func NewStore(format serializer.Format) *Store {
	if format.IsUnknown() || format == serializer.FormatTable {
		format = serializer.FormatJSON
	}
	return &Store{format: format}
}

// Format returns the store's serialization format.
func (s *Store) Format() serializer.Format {
	return s.format
}

// Extension returns the cache file extension for the store's format.
func (s *Store) Extension() string {
	if s.format == serializer.FormatJSON {
		return defaults.CacheExtension
	}
	return s.format.Extension()
}

// Load returns the entry stored at path.
// A missing, empty or malformed file yields an empty entry.
func (s *Store) Load(path string) Entry {
	entry, err := serializer.FromFileWithFormat[Entry](path, s.format)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			slog.Debug("no cache file", "path", path)
		case errors.Is(err, io.EOF):
			slog.Debug("empty cache file", "path", path)
		default:
			slog.Warn("ignoring unreadable cache file", "path", path, "error", err)
		}
		return Entry{}
	}
	if *entry == nil {
		return Entry{}
	}
	return *entry
}

// Save replaces the file at path with the full entry.
func (s *Store) Save(path string, entry Entry) error {
	if entry == nil {
		entry = Entry{}
	}
	if err := serializer.WriteFile(path, s.format, entry, Indent, defaults.OutputFilePerm); err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to write cache file", err, map[string]any{"path": path})
	}
	slog.Debug("cache written", "path", path, "keys", len(entry))
	return nil
}

// Load reads a JSON cache file. See Store.Load.
func Load(path string) Entry {
	return NewStore(serializer.FormatJSON).Load(path)
}

// Save writes a JSON cache file. See Store.Save.
func Save(path string, entry Entry) error {
	return NewStore(serializer.FormatJSON).Save(path, entry)
}
