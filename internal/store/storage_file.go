// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-webhooks/models"
)

// fileIndent matches the layout of hand-edited registry files.
const fileIndent = "    "

// fileRegistryStorage keeps the registry as a single JSON object at path:
// top-level keys are event names, values are arrays of URL strings.
type fileRegistryStorage struct {
	path string
}

// NewFileRegistryStorage constructs a JSON file backed [RegistryStorage].
// The file is not touched until the first Load or Save; use [InitRegistryFile]
// to create it.
func NewFileRegistryStorage(path string) RegistryStorage {
	return &fileRegistryStorage{path: path}
}

// InitRegistryFile creates an empty registry document at path unless a file
// already exists there.
func InitRegistryFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error checking registry file: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating registry dir: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		return fmt.Errorf("error creating registry file: %w", err)
	}

	return nil
}

// Load reads and decodes the whole file. A missing file is reported as
// unavailable storage, not as an empty registry.
func (f *fileRegistryStorage) Load(ctx context.Context) (models.Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageUnavailable("read registry file", err)
	}

	content, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, storageUnavailable(fmt.Sprintf("storage file at path %s does not exist", f.path), err)
		}
		return nil, storageUnavailable(fmt.Sprintf("error reading storage file at path %s", f.path), err)
	}

	var registry models.Registry
	if err = json.Unmarshal(content, &registry); err != nil {
		return nil, storageUnavailable(fmt.Sprintf("corrupt storage file at path %s", f.path), err)
	}

	if registry == nil {
		registry = models.Registry{}
	}

	return registry, nil
}

// Save replaces the file atomically: the registry is written to a temporary
// file in the same directory which is then renamed over path. A failed Save
// leaves the previous contents untouched.
func (f *fileRegistryStorage) Save(ctx context.Context, registry models.Registry) error {
	if err := ctx.Err(); err != nil {
		return storageUnavailable("write registry file", err)
	}

	payload, err := json.MarshalIndent(registry, "", fileIndent)
	if err != nil {
		return storageUnavailable("encode registry", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".registry-*.json")
	if err != nil {
		return storageUnavailable("create temporary registry file", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(append(payload, '\n')); err != nil {
		tmp.Close()
		return storageUnavailable("write temporary registry file", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return storageUnavailable("sync temporary registry file", err)
	}
	if err = tmp.Close(); err != nil {
		return storageUnavailable("close temporary registry file", err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return storageUnavailable("chmod temporary registry file", err)
	}

	if err = os.Rename(tmpName, f.path); err != nil {
		return storageUnavailable(fmt.Sprintf("replace storage file at path %s", f.path), err)
	}

	return nil
}
