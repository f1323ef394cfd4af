// go-desktopentry
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of go-desktopentry.
//
// go-desktopentry is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-desktopentry is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-desktopentry.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// FSHelper provides utilities for filesystem mocking in tests
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing
func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// NewOSFS creates a filesystem helper using the real filesystem (for integration tests)
func NewOSFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewOsFs(),
	}
}

// WriteFile writes content to a file, creating parent directories.
func (h *FSHelper) WriteFile(path, content string) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for file %s: %w", path, err)
	}
	if err := afero.WriteFile(h.Fs, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// CreateExecutable creates an empty file with the executable bits set.
func (h *FSHelper) CreateExecutable(path string) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for executable %s: %w", path, err)
	}
	if err := afero.WriteFile(h.Fs, path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		return fmt.Errorf("failed to write executable %s: %w", path, err)
	}
	if err := h.Fs.Chmod(path, 0o755); err != nil {
		return fmt.Errorf("failed to chmod executable %s: %w", path, err)
	}
	return nil
}

// CreateDesktopEntry writes a minimal valid application entry with the
// given extra lines appended to its [Desktop Entry] group.
func (h *FSHelper) CreateDesktopEntry(path, name, exec string, extra ...string) error {
	content := "[Desktop Entry]\nType=Application\nName=" + name + "\nExec=" + exec + "\n"
	for _, line := range extra {
		content += line + "\n"
	}
	return h.WriteFile(path, content)
}

// CreateDirectoryStructure creates a directory tree. A string value is a
// file, a nested map is a directory and nil is an empty directory.
func (h *FSHelper) CreateDirectoryStructure(structure map[string]any) error {
	return h.createStructureRecursive("", structure)
}

func (h *FSHelper) createStructureRecursive(basePath string, structure map[string]any) error {
	for name, content := range structure {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := h.WriteFile(fullPath, v); err != nil {
				return err
			}
		case map[string]any:
			if err := h.Fs.MkdirAll(fullPath, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", fullPath, err)
			}
			if err := h.createStructureRecursive(fullPath, v); err != nil {
				return err
			}
		case nil:
			if err := h.Fs.MkdirAll(fullPath, 0o755); err != nil {
				return fmt.Errorf("failed to create empty directory %s: %w", fullPath, err)
			}
		default:
			return fmt.Errorf("unsupported structure value %T for %s", v, fullPath)
		}
	}
	return nil
}

// FileExists checks if a file exists
func (h *FSHelper) FileExists(path string) bool {
	exists, err := afero.Exists(h.Fs, path)
	if err != nil {
		return false
	}
	return exists
}

// RemoveFile deletes path.
func (h *FSHelper) RemoveFile(path string) error {
	if err := h.Fs.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// ApplicationsTree returns a data directory layout with a nested vendor
// directory, a hidden entry and a broken entry.
func ApplicationsTree() map[string]any {
	return map[string]any{
		"applications": map[string]any{
			"firefox.desktop": "[Desktop Entry]\nType=Application\nName=Firefox\n" +
				"GenericName=Web Browser\nKeywords=internet;www;\nExec=firefox %u\n",
			"org.gnome.Calculator.desktop": "[Desktop Entry]\nType=Application\nName=Calculator\n" +
				"Keywords=calculation;arithmetic;\nExec=gnome-calculator\nOnlyShowIn=GNOME;\n",
			"hidden.desktop": "[Desktop Entry]\nType=Application\nName=Hidden\nExec=hidden\nNoDisplay=true\n",
			"broken.desktop": "[Desktop Entry]\nName=Broken\n",
			"README":         "not an entry\n",
			"kde": map[string]any{
				"konsole.desktop": "[Desktop Entry]\nType=Application\nName=Konsole\n" +
					"GenericName=Terminal\nExec=konsole\nTerminal=false\n",
			},
		},
	}
}
