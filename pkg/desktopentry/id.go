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

package desktopentry

import (
	"path/filepath"
	"strings"
)

// FileExtension is the suffix of desktop entry files.
const FileExtension = ".desktop"

// DeriveID returns the desktop file ID for path. For a file below one of
// the given applications directories the ID is the relative path without
// the extension and with separators turned into '-', e.g.
// /usr/share/applications/org/example/Viewer.desktop is
// "org-example-Viewer". Any other file falls back to its base name without
// extension.
func DeriveID(path string, appRoots []string) string {
	clean := filepath.Clean(path)

	for _, root := range appRoots {
		if root == "" {
			continue
		}
		prefix := filepath.Clean(root) + string(filepath.Separator)
		if !strings.HasPrefix(clean, prefix) {
			continue
		}
		rel := strings.TrimSuffix(strings.TrimPrefix(clean, prefix), FileExtension)
		if rel == "" {
			continue
		}
		return strings.ReplaceAll(rel, string(filepath.Separator), "-")
	}

	base := filepath.Base(clean)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
