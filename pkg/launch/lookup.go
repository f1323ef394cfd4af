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

package launch

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var errNotFound = errors.New("executable not found")

// isExecutable stats path on fsys. A missing file returns false with no
// error, any other stat failure is returned.
func isExecutable(fsys afero.Fs, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err //nolint:wrapcheck // wrapped by caller with the launch error kind
	}
	return !info.IsDir() && info.Mode().Perm()&0o111 != 0, nil
}

// lookPath resolves name the way a shell would: absolute paths are
// checked directly, bare names are searched in dirs in order. Relative
// paths with a separator never match since the planner has no working
// directory of its own.
func lookPath(fsys afero.Fs, dirs []string, name string) (string, error) {
	if name == "" {
		return "", errNotFound
	}

	if filepath.IsAbs(name) {
		ok, err := isExecutable(fsys, name)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", errNotFound
		}
		return name, nil
	}

	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return "", errNotFound
	}

	for _, dir := range dirs {
		if dir == "" || !filepath.IsAbs(dir) {
			continue
		}
		candidate := filepath.Join(dir, name)
		// Unreadable PATH entries are skipped, like a shell does.
		if ok, _ := isExecutable(fsys, candidate); ok {
			return candidate, nil
		}
	}

	return "", errNotFound
}
