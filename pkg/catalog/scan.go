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

package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ZaparooProject/go-desktopentry/pkg/desktopentry"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Candidate is a desktop file found under one of the application
// directories.
type Candidate struct {
	Path string
	Root string
}

// FindEntries walks dirs in order and returns every regular *.desktop file
// below them. Within a directory files are returned in lexical order.
// Unreadable subdirectories are skipped with a warning.
func FindEntries(fsys afero.Fs, dirs []string) ([]Candidate, error) {
	var found []Candidate

	for _, root := range dirs {
		err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				if path != root || !errors.Is(err, fs.ErrNotExist) {
					log.Warn().Err(err).Str("path", path).Msg("skipping unreadable path")
				}
				return nil
			}
			if !strings.HasSuffix(path, desktopentry.FileExtension) {
				return nil
			}
			if info.Mode()&os.ModeSymlink != 0 {
				target, statErr := fsys.Stat(path)
				if statErr != nil {
					log.Warn().Err(statErr).Str("path", path).Msg("skipping dangling symlink")
					return nil
				}
				info = target
			}
			if info.Mode().IsRegular() {
				found = append(found, Candidate{Path: path, Root: root})
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	return found, nil
}
