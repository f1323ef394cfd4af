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
	"path/filepath"
	"slices"

	"github.com/ZaparooProject/go-desktopentry/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const applicationsSubdir = "applications"

// SearchDirs lists the candidate application directories in precedence
// order: the user data home first, then each system data directory, then
// extra. Duplicates are dropped, missing directories are kept.
//
//nolint:gocritic // environment snapshot copied for immutability
func SearchDirs(env config.Environment, extra []string) []string {
	bases := make([]string, 0, len(env.DataDirs)+1)
	if env.DataHome != "" {
		bases = append(bases, env.DataHome)
	}
	bases = append(bases, env.DataDirs...)

	dirs := make([]string, 0, len(bases)+len(extra))
	for _, base := range bases {
		if base == "" || !filepath.IsAbs(base) {
			continue
		}
		dirs = appendUnique(dirs, filepath.Join(base, applicationsSubdir))
	}
	for _, dir := range extra {
		if dir == "" {
			continue
		}
		dirs = appendUnique(dirs, filepath.Clean(dir))
	}
	return dirs
}

// ApplicationDirs is SearchDirs filtered to directories that exist on fsys.
//
//nolint:gocritic // environment snapshot copied for immutability
func ApplicationDirs(fsys afero.Fs, env config.Environment, extra []string) []string {
	var existing []string
	for _, dir := range SearchDirs(env, extra) {
		ok, err := afero.DirExists(fsys, dir)
		if err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("cannot stat application directory")
			continue
		}
		if ok {
			existing = append(existing, dir)
		}
	}
	return existing
}

func appendUnique(dirs []string, dir string) []string {
	if slices.Contains(dirs, dir) {
		return dirs
	}
	return append(dirs, dir)
}
