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
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// DefaultTerminals is the built-in emulator preference list, searched
// after the environment and configured preferences.
var DefaultTerminals = []string{
	"x-terminal-emulator",
	"gnome-terminal",
	"konsole",
	"xfce4-terminal",
	"mate-terminal",
	"lxterminal",
	"tilix",
	"terminator",
	"alacritty",
	"kitty",
	"foot",
	"wezterm",
	"urxvt",
	"xterm",
}

// findTerminal returns the path of the first available terminal among
// preferred followed by candidates. Empty names are skipped.
func findTerminal(fsys afero.Fs, dirs []string, preferred string, candidates []string) (string, error) {
	seen := make(map[string]struct{}, len(candidates)+1)

	try := func(name string) (string, bool) {
		if name == "" {
			return "", false
		}
		if _, dup := seen[name]; dup {
			return "", false
		}
		seen[name] = struct{}{}

		path, err := lookPath(fsys, dirs, name)
		if err != nil {
			log.Debug().Err(err).Str("terminal", name).Msg("terminal candidate unavailable")
			return "", false
		}
		return path, true
	}

	if path, ok := try(preferred); ok {
		return path, nil
	}
	for _, name := range candidates {
		if path, ok := try(name); ok {
			return path, nil
		}
	}

	return "", newError(ErrTerminalNotFound, "no terminal emulator found on PATH")
}

// wrapInTerminal runs program inside terminal using the -e convention
// shared by the common emulators.
func wrapInTerminal(terminal, program string, args []string) (string, []string) {
	wrapped := make([]string, 0, len(args)+2)
	wrapped = append(wrapped, "-e", program)
	wrapped = append(wrapped, args...)
	return terminal, wrapped
}
