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

package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
)

// Environment is a snapshot of the process state the catalog and the
// launch planner depend on. It is built once at startup and passed down
// explicitly so nothing below reads the process environment directly.
type Environment struct {
	// Session holds the forwarded variables that were set, by name.
	Session        map[string]string
	DataHome       string
	Terminal       string
	Locale         string
	DataDirs       []string
	Path           []string
	CurrentDesktop []string
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

var defaultDataDirs = []string{"/usr/local/share", "/usr/share"}

// NewEnvironment builds an Environment from lookup, applying the XDG Base
// Directory defaults for unset data directories. Only variables named in
// forward end up in Session.
func NewEnvironment(lookup LookupFunc, forward []string) Environment {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	env := Environment{
		Session:        make(map[string]string),
		DataHome:       get("XDG_DATA_HOME"),
		Terminal:       strings.TrimSpace(get("TERMINAL")),
		Locale:         messagesLocale(get),
		DataDirs:       splitPathList(get("XDG_DATA_DIRS")),
		Path:           splitPathList(get("PATH")),
		CurrentDesktop: splitDesktops(get("XDG_CURRENT_DESKTOP")),
	}

	if env.DataHome == "" || !filepath.IsAbs(env.DataHome) {
		env.DataHome = ""
		if home := get("HOME"); home != "" {
			env.DataHome = filepath.Join(home, ".local", "share")
		}
	}
	if len(env.DataDirs) == 0 {
		env.DataDirs = slices.Clone(defaultDataDirs)
	}

	for _, name := range forward {
		if v, ok := lookup(name); ok {
			env.Session[name] = v
		}
	}

	return env
}

// FromOS snapshots the running process. Data directories come from
// adrg/xdg so platform defaults outside Linux are respected.
func FromOS(forward []string) Environment {
	env := NewEnvironment(os.LookupEnv, forward)
	env.DataHome = xdg.DataHome
	env.DataDirs = slices.Clone(xdg.DataDirs)
	return env
}

// WithConfig applies user configuration on top of the environment.
func (e Environment) WithConfig(cfg *Instance) Environment {
	if cfg == nil {
		return e
	}
	if t := cfg.Terminal(); t != "" {
		e.Terminal = t
	}
	if l := cfg.LocaleOverride(); l != "" {
		e.Locale = l
	}
	if d := cfg.CatalogDesktops(); len(d) > 0 {
		e.CurrentDesktop = d
	}
	return e
}

// SessionEnv returns the forwarded variables as sorted KEY=VALUE pairs.
func (e Environment) SessionEnv() []string {
	out := make([]string, 0, len(e.Session))
	for k, v := range e.Session {
		out = append(out, k+"="+v)
	}
	slices.Sort(out)
	return out
}

// messagesLocale follows the POSIX precedence for LC_MESSAGES. The C and
// POSIX locales mean untranslated.
func messagesLocale(get func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := get(key)
		if v == "" {
			continue
		}
		if v == "C" || v == "POSIX" || strings.HasPrefix(v, "C.") {
			return ""
		}
		return v
	}
	return ""
}

func splitPathList(s string) []string {
	var out []string
	for _, p := range filepath.SplitList(s) {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitDesktops(s string) []string {
	var out []string
	for _, d := range strings.Split(s, ":") {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}
