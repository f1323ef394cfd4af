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

import "slices"

// DefaultForwardEnv are the session variables a launched application
// needs to reach the display server and the session bus.
var DefaultForwardEnv = []string{
	"DISPLAY",
	"WAYLAND_DISPLAY",
	"XAUTHORITY",
	"XDG_RUNTIME_DIR",
	"XDG_SESSION_TYPE",
	"XDG_CURRENT_DESKTOP",
	"XDG_DATA_DIRS",
	"DBUS_SESSION_BUS_ADDRESS",
	"HOME",
	"USER",
	"PATH",
	"LANG",
	"LC_ALL",
}

type Launch struct {
	Terminal   string   `toml:"terminal,omitempty" validate:"omitempty,nospace"`
	Terminals  []string `toml:"terminals,omitempty,multiline" validate:"dive,required,nospace"`
	ForwardEnv []string `toml:"forward_env,omitempty,multiline" validate:"dive,envname"`
}

// Terminal is the configured terminal emulator. It takes precedence over
// the TERMINAL environment variable.
func (c *Instance) Terminal() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Launch.Terminal
}

func (c *Instance) SetTerminal(terminal string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Launch.Terminal = terminal
}

// Terminals is the preference list searched before the built-in one.
func (c *Instance) Terminals() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.vals.Launch.Terminals)
}

func (c *Instance) ForwardEnv() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.vals.Launch.ForwardEnv)
}
