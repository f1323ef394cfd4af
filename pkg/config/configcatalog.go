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

type Catalog struct {
	ExtraDirs  []string `toml:"extra_dirs,omitempty,multiline" validate:"dive,required,abspath"`
	Desktops   []string `toml:"desktops,omitempty" validate:"dive,required"`
	ShowHidden bool     `toml:"show_hidden,omitempty"`
}

// CatalogExtraDirs are application directories scanned after the XDG
// data directories.
func (c *Instance) CatalogExtraDirs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.vals.Catalog.ExtraDirs)
}

// CatalogDesktops overrides XDG_CURRENT_DESKTOP when not empty.
func (c *Instance) CatalogDesktops() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.vals.Catalog.Desktops)
}

func (c *Instance) ShowHidden() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Catalog.ShowHidden
}

func (c *Instance) SetShowHidden(show bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Catalog.ShowHidden = show
}
