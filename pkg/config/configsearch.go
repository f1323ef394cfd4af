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

const (
	DefaultMinSimilarity = 0.8
	DefaultSearchLimit   = 10
)

type Search struct {
	MinSimilarity float64 `toml:"min_similarity" validate:"gte=0,lte=1"`
	Limit         int     `toml:"limit" validate:"gte=0"`
}

func (c *Instance) SearchMinSimilarity() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Search.MinSimilarity
}

// SearchLimit caps the number of results, zero means unlimited.
func (c *Instance) SearchLimit() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Search.Limit
}
