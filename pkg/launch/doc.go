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

// Package launch turns parsed desktop entries into command lines and
// starts them.
//
// The pipeline is validate, expand field codes, tokenize and optionally
// wrap in a terminal emulator:
//
//	planner := launch.NewPlanner(env)
//	plan, err := planner.Plan(app, []string{"/tmp/a b.txt"}, nil)
//	if err != nil {
//		return err
//	}
//	pid, err := launch.NewSpawner(nil).Spawn(ctx, plan)
//
// Every substituted value is quoted with Escape on its own so file names
// containing spaces or shell characters stay a single argument.
package launch
