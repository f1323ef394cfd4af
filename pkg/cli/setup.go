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
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/ZaparooProject/go-desktopentry/pkg/catalog"
	"github.com/ZaparooProject/go-desktopentry/pkg/config"
	"github.com/ZaparooProject/go-desktopentry/pkg/helpers"
	"github.com/ZaparooProject/go-desktopentry/pkg/helpers/command"
	"github.com/ZaparooProject/go-desktopentry/pkg/launch"
	"github.com/ZaparooProject/go-desktopentry/pkg/search"
	"github.com/spf13/afero"
)

// Setup loads the user config and initializes logging. Returns a user
// config object.
//
//nolint:gocritic // config struct copied for immutability
func Setup(configDir, logDir string, defaultConfig config.Values, writers []io.Writer) (*config.Instance, error) {
	cfg, err := config.NewConfig(configDir, defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	err = helpers.InitLogging(logDir, cfg.DebugLogging(), writers...)
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}

	return cfg, nil
}

// NewRunner builds and loads the catalog for env and wires a planner and
// spawner around it.
//
//nolint:gocritic // environment snapshot copied for immutability
func NewRunner(
	ctx context.Context,
	cfg *config.Instance,
	env config.Environment,
	fsys afero.Fs,
	exec command.Executor,
	out io.Writer,
) (*Runner, error) {
	cat := catalog.New(env,
		catalog.WithFs(fsys),
		catalog.WithExtraDirs(cfg.CatalogExtraDirs()...),
	)
	if err := cat.Load(ctx); err != nil {
		return nil, fmt.Errorf("loading applications: %w", err)
	}

	return &Runner{
		Out:     out,
		Catalog: cat,
		Planner: launch.NewPlanner(env,
			launch.WithFs(fsys),
			launch.WithTerminals(cfg.Terminals()...),
		),
		Spawner: launch.NewSpawner(exec),
		Search: search.Options{
			MinSimilarity: float32(cfg.SearchMinSimilarity()),
			Limit:         cfg.SearchLimit(),
		},
		ShowHidden: cfg.ShowHidden(),
	}, nil
}
