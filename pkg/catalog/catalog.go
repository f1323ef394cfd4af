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
	"context"
	"runtime"
	"slices"

	"github.com/ZaparooProject/go-desktopentry/pkg/config"
	"github.com/ZaparooProject/go-desktopentry/pkg/desktopentry"
	"github.com/ZaparooProject/go-desktopentry/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Failure records a desktop file that could not be loaded.
type Failure struct {
	Err  error
	Path string
}

type Option func(*Catalog)

// WithFs replaces the filesystem the catalog reads from.
func WithFs(fsys afero.Fs) Option {
	return func(c *Catalog) {
		c.fs = fsys
	}
}

// WithExtraDirs adds application directories scanned after the XDG ones.
func WithExtraDirs(dirs ...string) Option {
	return func(c *Catalog) {
		c.extraDirs = dirs
	}
}

// WithConcurrency bounds the number of files parsed at once.
func WithConcurrency(n int) Option {
	return func(c *Catalog) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// Catalog holds every installed application, keyed by desktop file ID.
// It is safe for concurrent use; Load replaces the contents atomically.
type Catalog struct {
	fs          afero.Fs
	byID        map[string]*desktopentry.Application
	env         config.Environment
	extraDirs   []string
	dirs        []string
	apps        []*desktopentry.Application
	failures    []Failure
	concurrency int
	mu          syncutil.RWMutex
}

//nolint:gocritic // environment snapshot copied for immutability
func New(env config.Environment, opts ...Option) *Catalog {
	c := &Catalog{
		fs:          afero.NewOsFs(),
		env:         env,
		byID:        make(map[string]*desktopentry.Application),
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load scans the application directories and parses every desktop file.
// Files that fail to parse are skipped and reported by Failures. When two
// files share an ID the one from the higher precedence directory wins.
// Only cancellation of ctx makes Load fail.
func (c *Catalog) Load(ctx context.Context) error {
	dirs := ApplicationDirs(c.fs, c.env, c.extraDirs)
	candidates, err := FindEntries(c.fs, dirs)
	if err != nil {
		return err
	}

	type result struct {
		app *desktopentry.Application
		err error
	}
	results := make([]result, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, cand := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err //nolint:wrapcheck // context error returned as is
			}
			doc, err := desktopentry.ParseFile(c.fs, cand.Path)
			if err != nil {
				results[i] = result{err: err}
				return nil
			}
			results[i] = result{app: desktopentry.NewApplication(
				doc,
				desktopentry.WithLocale(c.env.Locale),
				desktopentry.WithApplicationRoots(dirs...),
			)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err //nolint:wrapcheck // only context errors reach here
	}

	byID := make(map[string]*desktopentry.Application, len(candidates))
	apps := make([]*desktopentry.Application, 0, len(candidates))
	var failures []Failure

	for i, res := range results {
		if res.err != nil {
			log.Warn().Err(res.err).Str("path", candidates[i].Path).Msg("skipping desktop entry")
			failures = append(failures, Failure{Path: candidates[i].Path, Err: res.err})
			continue
		}
		id := res.app.ID()
		if prev, dup := byID[id]; dup {
			log.Debug().
				Str("id", id).
				Str("path", res.app.Path()).
				Str("shadowed_by", prev.Path()).
				Msg("desktop entry shadowed")
			continue
		}
		byID[id] = res.app
		apps = append(apps, res.app)
	}

	c.mu.Lock()
	c.dirs = dirs
	c.byID = byID
	c.apps = apps
	c.failures = failures
	c.mu.Unlock()

	log.Info().
		Int("applications", len(apps)).
		Int("skipped", len(failures)).
		Strs("dirs", dirs).
		Msg("catalog loaded")

	return nil
}

// All returns every loaded application in directory precedence order.
func (c *Catalog) All() []*desktopentry.Application {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.apps)
}

func (c *Catalog) Get(id string) (*desktopentry.Application, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	app, ok := c.byID[id]
	return app, ok
}

// Visible returns the applications that should appear in menus for the
// current desktop.
func (c *Catalog) Visible() []*desktopentry.Application {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []*desktopentry.Application
	for _, app := range c.apps {
		if app.ShouldShow(c.env.CurrentDesktop) {
			out = append(out, app)
		}
	}
	return out
}

// Dirs returns the application directories used by the last Load.
func (c *Catalog) Dirs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.dirs)
}

func (c *Catalog) Failures() []Failure {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.failures)
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.apps)
}
