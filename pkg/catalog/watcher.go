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
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ZaparooProject/go-desktopentry/pkg/desktopentry"
	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// DefaultDebounce is how long the watcher waits for changes to settle
// before reloading. Package managers touch many files in a burst.
const DefaultDebounce = 500 * time.Millisecond

type WatcherOption func(*Watcher)

func WithClock(clock clockwork.Clock) WatcherOption {
	return func(w *Watcher) {
		w.clock = clock
	}
}

func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithOnReload registers a callback run after every reload triggered by
// a change, with the error from Load.
func WithOnReload(fn func(error)) WatcherOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// Watcher reloads a Catalog when files in its application directories
// change. Directories that do not exist when Run starts are not watched.
type Watcher struct {
	catalog  *Catalog
	clock    clockwork.Clock
	onReload func(error)
	debounce time.Duration
}

func NewWatcher(catalog *Catalog, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		catalog:  catalog,
		clock:    clockwork.NewRealClock(),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is cancelled. The catalog's current directories
// and their subdirectories are watched, and directories created later are
// added as they appear.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing file watcher")
		}
	}()

	for _, dir := range w.catalog.Dirs() {
		w.addTree(watcher, dir)
	}

	log.Info().Strs("dirs", w.catalog.Dirs()).Msg("watching application directories")

	var (
		timer  clockwork.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(watcher, event) {
				continue
			}
			log.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("application directory changed")
			if timer == nil {
				timer = w.clock.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.Chan()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("error in file watcher")
		case <-timerC:
			timerC = nil
			loadErr := w.catalog.Load(ctx)
			if loadErr != nil {
				log.Error().Err(loadErr).Msg("failed to reload catalog")
			}
			if w.onReload != nil {
				w.onReload(loadErr)
			}
		}
	}
}

func (w *Watcher) relevant(watcher *fsnotify.Watcher, event fsnotify.Event) bool {
	if event.Has(fsnotify.Create) {
		if info, err := w.catalog.fs.Stat(event.Name); err == nil && info.IsDir() {
			w.addTree(watcher, event.Name)
			return true
		}
	}
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return false
	}
	return strings.HasSuffix(event.Name, desktopentry.FileExtension) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func (w *Watcher) addTree(watcher *fsnotify.Watcher, root string) {
	err := afero.Walk(w.catalog.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil || !info.IsDir() {
			return nil
		}
		if addErr := watcher.Add(path); addErr != nil {
			log.Warn().Err(addErr).Str("dir", path).Msg("cannot watch directory")
		}
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("dir", root).Msg("cannot walk directory")
	}
}
