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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ZaparooProject/go-desktopentry/pkg/config"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func writeEntry(t *testing.T, path, name string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	content := "[Desktop Entry]\nType=Application\nName=" + name + "\nExec=" + name + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// Not parallel: goleak inspects every goroutine in the process.
//
//nolint:paralleltest // goleak
func TestWatcher_ReloadsAfterDebounce(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dataHome := t.TempDir()
	appDir := filepath.Join(dataHome, "applications")
	writeEntry(t, filepath.Join(appDir, "first.desktop"), "first")
	require.NoError(t, os.MkdirAll(filepath.Join(appDir, "vendor"), 0o750))

	c := New(config.Environment{DataHome: dataHome}, WithFs(afero.NewOsFs()))
	require.NoError(t, c.Load(context.Background()))
	require.Equal(t, 1, c.Len())

	clock := clockwork.NewFakeClock()
	reloaded := make(chan error, 4)
	w := NewWatcher(c,
		WithClock(clock),
		WithDebounce(time.Second),
		WithOnReload(func(err error) { reloaded <- err }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	second := filepath.Join(appDir, "vendor", "second.desktop")
	secondContent := "[Desktop Entry]\nType=Application\nName=second\nExec=second\n"

	// The watcher is registered once a change arms the debounce timer.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(second, []byte(secondContent), 0o600)
		waitCtx, waitCancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer waitCancel()
		return clock.BlockUntilContext(waitCtx, 1) == nil
	}, 5*time.Second, 10*time.Millisecond)

	select {
	case <-reloaded:
		t.Fatal("reloaded before the debounce interval elapsed")
	default:
	}

	clock.Advance(time.Second)

	select {
	case err := <-reloaded:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("catalog was not reloaded")
	}

	_, ok := c.Get("vendor-second")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

//nolint:paralleltest // goleak
func TestWatcher_StopsWithoutDirectories(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	c := New(config.Environment{}, WithFs(afero.NewMemMapFs()))
	require.NoError(t, c.Load(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewWatcher(c).Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
