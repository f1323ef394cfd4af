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

package command

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealExecutor_Run(t *testing.T) {
	t.Parallel()

	executor := &RealExecutor{}

	t.Run("executes_successful_command", func(t *testing.T) {
		t.Parallel()

		err := executor.Run(context.Background(), "true")

		assert.NoError(t, err)
	})

	t.Run("returns_error_for_failed_command", func(t *testing.T) {
		t.Parallel()

		err := executor.Run(context.Background(), "false")

		assert.Error(t, err)
	})

	t.Run("returns_error_for_nonexistent_command", func(t *testing.T) {
		t.Parallel()

		err := executor.Run(context.Background(), "nonexistent_command_that_should_not_exist_12345")

		require.Error(t, err)
	})
}

func TestRealExecutor_Start(t *testing.T) {
	t.Parallel()

	executor := &RealExecutor{}

	t.Run("starts_command_without_waiting", func(t *testing.T) {
		t.Parallel()

		err := executor.Start(context.Background(), "true")

		assert.NoError(t, err)
	})

	t.Run("returns_error_for_nonexistent_command", func(t *testing.T) {
		t.Parallel()

		err := executor.Start(context.Background(), "nonexistent_command_that_should_not_exist_12345")

		require.Error(t, err)
	})
}

func TestRealExecutor_StartWithOptions(t *testing.T) {
	t.Parallel()

	executor := &RealExecutor{}

	t.Run("starts_command_with_options", func(t *testing.T) {
		t.Parallel()

		opts := StartOptions{HideWindow: true}
		err := executor.StartWithOptions(context.Background(), opts, "true")

		assert.NoError(t, err)
	})

	t.Run("starts_command_without_hide_window", func(t *testing.T) {
		t.Parallel()

		opts := StartOptions{HideWindow: false}
		err := executor.StartWithOptions(context.Background(), opts, "true")

		assert.NoError(t, err)
	})

	t.Run("returns_error_for_nonexistent_command", func(t *testing.T) {
		t.Parallel()

		opts := StartOptions{}
		err := executor.StartWithOptions(context.Background(), opts, "nonexistent_command_that_should_not_exist_12345")

		require.Error(t, err)
	})
}

func TestRealExecutor_StartDetached(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}

	executor := &RealExecutor{}

	t.Run("runs_in_dir_with_explicit_env", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		opts := DetachedOptions{
			Dir: dir,
			Env: []string{"DESKTOPENTRY_MARKER=detached"},
		}

		pid, err := executor.StartDetached(
			context.Background(), opts,
			"/bin/sh", "-c", `printf '%s' "$DESKTOPENTRY_MARKER" > out.txt`,
		)
		require.NoError(t, err)
		assert.Positive(t, pid)

		outPath := filepath.Join(dir, "out.txt")
		require.Eventually(t, func() bool {
			data, readErr := os.ReadFile(outPath) //nolint:gosec // test file
			return readErr == nil && strings.TrimSpace(string(data)) == "detached"
		}, 5*time.Second, 20*time.Millisecond)
	})

	t.Run("returns_error_for_nonexistent_command", func(t *testing.T) {
		t.Parallel()

		_, err := executor.StartDetached(
			context.Background(), DetachedOptions{},
			"/nonexistent/command_that_should_not_exist_12345",
		)
		require.Error(t, err)
	})

	t.Run("returns_error_for_missing_dir", func(t *testing.T) {
		t.Parallel()

		opts := DetachedOptions{Dir: filepath.Join(t.TempDir(), "missing")}
		_, err := executor.StartDetached(context.Background(), opts, "/bin/sh", "-c", "true")
		require.Error(t, err)
	})

	t.Run("honours_cancelled_context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := executor.StartDetached(ctx, DetachedOptions{}, "/bin/sh", "-c", "true")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestExecutor_Interface(t *testing.T) {
	t.Parallel()

	// Verify that RealExecutor implements Executor
	var _ Executor = (*RealExecutor)(nil)
}
