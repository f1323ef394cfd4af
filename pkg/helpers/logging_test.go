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

package helpers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// InitLogging swaps the global logger, so these tests are not parallel.
//
//nolint:paralleltest // mutates global logger
func TestInitLogging(t *testing.T) {
	oldLogger := log.Logger
	oldLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = oldLogger
		zerolog.SetGlobalLevel(oldLevel)
	})

	t.Run("writes_to_file_and_extra_writers", func(t *testing.T) {
		logDir := filepath.Join(t.TempDir(), "logs", "nested")
		var buf bytes.Buffer

		require.NoError(t, InitLogging(logDir, false, &buf))
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

		log.Info().Str("id", "firefox").Msg("loaded entry")
		log.Debug().Msg("hidden at info level")

		assert.Contains(t, buf.String(), `"id":"firefox"`)
		assert.Contains(t, buf.String(), `"caller"`)
		assert.NotContains(t, buf.String(), "hidden at info level")

		data, err := os.ReadFile(LogPath(logDir)) //nolint:gosec // test path
		require.NoError(t, err)
		assert.Contains(t, string(data), "loaded entry")
	})

	t.Run("debug_level", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, InitLogging(t.TempDir(), true, &buf))
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

		log.Debug().Msg("planned launch")
		assert.Contains(t, buf.String(), "planned launch")
	})

	t.Run("fails_when_dir_is_a_file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

		err := InitLogging(filepath.Join(file, "logs"), false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create log directory")
	})
}
