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

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZaparooProject/go-desktopentry/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_CreatesDefaults(t *testing.T) {
	t.Parallel()

	tempDir := filepath.Join(t.TempDir(), "nested")

	cfg, err := NewConfig(tempDir, BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tempDir, CfgFile), cfg.Path())
	assert.FileExists(t, cfg.Path())
	assert.False(t, cfg.DebugLogging())
	assert.Equal(t, DefaultForwardEnv, cfg.ForwardEnv())
	assert.InDelta(t, DefaultMinSimilarity, cfg.SearchMinSimilarity(), 1e-9)
	assert.Equal(t, DefaultSearchLimit, cfg.SearchLimit())
	assert.Empty(t, cfg.Terminal())
	assert.Empty(t, cfg.Terminals())
	assert.Empty(t, cfg.CatalogExtraDirs())
	assert.False(t, cfg.ShowHidden())
}

func TestLoad_PreservesDefaultsForMissingFields(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), CfgFile)

	minimalConfig := fmt.Sprintf("config_schema = %d\n", SchemaVersion)
	require.NoError(t, os.WriteFile(cfgPath, []byte(minimalConfig), 0o600))

	cfg := &Instance{
		cfgPath:  cfgPath,
		vals:     BaseDefaults.clone(),
		defaults: BaseDefaults.clone(),
	}

	require.NoError(t, cfg.Load())

	assert.Equal(t, DefaultForwardEnv, cfg.vals.Launch.ForwardEnv)
	assert.InDelta(t, DefaultMinSimilarity, cfg.vals.Search.MinSimilarity, 1e-9)
	assert.Equal(t, DefaultSearchLimit, cfg.vals.Search.Limit)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), CfgFile)

	configContent := fmt.Sprintf(`config_schema = %d
debug_logging = true

[locale]
override = "de_DE.UTF-8"

[launch]
terminal = "kitty"
terminals = ["foot", "wezterm"]
forward_env = ["DISPLAY", "MY_VAR"]

[catalog]
extra_dirs = ["/opt/apps/share/applications"]
desktops = ["KDE"]
show_hidden = true

[search]
min_similarity = 0.5
limit = 3
`, SchemaVersion)
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0o600))

	cfg := &Instance{
		cfgPath:  cfgPath,
		vals:     BaseDefaults.clone(),
		defaults: BaseDefaults.clone(),
	}
	require.NoError(t, cfg.Load())

	assert.True(t, cfg.DebugLogging())
	assert.Equal(t, "de_DE.UTF-8", cfg.LocaleOverride())
	assert.Equal(t, "kitty", cfg.Terminal())
	assert.Equal(t, []string{"foot", "wezterm"}, cfg.Terminals())
	assert.Equal(t, []string{"DISPLAY", "MY_VAR"}, cfg.ForwardEnv())
	assert.Equal(t, []string{"/opt/apps/share/applications"}, cfg.CatalogExtraDirs())
	assert.Equal(t, []string{"KDE"}, cfg.CatalogDesktops())
	assert.True(t, cfg.ShowHidden())
	assert.InDelta(t, 0.5, cfg.SearchMinSimilarity(), 1e-9)
	assert.Equal(t, 3, cfg.SearchLimit())

	assert.Equal(t, DefaultForwardEnv, BaseDefaults.Launch.ForwardEnv, "defaults must not be modified")
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "schema mismatch",
			content: "config_schema = 99\n",
			wantErr: "schema version mismatch",
		},
		{
			name:    "invalid toml",
			content: "config_schema = \n",
			wantErr: "failed to unmarshal config",
		},
		{
			name:    "invalid env name",
			content: fmt.Sprintf("config_schema = %d\n[launch]\nforward_env = [\"NOT VALID\"]\n", SchemaVersion),
			wantErr: "not a valid environment variable name",
		},
		{
			name:    "relative extra dir",
			content: fmt.Sprintf("config_schema = %d\n[catalog]\nextra_dirs = [\"apps\"]\n", SchemaVersion),
			wantErr: "must be an absolute path",
		},
		{
			name:    "similarity out of range",
			content: fmt.Sprintf("config_schema = %d\n[search]\nmin_similarity = 2.0\n", SchemaVersion),
			wantErr: "less than or equal to 1",
		},
		{
			name:    "bad locale",
			content: fmt.Sprintf("config_schema = %d\n[locale]\noverride = \"not a locale\"\n", SchemaVersion),
			wantErr: "is not a locale",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfgPath := filepath.Join(t.TempDir(), CfgFile)
			require.NoError(t, os.WriteFile(cfgPath, []byte(tt.content), 0o600))

			cfg := &Instance{cfgPath: cfgPath, defaults: BaseDefaults.clone()}
			err := cfg.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_ValidationErrorType(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), CfgFile)
	content := fmt.Sprintf("config_schema = %d\n[search]\nlimit = -1\n", SchemaVersion)
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	cfg := &Instance{cfgPath: cfgPath, defaults: BaseDefaults.clone()}
	err := cfg.Load()

	var ve *validation.Error
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "gte", ve.Fields[0].Tag)
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	cfg := &Instance{}
	require.Error(t, cfg.Load())
	require.Error(t, cfg.Save())
}

func TestLoad_ReloadCycle(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(t.TempDir(), BaseDefaults)
	require.NoError(t, err)

	cfg.SetTerminal("alacritty")
	cfg.SetShowHidden(true)
	cfg.SetLocaleOverride("fr")
	require.NoError(t, cfg.Save())

	require.NoError(t, cfg.Load())

	assert.Equal(t, "alacritty", cfg.Terminal())
	assert.True(t, cfg.ShowHidden())
	assert.Equal(t, "fr", cfg.LocaleOverride())
	assert.Equal(t, DefaultSearchLimit, cfg.SearchLimit(), "defaults intact after reload")
}

func TestAccessors_ReturnCopies(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(t.TempDir(), BaseDefaults)
	require.NoError(t, err)

	fwd := cfg.ForwardEnv()
	fwd[0] = "CHANGED"

	assert.Equal(t, DefaultForwardEnv[0], cfg.ForwardEnv()[0])
}
