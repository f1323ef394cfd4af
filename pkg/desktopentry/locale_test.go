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

package desktopentry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want LocaleTag
	}{
		{in: "es", want: LocaleTag{Lang: "es"}},
		{in: "es_MX", want: LocaleTag{Lang: "es", Country: "MX"}},
		{in: "es_MX.UTF-8", want: LocaleTag{Lang: "es", Country: "MX"}},
		{in: "sr@latin", want: LocaleTag{Lang: "sr", Modifier: "latin"}},
		{in: "sr_RS@latin", want: LocaleTag{Lang: "sr", Country: "RS", Modifier: "latin"}},
		{in: "sr_RS.UTF-8@latin", want: LocaleTag{Lang: "sr", Country: "RS", Modifier: "latin"}},
		{in: "de.ISO-8859-1", want: LocaleTag{Lang: "de"}},
		{in: "", want: LocaleTag{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseLocale(tt.in))
		})
	}
}

func TestLocaleTag_Candidates(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"sr_RS@latin", "sr_RS", "sr@latin", "sr"},
		ParseLocale("sr_RS.UTF-8@latin").Candidates(),
	)
	assert.Equal(t, []string{"es_MX", "es"}, ParseLocale("es_MX").Candidates())
	assert.Equal(t, []string{"sr@latin", "sr"}, ParseLocale("sr@latin").Candidates())
	assert.Equal(t, []string{"de"}, ParseLocale("de").Candidates())
	assert.Nil(t, ParseLocale("").Candidates())
}

func TestLocaleTag_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sr_RS@latin", ParseLocale("sr_RS.UTF-8@latin").String())
	assert.Equal(t, "en_US", ParseLocale("en_US.UTF-8").String())
	assert.True(t, LocaleTag{}.IsZero())
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw        string
		wantKey    string
		wantLocale string
		wantLocal  bool
	}{
		{raw: "Name", wantKey: "Name"},
		{raw: "Name[en_US]", wantKey: "Name", wantLocale: "en_US", wantLocal: true},
		{raw: "Name[sr@latin]", wantKey: "Name", wantLocale: "sr@latin", wantLocal: true},
		{raw: "Name[]", wantKey: "Name", wantLocale: "", wantLocal: true},
		{raw: "Name[en", wantKey: "Name[en"},
		{raw: "Name]en[", wantKey: "Name]en["},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			key, locale, localized := ParseKey(tt.raw)

			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantLocale, locale)
			assert.Equal(t, tt.wantLocal, localized)
		})
	}
}

func parseString(t *testing.T, content string) *Document {
	t.Helper()

	doc, err := Parse(strings.NewReader(content), "/tmp/test.desktop")
	require.NoError(t, err)
	return doc
}

func TestGroup_LocalizedFallback(t *testing.T) {
	t.Parallel()

	doc := parseString(t, "[Desktop Entry]\nType=Application\nExec=app\nName=Default\nName[es]=Hola\n")
	g := doc.DesktopEntry()

	for _, locale := range []string{"es", "es_MX", "es_MX.UTF-8", "es@euro"} {
		v, ok := g.Localized(KeyName, locale)
		require.True(t, ok, locale)
		assert.Equal(t, "Hola", v.Text(), locale)
	}

	for _, locale := range []string{"de", ""} {
		v, ok := g.Localized(KeyName, locale)
		require.True(t, ok, locale)
		assert.Equal(t, "Default", v.Text(), locale)
	}
}

func TestGroup_LocalizedSkipsUnrelatedCountry(t *testing.T) {
	t.Parallel()

	doc := parseString(t, "[Desktop Entry]\nType=Application\nExec=app\nName=Default\nName[de]=X\nName[de_DE]=Y\n")

	v, ok := doc.DesktopEntry().Localized(KeyName, "de_AT")
	require.True(t, ok)
	assert.Equal(t, "X", v.Text())

	v, ok = doc.DesktopEntry().Localized(KeyName, "de_DE.UTF-8")
	require.True(t, ok)
	assert.Equal(t, "Y", v.Text())
}

func TestGroup_LocalizedWithoutLocaleIgnoresVariants(t *testing.T) {
	t.Parallel()

	doc := parseString(t, "[Desktop Entry]\nType=Application\nExec=app\nName=Default\nComment[fr]=Seulement\n")

	_, ok := doc.DesktopEntry().Localized(KeyComment, "")
	assert.False(t, ok)

	v, ok := doc.DesktopEntry().Localized(KeyComment, "fr_FR")
	require.True(t, ok)
	assert.Equal(t, "Seulement", v.Text())
}

func TestGroup_LocalizedComplexFallback(t *testing.T) {
	t.Parallel()

	doc, err := ParseFile(testdataFS(), "testdata/complex_localization.desktop")
	require.NoError(t, err)
	g := doc.DesktopEntry()

	tests := []struct {
		locale string
		want   string
	}{
		{locale: "en_US", want: "American English Name"},
		{locale: "en_GB", want: "British English Name"},
		{locale: "en_AU", want: "English Name"},
		{locale: "es_ES", want: "Nombre en España"},
		{locale: "es_MX", want: "Nombre en México"},
		{locale: "es_AR", want: "Nombre en Español"},
		{locale: "sr_RS@latin", want: "Srpski (Srbija)"},
		{locale: "sr_ME@latin", want: "Srpski"},
		{locale: "sr_RS", want: "Српски"},
		{locale: "de_CH", want: "Deutscher Name"},
		{locale: "ja_JP.UTF-8", want: "Default Name"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			t.Parallel()

			v, ok := g.Localized(KeyName, tt.locale)
			require.True(t, ok)
			assert.Equal(t, tt.want, v.Text())
		})
	}

	assert.Equal(t,
		[]string{"de", "de_DE", "en", "en_GB", "en_US", "es", "es_ES", "es_MX", "sr", "sr@latin", "sr_RS@latin"},
		g.Locales(KeyName),
	)
}
