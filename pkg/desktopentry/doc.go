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

// Package desktopentry parses freedesktop.org Desktop Entry files.
//
// A file is parsed into a Document of named groups. Each value is
// classified once into a boolean, number, string or string list, and
// localized keys (Name[de_DE]) are resolved with the standard locale
// fallback: lang_COUNTRY@MODIFIER, lang_COUNTRY, lang@MODIFIER, lang and
// finally the untranslated key.
//
// Example:
//
//	doc, err := desktopentry.ParseFile(afero.NewOsFs(), "/usr/share/applications/firefox.desktop")
//	if err != nil {
//	    return err
//	}
//	app := desktopentry.NewApplication(doc, desktopentry.WithLocale("de_DE.UTF-8"))
//	fmt.Println(app.ID(), app.Name())
package desktopentry
