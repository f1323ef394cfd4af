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

import "strings"

// LocaleTag is a parsed lang[_COUNTRY][.ENCODING][@MODIFIER] locale. The
// encoding is dropped while parsing.
type LocaleTag struct {
	Lang     string
	Country  string
	Modifier string
}

// ParseLocale parses a POSIX locale name such as "sr_RS.UTF-8@latin".
func ParseLocale(s string) LocaleTag {
	s = strings.TrimSpace(s)

	var tag LocaleTag
	if at := strings.IndexByte(s, '@'); at >= 0 {
		tag.Modifier = s[at+1:]
		s = s[:at]
	}
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s = s[:dot]
	}
	if us := strings.IndexByte(s, '_'); us >= 0 {
		tag.Country = s[us+1:]
		s = s[:us]
	}
	tag.Lang = s

	return tag
}

// IsZero reports whether the tag has no language.
func (t LocaleTag) IsZero() bool {
	return t.Lang == ""
}

func (t LocaleTag) String() string {
	s := t.Lang
	if t.Country != "" {
		s += "_" + t.Country
	}
	if t.Modifier != "" {
		s += "@" + t.Modifier
	}
	return s
}

// Candidates lists the locale keys to try, most specific first:
// lang_COUNTRY@MODIFIER, lang_COUNTRY, lang@MODIFIER, lang. Forms that need
// a component the tag lacks are left out.
func (t LocaleTag) Candidates() []string {
	if t.IsZero() {
		return nil
	}

	out := make([]string, 0, 4)
	if t.Country != "" && t.Modifier != "" {
		out = append(out, t.Lang+"_"+t.Country+"@"+t.Modifier)
	}
	if t.Country != "" {
		out = append(out, t.Lang+"_"+t.Country)
	}
	if t.Modifier != "" {
		out = append(out, t.Lang+"@"+t.Modifier)
	}
	return append(out, t.Lang)
}

// ParseKey splits "Key[locale]" into its base key and locale. Without a
// well formed bracket pair the whole input is the key.
func ParseKey(raw string) (key, locale string, localized bool) {
	open := strings.IndexByte(raw, '[')
	if open < 0 {
		return raw, "", false
	}
	end := strings.IndexByte(raw[open+1:], ']')
	if end < 0 {
		return raw, "", false
	}
	return raw[:open], raw[open+1 : open+1+end], true
}
