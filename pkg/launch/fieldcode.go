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

package launch

import (
	"fmt"
	"strings"
)

// FieldCode is a %-prefixed placeholder in an Exec line.
type FieldCode byte

const (
	CodePercent   FieldCode = '%'
	CodeFile      FieldCode = 'f'
	CodeFiles     FieldCode = 'F'
	CodeURL       FieldCode = 'u'
	CodeURLs      FieldCode = 'U'
	CodeIcon      FieldCode = 'i'
	CodeName      FieldCode = 'c'
	CodeLocation  FieldCode = 'k'
	CodeDir       FieldCode = 'd'
	CodeDirs      FieldCode = 'D'
	CodeFileName  FieldCode = 'n'
	CodeFileNames FieldCode = 'N'
	CodeVolume    FieldCode = 'v'
	CodeMiniIcon  FieldCode = 'm'
)

var fieldCodes = map[byte]FieldCode{
	'%': CodePercent,
	'f': CodeFile,
	'F': CodeFiles,
	'u': CodeURL,
	'U': CodeURLs,
	'i': CodeIcon,
	'c': CodeName,
	'k': CodeLocation,
	'd': CodeDir,
	'D': CodeDirs,
	'n': CodeFileName,
	'N': CodeFileNames,
	'v': CodeVolume,
	'm': CodeMiniIcon,
}

// ParseFieldCode maps the character after % to a known field code.
func ParseFieldCode(c byte) (FieldCode, bool) {
	code, ok := fieldCodes[c]
	return code, ok
}

// Deprecated reports whether the code is obsolete and expands to nothing.
func (c FieldCode) Deprecated() bool {
	switch c {
	case CodeDir, CodeDirs, CodeFileName, CodeFileNames, CodeVolume, CodeMiniIcon:
		return true
	case CodePercent, CodeFile, CodeFiles, CodeURL, CodeURLs, CodeIcon, CodeName, CodeLocation:
		return false
	}
	return false
}

func (c FieldCode) String() string {
	return "%" + string(rune(c))
}

// Entry is what Expand needs from the thing being launched.
// *desktopentry.Application and *desktopentry.Action both satisfy it.
type Entry interface {
	Name() string
	Icon() string
	Path() string
}

// InvalidFieldCodeError is returned when the template contains an unknown
// field code. Remainder is the unexpanded rest of the template starting
// at the offending code.
type InvalidFieldCodeError struct {
	Remainder string
	Code      byte
}

func (e *InvalidFieldCodeError) Error() string {
	return fmt.Sprintf("invalid field code %%%c in %q", e.Code, e.Remainder)
}

// Expand substitutes field codes in an Exec template. Every substituted
// value is escaped on its own so it stays a single token. An unknown
// code stops expansion with *InvalidFieldCodeError.
func Expand(template string, files, urls []string, entry Entry) (string, error) {
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 >= len(template) {
			b.WriteByte(c)
			continue
		}

		next := template[i+1]
		code, ok := ParseFieldCode(next)
		if !ok {
			return "", &InvalidFieldCodeError{Code: next, Remainder: template[i:]}
		}
		i++

		switch code {
		case CodePercent:
			b.WriteByte('%')
		case CodeFile:
			if len(files) > 0 {
				b.WriteString(Escape(files[0]))
			}
		case CodeFiles:
			writeEscaped(&b, files)
		case CodeURL:
			if len(urls) > 0 {
				b.WriteString(Escape(urls[0]))
			}
		case CodeURLs:
			writeEscaped(&b, urls)
		case CodeIcon:
			if icon := entry.Icon(); icon != "" {
				b.WriteString("--icon ")
				b.WriteString(Escape(icon))
			}
		case CodeName:
			b.WriteString(Escape(entry.Name()))
		case CodeLocation:
			b.WriteString(Escape(entry.Path()))
		case CodeDir, CodeDirs, CodeFileName, CodeFileNames, CodeVolume, CodeMiniIcon:
		}
	}

	return b.String(), nil
}

func writeEscaped(b *strings.Builder, items []string) {
	for i, item := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Escape(item))
	}
}
