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
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindString Kind = iota
	KindBoolean
	KindNumeric
	KindStringList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindNumeric:
		return "numeric"
	case KindStringList:
		return "string-list"
	default:
		return "unknown"
	}
}

// Value is a classified field value. Every value also keeps its unescaped
// text so string accessors work regardless of how it was classified (an
// Exec line containing a semicolon is still a usable command line).
type Value struct {
	text    string
	list    []string
	number  float64
	kind    Kind
	boolean bool
}

// decimalRe matches a signed decimal with an optional exponent. Go's
// ParseFloat also accepts hex floats, "inf" and "nan", none of which are
// numeric values in a desktop entry.
var decimalRe = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// Classify converts a raw value into a typed Value. Precedence is boolean,
// then numeric, then string list (raw text has an unescaped ';'), then
// string.
func Classify(raw string) Value {
	raw = strings.TrimSpace(raw)
	text := Unescape(raw)

	switch strings.ToLower(text) {
	case "true":
		return Value{kind: KindBoolean, boolean: true, text: text}
	case "false":
		return Value{kind: KindBoolean, boolean: false, text: text}
	}

	if decimalRe.MatchString(text) {
		n, err := strconv.ParseFloat(text, 64)
		if err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
			return Value{kind: KindNumeric, number: n, text: text}
		}
	}

	if hasUnescapedSemicolon(raw) {
		return Value{kind: KindStringList, list: SplitList(raw), text: text}
	}

	return Value{kind: KindString, text: text}
}

// StringValue builds a string Value without classification.
func StringValue(s string) Value {
	return Value{kind: KindString, text: s}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean held by v, ok is false for any other kind.
func (v Value) Bool() (b, ok bool) {
	if v.kind != KindBoolean {
		return false, false
	}
	return v.boolean, true
}

// Number returns the numeric value held by v.
func (v Value) Number() (float64, bool) {
	if v.kind != KindNumeric {
		return 0, false
	}
	return v.number, true
}

// List returns a copy of the items of a string list value.
func (v Value) List() ([]string, bool) {
	if v.kind != KindStringList {
		return nil, false
	}
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out, true
}

// Text returns the unescaped, trimmed text the value was classified from.
func (v Value) Text() string {
	return v.text
}

func (v Value) String() string {
	return v.text
}

// Strings returns v as a list: list values as-is, empty strings as nil and
// any other value as a single item.
func (v Value) Strings() []string {
	if items, ok := v.List(); ok {
		return items
	}
	if v.text == "" {
		return nil
	}
	return []string{v.text}
}

// Unescape expands the escape sequences of the format. Unknown sequences
// are kept as the two original characters.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		if i+1 >= len(s) {
			sb.WriteByte(c)
			break
		}
		i++
		switch s[i] {
		case 's':
			sb.WriteByte(' ')
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '\\':
			sb.WriteByte('\\')
		case ';':
			sb.WriteByte(';')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}

	return sb.String()
}

// SplitList splits a raw list value on semicolons that are not escaped.
// Items are trimmed and unescaped, empty items are dropped.
func SplitList(raw string) []string {
	var items []string
	start := 0
	backslashes := 0

	flush := func(end int) {
		seg := strings.TrimSpace(raw[start:end])
		if seg != "" {
			items = append(items, Unescape(seg))
		}
	}

	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			backslashes++
			continue
		case ';':
			if backslashes%2 == 0 {
				flush(i)
				start = i + 1
			}
		}
		backslashes = 0
	}
	flush(len(raw))

	return items
}

func hasUnescapedSemicolon(raw string) bool {
	backslashes := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			backslashes++
			continue
		case ';':
			if backslashes%2 == 0 {
				return true
			}
		}
		backslashes = 0
	}
	return false
}
