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
	"pgregory.net/rapid"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		wantText string
		wantList []string
		wantNum  float64
		wantKind Kind
		wantBool bool
	}{
		{name: "lowercase true", raw: "true", wantKind: KindBoolean, wantBool: true, wantText: "true"},
		{name: "uppercase true", raw: "TRUE", wantKind: KindBoolean, wantBool: true, wantText: "TRUE"},
		{name: "mixed case false", raw: "False", wantKind: KindBoolean, wantBool: false, wantText: "False"},
		{name: "yes is not boolean", raw: "yes", wantKind: KindString, wantText: "yes"},
		{name: "integer", raw: "42", wantKind: KindNumeric, wantNum: 42, wantText: "42"},
		{name: "negative decimal", raw: "-123.45", wantKind: KindNumeric, wantNum: -123.45, wantText: "-123.45"},
		{name: "explicit plus", raw: "+5", wantKind: KindNumeric, wantNum: 5, wantText: "+5"},
		{name: "leading dot", raw: ".5", wantKind: KindNumeric, wantNum: 0.5, wantText: ".5"},
		{name: "trailing dot", raw: "5.", wantKind: KindNumeric, wantNum: 5, wantText: "5."},
		{name: "exponent", raw: "1.5e3", wantKind: KindNumeric, wantNum: 1500, wantText: "1.5e3"},
		{name: "infinity is a string", raw: "inf", wantKind: KindString, wantText: "inf"},
		{name: "nan is a string", raw: "NaN", wantKind: KindString, wantText: "NaN"},
		{name: "hex float is a string", raw: "0x1p-2", wantKind: KindString, wantText: "0x1p-2"},
		{name: "overflow is a string", raw: "1e999", wantKind: KindString, wantText: "1e999"},
		{name: "version string", raw: "1.2.3", wantKind: KindString, wantText: "1.2.3"},
		{
			name:     "list with trailing separator",
			raw:      "A;B;C;",
			wantKind: KindStringList,
			wantList: []string{"A", "B", "C"},
			wantText: "A;B;C;",
		},
		{
			name:     "list with empty items",
			raw:      ";word1;word2;;",
			wantKind: KindStringList,
			wantList: []string{"word1", "word2"},
			wantText: ";word1;word2;;",
		},
		{
			name:     "list items are trimmed",
			raw:      " one ; two ;three",
			wantKind: KindStringList,
			wantList: []string{"one", "two", "three"},
			wantText: "one ; two ;three",
		},
		{
			name:     "booleans in a list stay strings",
			raw:      "true;false",
			wantKind: KindStringList,
			wantList: []string{"true", "false"},
			wantText: "true;false",
		},
		{name: "escaped separator is a string", raw: `a\;b`, wantKind: KindString, wantText: "a;b"},
		{
			name:     "escaped backslash before separator splits",
			raw:      `a\\;b`,
			wantKind: KindStringList,
			wantList: []string{`a\`, "b"},
			wantText: `a\;b`,
		},
		{
			name:     "escaped separator inside list item",
			raw:      `Test\;Category;Another;`,
			wantKind: KindStringList,
			wantList: []string{"Test;Category", "Another"},
			wantText: "Test;Category;Another;",
		},
		{name: "space escape", raw: `hello\sworld`, wantKind: KindString, wantText: "hello world"},
		{name: "unknown escape kept", raw: `keep\qthis`, wantKind: KindString, wantText: `keep\qthis`},
		{name: "surrounding whitespace trimmed", raw: "  padded  ", wantKind: KindString, wantText: "padded"},
		{name: "empty", raw: "", wantKind: KindString, wantText: ""},
		{name: "escaped space keeps boolean text apart", raw: `true\s`, wantKind: KindString, wantText: "true "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := Classify(tt.raw)

			assert.Equal(t, tt.wantKind, v.Kind())
			assert.Equal(t, tt.wantText, v.Text())

			switch tt.wantKind {
			case KindBoolean:
				b, ok := v.Bool()
				require.True(t, ok)
				assert.Equal(t, tt.wantBool, b)
			case KindNumeric:
				n, ok := v.Number()
				require.True(t, ok)
				assert.InDelta(t, tt.wantNum, n, 1e-9)
			case KindStringList:
				items, ok := v.List()
				require.True(t, ok)
				assert.Equal(t, tt.wantList, items)
			case KindString:
				_, isList := v.List()
				assert.False(t, isList)
			}
		})
	}
}

func TestClassify_OnlySeparators(t *testing.T) {
	t.Parallel()

	v := Classify(";;")

	assert.Equal(t, KindStringList, v.Kind())
	items, ok := v.List()
	require.True(t, ok)
	assert.Empty(t, items)
	assert.Empty(t, v.Strings())
}

func TestValue_AccessorsRejectOtherKinds(t *testing.T) {
	t.Parallel()

	s := Classify("plain")

	_, ok := s.Bool()
	assert.False(t, ok)
	_, ok = s.Number()
	assert.False(t, ok)
	_, ok = s.List()
	assert.False(t, ok)
	assert.Equal(t, []string{"plain"}, s.Strings())
	assert.Equal(t, "plain", s.String())
}

func TestValue_ListIsCopied(t *testing.T) {
	t.Parallel()

	v := Classify("a;b")
	items, _ := v.List()
	items[0] = "changed"

	again, _ := v.List()
	assert.Equal(t, []string{"a", "b"}, again)
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: `hello\sworld`, want: "hello world"},
		{in: `line1\nline2`, want: "line1\nline2"},
		{in: `tab\there`, want: "tab\there"},
		{in: `cr\rhere`, want: "cr\rhere"},
		{in: `backslash\\`, want: `backslash\`},
		{in: `semi\;colon`, want: "semi;colon"},
		{in: `unknown\x`, want: `unknown\x`},
		{in: `trailing\`, want: `trailing\`},
		{in: `\\s`, want: `\s`},
		{in: "no escapes", want: "no escapes"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Unescape(tt.in))
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "boolean", KindBoolean.String())
	assert.Equal(t, "numeric", KindNumeric.String())
	assert.Equal(t, "string-list", KindStringList.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

// TestPropertyClassifyDeterministic verifies classification is total and
// gives the same variant for the same input.
func TestPropertyClassifyDeterministic(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.String().Draw(t, "raw")

		first := Classify(raw)
		second := Classify(raw)

		if first.Kind() != second.Kind() || first.Text() != second.Text() {
			t.Fatalf("non-deterministic classification for %q", raw)
		}
		if first.Kind() < KindString || first.Kind() > KindStringList {
			t.Fatalf("unknown kind %d for %q", first.Kind(), raw)
		}
	})
}

// TestPropertySplitListIdempotent verifies re-joining split items and
// splitting again gives the same items.
func TestPropertySplitListIdempotent(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.StringMatching(`[A-Za-z0-9 ;]{0,40}`).Draw(t, "raw")

		once := SplitList(raw)
		twice := SplitList(strings.Join(once, ";") + ";")

		if strings.Join(once, "\x00") != strings.Join(twice, "\x00") {
			t.Fatalf("not idempotent: %q -> %q -> %q", raw, once, twice)
		}
		for _, item := range once {
			if item == "" || item != strings.TrimSpace(item) {
				t.Fatalf("untrimmed or empty item %q from %q", item, raw)
			}
		}
	})
}

// TestPropertyBooleanLiteralsAnyCase verifies every casing of true/false
// is a boolean.
func TestPropertyBooleanLiteralsAnyCase(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.SampledFrom([]string{"true", "false"}).Draw(t, "word")
		mask := rapid.SliceOfN(rapid.Bool(), len(word), len(word)).Draw(t, "mask")

		var sb strings.Builder
		for i, r := range word {
			if mask[i] {
				sb.WriteString(strings.ToUpper(string(r)))
			} else {
				sb.WriteRune(r)
			}
		}

		v := Classify(sb.String())
		b, ok := v.Bool()
		if !ok || b != (word == "true") {
			t.Fatalf("%q classified as %s", sb.String(), v.Kind())
		}
	})
}
