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
// Package search ranks applications against a free-text query the way an
// application launcher does: exact and prefix hits first, then substring
// hits, then Jaro-Winkler fuzzy matches over name, generic name and
// keywords.
package search

import (
	"cmp"
	"slices"
	"strings"

	"github.com/ZaparooProject/go-desktopentry/pkg/desktopentry"
	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
)

const (
	DefaultMinSimilarity = 0.8
	DefaultLimit         = 10
)

// MatchKind orders results; lower kinds always rank above higher ones.
type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchPrefix
	MatchSubstring
	MatchFuzzy
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchPrefix:
		return "prefix"
	case MatchSubstring:
		return "substring"
	case MatchFuzzy:
		return "fuzzy"
	default:
		return "unknown"
	}
}

// Field names which part of the entry produced the match.
type Field string

const (
	FieldName        Field = "name"
	FieldGenericName Field = "generic_name"
	FieldKeyword     Field = "keyword"
)

type Options struct {
	// MinSimilarity is the Jaro-Winkler threshold for fuzzy matches, 0 to 1.
	MinSimilarity float32
	// Limit caps the number of results. Zero means unlimited.
	Limit int
}

func DefaultOptions() Options {
	return Options{MinSimilarity: DefaultMinSimilarity, Limit: DefaultLimit}
}

type Result struct {
	App   *desktopentry.Application
	Kind  MatchKind
	Field Field
	// Score is 1 for exact, prefix and substring matches and the
	// similarity for fuzzy ones.
	Score float32
}

type candidate struct {
	field Field
	text  string
}

// Search returns the applications matching query, best first. Ties are
// broken by name and then by ID so output is stable.
func Search(apps []*desktopentry.Application, query string, opts Options) []Result {
	q := Normalize(query)
	if q == "" {
		return nil
	}

	results := make([]Result, 0, len(apps))
	for _, app := range apps {
		if r, ok := match(app, q, opts.MinSimilarity); ok {
			results = append(results, r)
		}
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := cmp.Compare(fieldRank(a.Field), fieldRank(b.Field)); c != 0 {
			return c
		}
		if c := strings.Compare(Normalize(a.App.Name()), Normalize(b.App.Name())); c != 0 {
			return c
		}
		return strings.Compare(a.App.ID(), b.App.ID())
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results
}

func fieldRank(f Field) int {
	switch f {
	case FieldName:
		return 0
	case FieldGenericName:
		return 1
	default:
		return 2
	}
}

func candidates(app *desktopentry.Application) []candidate {
	out := make([]candidate, 0, 2+len(app.Keywords()))
	if n := Normalize(app.Name()); n != "" {
		out = append(out, candidate{field: FieldName, text: n})
	}
	if g := Normalize(app.GenericName()); g != "" {
		out = append(out, candidate{field: FieldGenericName, text: g})
	}
	for _, kw := range app.Keywords() {
		if k := Normalize(kw); k != "" {
			out = append(out, candidate{field: FieldKeyword, text: k})
		}
	}
	return out
}

// match picks the best way app matches q. Candidates are in field rank
// order so the first hit of a kind is the preferred one.
func match(app *desktopentry.Application, q string, minSimilarity float32) (Result, bool) {
	best := Result{App: app, Kind: MatchFuzzy}
	found := false

	for _, c := range candidates(app) {
		kind, score, ok := compare(q, c.text, minSimilarity)
		if !ok {
			continue
		}
		if !found || kind < best.Kind || (kind == best.Kind && score > best.Score) {
			best.Kind = kind
			best.Score = score
			best.Field = c.field
			found = true
		}
	}

	if found && best.Kind == MatchFuzzy {
		log.Debug().
			Str("query", q).
			Str("id", app.ID()).
			Str("field", string(best.Field)).
			Float32("similarity", best.Score).
			Msg("fuzzy search match")
	}
	return best, found
}

func compare(q, text string, minSimilarity float32) (MatchKind, float32, bool) {
	switch {
	case text == q:
		return MatchExact, 1, true
	case strings.HasPrefix(text, q):
		return MatchPrefix, 1, true
	case strings.Contains(text, q):
		return MatchSubstring, 1, true
	}

	// Compare against the whole text and each word so "firefx" still
	// finds "firefox web browser".
	similarity := edlib.JaroWinklerSimilarity(q, text)
	for _, word := range strings.Fields(text) {
		if s := edlib.JaroWinklerSimilarity(q, word); s > similarity {
			similarity = s
		}
	}
	if similarity >= minSimilarity {
		return MatchFuzzy, similarity, true
	}
	return MatchFuzzy, 0, false
}
