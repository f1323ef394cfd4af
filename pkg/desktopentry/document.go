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
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Well-known group names, types and keys.
const (
	GroupDesktopEntry = "Desktop Entry"
	ActionGroupPrefix = "Desktop Action "

	TypeApplication = "Application"
	TypeLink        = "Link"
	TypeDirectory   = "Directory"

	KeyType            = "Type"
	KeyVersion         = "Version"
	KeyName            = "Name"
	KeyGenericName     = "GenericName"
	KeyComment         = "Comment"
	KeyIcon            = "Icon"
	KeyExec            = "Exec"
	KeyTryExec         = "TryExec"
	KeyPath            = "Path"
	KeyTerminal        = "Terminal"
	KeyHidden          = "Hidden"
	KeyNoDisplay       = "NoDisplay"
	KeyOnlyShowIn      = "OnlyShowIn"
	KeyNotShowIn       = "NotShowIn"
	KeyDBusActivatable = "DBusActivatable"
	KeyActions         = "Actions"
	KeyMimeType        = "MimeType"
	KeyCategories      = "Categories"
	KeyKeywords        = "Keywords"
	KeyStartupNotify   = "StartupNotify"
	KeyStartupWMClass  = "StartupWMClass"
	KeyURL             = "URL"
)

// Group is a named section of a document. Localized variants of a key are
// stored under the key's base name.
type Group struct {
	fields    map[string]Value
	localized map[string]map[string]Value
	name      string
}

func newGroup(name string) *Group {
	return &Group{
		name:      name,
		fields:    make(map[string]Value),
		localized: make(map[string]map[string]Value),
	}
}

// Name returns the group name without brackets.
func (g *Group) Name() string {
	return g.name
}

// Get returns the non-localized value of key.
func (g *Group) Get(key string) (Value, bool) {
	v, ok := g.fields[key]
	return v, ok
}

// Has reports whether the group defines key without a locale.
func (g *Group) Has(key string) bool {
	_, ok := g.fields[key]
	return ok
}

// Localized resolves key for the requested POSIX locale, falling back
// through less specific locale forms to the non-localized value. An empty
// locale only ever returns the non-localized value.
func (g *Group) Localized(key, locale string) (Value, bool) {
	if strings.TrimSpace(locale) == "" {
		return g.Get(key)
	}
	return g.LocalizedTag(key, ParseLocale(locale))
}

// LocalizedTag is Localized for an already parsed locale.
func (g *Group) LocalizedTag(key string, tag LocaleTag) (Value, bool) {
	if variants, ok := g.localized[key]; ok {
		for _, candidate := range tag.Candidates() {
			if v, found := variants[candidate]; found {
				return v, true
			}
		}
	}
	return g.Get(key)
}

// Keys returns the sorted non-localized keys of the group.
func (g *Group) Keys() []string {
	keys := make([]string, 0, len(g.fields))
	for k := range g.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Locales returns the sorted locale tags key has variants for.
func (g *Group) Locales(key string) []string {
	variants := g.localized[key]
	tags := make([]string, 0, len(variants))
	for tag := range variants {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func (g *Group) set(rawKey string, v Value) {
	key, locale, ok := ParseKey(rawKey)
	if !ok {
		g.fields[key] = v
		return
	}
	variants, exists := g.localized[key]
	if !exists {
		variants = make(map[string]Value)
		g.localized[key] = variants
	}
	variants[locale] = v
}

// Document is a parsed desktop entry file.
type Document struct {
	groups map[string]*Group
	path   string
}

// Path returns the source path the document was parsed from.
func (d *Document) Path() string {
	return d.path
}

// Group looks up a group by its exact name.
func (d *Document) Group(name string) (*Group, bool) {
	g, ok := d.groups[name]
	return g, ok
}

// Groups returns the sorted group names.
func (d *Document) Groups() []string {
	names := make([]string, 0, len(d.groups))
	for name := range d.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DesktopEntry returns the main group. It is always present on a document
// returned by Parse.
func (d *Document) DesktopEntry() *Group {
	return d.groups[GroupDesktopEntry]
}

type parseConfig struct {
	strict bool
}

// ParseOption customises Parse.
type ParseOption func(*parseConfig)

// WithStrict rejects non-blank, non-comment lines that are neither group
// headers nor key/value pairs. By default such lines are ignored, which is
// what most desktop environments do with real-world files.
func WithStrict() ParseOption {
	return func(c *parseConfig) {
		c.strict = true
	}
}

// ParseFile opens path on fs and parses it.
func ParseFile(fs afero.Fs, path string, opts ...ParseOption) (*Document, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, &ParseError{Kind: ErrIO, Path: path, Detail: "failed to open file", Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	return Parse(f, path, opts...)
}

// Parse reads a desktop entry document from r. The document is rejected
// as a whole on the first syntax error or when required keys are missing.
func Parse(r io.Reader, path string, opts ...ParseOption) (*Document, error) {
	doc, err := parse(r, path, opts)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) && pe.Path == "" {
			pe.Path = path
		}
		return nil, err
	}
	return doc, nil
}

func parse(r io.Reader, path string, opts []ParseOption) (*Document, error) {
	cfg := parseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	doc := &Document{
		path:   path,
		groups: make(map[string]*Group),
	}

	var current *Group
	br := bufio.NewReader(r)

	for lineNum := 1; ; lineNum++ {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, ioError(lineNum, "failed to read line", readErr)
		}
		if readErr != nil && raw == "" {
			break
		}

		if lineNum == 1 {
			raw = strings.TrimPrefix(raw, "\ufeff")
		}
		line := strings.TrimSpace(raw)

		switch {
		case line == "" || line[0] == '#':
		case isGroupHeader(line):
			name := line[1 : len(line)-1]
			g, ok := doc.groups[name]
			if !ok {
				g = newGroup(name)
				doc.groups[name] = g
			}
			current = g
		case current == nil:
			return nil, invalidFormat(lineNum, "content before first group header: %q", line)
		default:
			eq := strings.IndexByte(line, '=')
			if eq < 0 {
				if cfg.strict {
					return nil, invalidFormat(lineNum, "line is not a key/value pair: %q", line)
				}
				continue
			}
			key := strings.TrimSpace(line[:eq])
			if key == "" {
				continue
			}
			if !validKey(key) {
				return nil, invalidFormat(lineNum, "invalid key name: %q", key)
			}
			current.set(key, Classify(line[eq+1:]))
		}

		if readErr != nil {
			break
		}
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

func isGroupHeader(line string) bool {
	if len(line) < 3 || line[0] != '[' || line[len(line)-1] != ']' {
		return false
	}
	return !strings.ContainsAny(line[1:len(line)-1], "[]")
}

// validKey checks the base part of a key, without its trailing [locale],
// is made of ASCII letters, digits and '-'.
func validKey(key string) bool {
	base := key
	if strings.HasSuffix(key, "]") {
		if open := strings.IndexByte(key, '['); open >= 0 {
			base = key[:open]
		}
	}
	if base == "" {
		return false
	}
	for i := 0; i < len(base); i++ {
		c := base[i]
		isAlnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		if !isAlnum && c != '-' {
			return false
		}
	}
	return true
}

// Validate checks the keys the format requires are present.
func (d *Document) Validate() error {
	entry, ok := d.groups[GroupDesktopEntry]
	if !ok {
		return missingKey(fmt.Sprintf("%q group is required", GroupDesktopEntry))
	}

	entryType, ok := entry.Get(KeyType)
	if !ok {
		return missingKey("Type key is required")
	}
	if !entry.Has(KeyName) {
		return missingKey("Name key is required")
	}

	switch entryType.Text() {
	case TypeApplication:
		dbus, _ := entry.fields[KeyDBusActivatable].Bool()
		if !dbus && !entry.Has(KeyExec) {
			return missingKey("Exec key is required for Application type")
		}
	case TypeLink:
		if !entry.Has(KeyURL) {
			return missingKey("URL key is required for Link type")
		}
	}

	return nil
}
