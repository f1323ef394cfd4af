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
	"slices"
	"strings"
)

// Application is a read-only view over a document's "Desktop Entry" group.
// It must not outlive the Document it was built from.
type Application struct {
	doc    *Document
	entry  *Group
	id     string
	locale LocaleTag
}

// ApplicationOption customises NewApplication.
type ApplicationOption func(*applicationConfig)

type applicationConfig struct {
	locale string
	roots  []string
}

// WithLocale sets the locale used by the localized accessors (Name,
// GenericName, Comment, Keywords...). Empty means non-localized values.
func WithLocale(locale string) ApplicationOption {
	return func(c *applicationConfig) {
		c.locale = locale
	}
}

// WithApplicationRoots sets the applications directories the desktop file
// ID is derived against.
func WithApplicationRoots(roots ...string) ApplicationOption {
	return func(c *applicationConfig) {
		c.roots = roots
	}
}

// NewApplication builds the view for a parsed document.
func NewApplication(doc *Document, opts ...ApplicationOption) *Application {
	cfg := applicationConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Application{
		doc:    doc,
		entry:  doc.DesktopEntry(),
		id:     DeriveID(doc.Path(), cfg.roots),
		locale: ParseLocale(cfg.locale),
	}
}

// ID returns the desktop file ID.
func (a *Application) ID() string {
	return a.id
}

// Path returns the source file path.
func (a *Application) Path() string {
	return a.doc.Path()
}

// Document returns the underlying document.
func (a *Application) Document() *Document {
	return a.doc
}

// Locale returns the locale used by localized accessors.
func (a *Application) Locale() LocaleTag {
	return a.locale
}

// Value returns the raw non-localized value of key.
func (a *Application) Value(key string) (Value, bool) {
	return a.entry.Get(key)
}

// String returns the text of key.
func (a *Application) String(key string) (string, bool) {
	v, ok := a.entry.Get(key)
	if !ok {
		return "", false
	}
	return v.Text(), true
}

// LocalizedString resolves key for locale with the standard fallback.
func (a *Application) LocalizedString(key, locale string) (string, bool) {
	v, ok := a.entry.Localized(key, locale)
	if !ok {
		return "", false
	}
	return v.Text(), true
}

// Bool returns a boolean key. Values that are not booleans report ok=false.
func (a *Application) Bool(key string) (b, ok bool) {
	v, found := a.entry.Get(key)
	if !found {
		return false, false
	}
	return v.Bool()
}

// Number returns a numeric key.
func (a *Application) Number(key string) (float64, bool) {
	v, found := a.entry.Get(key)
	if !found {
		return 0, false
	}
	return v.Number()
}

// List returns key as a list of strings. A single value without separators
// is a one item list.
func (a *Application) List(key string) ([]string, bool) {
	v, found := a.entry.Get(key)
	if !found {
		return nil, false
	}
	return v.Strings(), true
}

func (a *Application) localized(key string) string {
	v, ok := a.entry.LocalizedTag(key, a.locale)
	if !ok {
		return ""
	}
	return v.Text()
}

func (a *Application) flag(key string) bool {
	b, _ := a.Bool(key)
	return b
}

func (a *Application) text(key string) string {
	s, _ := a.String(key)
	return s
}

func (a *Application) Type() string           { return a.text(KeyType) }
func (a *Application) Name() string           { return a.localized(KeyName) }
func (a *Application) GenericName() string    { return a.localized(KeyGenericName) }
func (a *Application) Comment() string        { return a.localized(KeyComment) }
func (a *Application) Icon() string           { return a.localized(KeyIcon) }
func (a *Application) Exec() string           { return a.text(KeyExec) }
func (a *Application) TryExec() string        { return a.text(KeyTryExec) }
func (a *Application) URL() string            { return a.text(KeyURL) }
func (a *Application) StartupWMClass() string { return a.text(KeyStartupWMClass) }

// WorkingDir is the entry's Path key, the directory to run the program in.
func (a *Application) WorkingDir() string { return a.text(KeyPath) }

func (a *Application) Terminal() bool        { return a.flag(KeyTerminal) }
func (a *Application) Hidden() bool          { return a.flag(KeyHidden) }
func (a *Application) NoDisplay() bool       { return a.flag(KeyNoDisplay) }
func (a *Application) StartupNotify() bool   { return a.flag(KeyStartupNotify) }
func (a *Application) DBusActivatable() bool { return a.flag(KeyDBusActivatable) }

func (a *Application) MimeTypes() []string  { return a.list(KeyMimeType) }
func (a *Application) Categories() []string { return a.list(KeyCategories) }
func (a *Application) OnlyShowIn() []string { return a.list(KeyOnlyShowIn) }
func (a *Application) NotShowIn() []string  { return a.list(KeyNotShowIn) }
func (a *Application) Actions() []string    { return a.list(KeyActions) }

// Keywords returns the localized keyword list.
func (a *Application) Keywords() []string {
	v, ok := a.entry.LocalizedTag(KeyKeywords, a.locale)
	if !ok {
		return nil
	}
	return v.Strings()
}

func (a *Application) list(key string) []string {
	items, _ := a.List(key)
	return items
}

// ShouldShow reports whether a menu running in any of desktops should list
// the application. Hidden and NoDisplay entries are never shown; OnlyShowIn
// and NotShowIn are matched against the desktop names.
func (a *Application) ShouldShow(desktops []string) bool {
	if a.Hidden() || a.NoDisplay() {
		return false
	}

	if only := a.OnlyShowIn(); len(only) > 0 {
		if !intersects(only, desktops) {
			return false
		}
	}

	return !intersects(a.NotShowIn(), desktops)
}

func intersects(a, b []string) bool {
	for _, s := range a {
		if slices.Contains(b, s) {
			return true
		}
	}
	return false
}

// Action is an additional launch entry point declared in a
// "Desktop Action <id>" group.
type Action struct {
	app   *Application
	group *Group
	id    string
}

// Action returns the action declared under id. Actions that are not
// listed in the Actions key are still returned when their group exists.
func (a *Application) Action(id string) (*Action, bool) {
	g, ok := a.doc.Group(ActionGroupPrefix + id)
	if !ok {
		return nil, false
	}
	return &Action{app: a, group: g, id: id}, true
}

func (ac *Action) ID() string { return ac.id }

// Path returns the source path of the owning document.
func (ac *Action) Path() string { return ac.app.Path() }

// Name returns the localized action name.
func (ac *Action) Name() string {
	v, ok := ac.group.LocalizedTag(KeyName, ac.app.locale)
	if !ok {
		return ""
	}
	return v.Text()
}

// Icon returns the action icon, falling back to the application icon.
func (ac *Action) Icon() string {
	if v, ok := ac.group.LocalizedTag(KeyIcon, ac.app.locale); ok && v.Text() != "" {
		return v.Text()
	}
	return ac.app.Icon()
}

// Exec returns the action command line.
func (ac *Action) Exec() string {
	v, ok := ac.group.Get(KeyExec)
	if !ok {
		return ""
	}
	return v.Text()
}

// Application returns the application declaring the action.
func (ac *Action) Application() *Application {
	return ac.app
}

// SplitDesktops splits a colon separated XDG_CURRENT_DESKTOP value.
func SplitDesktops(s string) []string {
	var out []string
	for _, d := range strings.Split(s, ":") {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}
