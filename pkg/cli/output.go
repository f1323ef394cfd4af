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
package cli

import (
	"github.com/ZaparooProject/go-desktopentry/pkg/desktopentry"
)

// AppSummary is one line of -list output.
type AppSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	GenericName string `json:"genericName,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Path        string `json:"path"`
}

type ActionInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
	Exec string `json:"exec,omitempty"`
}

// AppDetails is the -show output.
type AppDetails struct {
	ID          string       `json:"id"`
	Path        string       `json:"path"`
	Name        string       `json:"name"`
	GenericName string       `json:"genericName,omitempty"`
	Comment     string       `json:"comment,omitempty"`
	Icon        string       `json:"icon,omitempty"`
	Exec        string       `json:"exec,omitempty"`
	TryExec     string       `json:"tryExec,omitempty"`
	WorkingDir  string       `json:"workingDir,omitempty"`
	Categories  []string     `json:"categories,omitempty"`
	Keywords    []string     `json:"keywords,omitempty"`
	MimeTypes   []string     `json:"mimeTypes,omitempty"`
	OnlyShowIn  []string     `json:"onlyShowIn,omitempty"`
	NotShowIn   []string     `json:"notShowIn,omitempty"`
	Actions     []ActionInfo `json:"actions,omitempty"`
	Terminal    bool         `json:"terminal"`
	NoDisplay   bool         `json:"noDisplay"`
	Hidden      bool         `json:"hidden"`
}

type SearchHit struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Match string  `json:"match"`
	Field string  `json:"field"`
	Score float32 `json:"score"`
}

// PlanOutput is the -launch -dry-run output.
type PlanOutput struct {
	Program string   `json:"program"`
	Dir     string   `json:"dir,omitempty"`
	Args    []string `json:"args"`
	Env     []string `json:"env"`
}

type LaunchOutput struct {
	ID  string `json:"id"`
	PID int    `json:"pid"`
}

func summarize(app *desktopentry.Application) AppSummary {
	return AppSummary{
		ID:          app.ID(),
		Name:        app.Name(),
		GenericName: app.GenericName(),
		Icon:        app.Icon(),
		Path:        app.Path(),
	}
}

func describe(app *desktopentry.Application) AppDetails {
	d := AppDetails{
		ID:          app.ID(),
		Path:        app.Path(),
		Name:        app.Name(),
		GenericName: app.GenericName(),
		Comment:     app.Comment(),
		Icon:        app.Icon(),
		Exec:        app.Exec(),
		TryExec:     app.TryExec(),
		WorkingDir:  app.WorkingDir(),
		Categories:  app.Categories(),
		Keywords:    app.Keywords(),
		MimeTypes:   app.MimeTypes(),
		OnlyShowIn:  app.OnlyShowIn(),
		NotShowIn:   app.NotShowIn(),
		Terminal:    app.Terminal(),
		NoDisplay:   app.NoDisplay(),
		Hidden:      app.Hidden(),
	}
	for _, id := range app.Actions() {
		action, ok := app.Action(id)
		if !ok {
			continue
		}
		d.Actions = append(d.Actions, ActionInfo{
			ID:   action.ID(),
			Name: action.Name(),
			Icon: action.Icon(),
			Exec: action.Exec(),
		})
	}
	return d
}

type ReloadOutput struct {
	Applications int `json:"applications"`
}
