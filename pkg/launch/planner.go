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
	"errors"
	"slices"
	"strings"

	"github.com/ZaparooProject/go-desktopentry/pkg/config"
	"github.com/ZaparooProject/go-desktopentry/pkg/desktopentry"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Plan is the resolved command line for one launch. It is consumed by a
// Spawner and has no identity of its own.
type Plan struct {
	Program string
	// Dir is the entry's working directory, empty for none.
	Dir  string
	Args []string
	// Env is the forwarded session environment as KEY=VALUE pairs.
	Env []string
}

// Argv returns program and args as one slice.
func (p *Plan) Argv() []string {
	return append([]string{p.Program}, p.Args...)
}

type PlannerOption func(*Planner)

// WithFs replaces the filesystem used for TryExec and terminal lookup.
func WithFs(fsys afero.Fs) PlannerOption {
	return func(p *Planner) {
		p.fs = fsys
	}
}

// WithTerminals sets terminal names tried after the environment's
// preferred terminal and before DefaultTerminals.
func WithTerminals(names ...string) PlannerOption {
	return func(p *Planner) {
		p.terminals = names
	}
}

// Planner turns entries into launch plans. It reads only the environment
// it was built with and performs read-only existence checks.
type Planner struct {
	fs        afero.Fs
	env       config.Environment
	terminals []string
}

//nolint:gocritic // environment snapshot copied for immutability
func NewPlanner(env config.Environment, opts ...PlannerOption) *Planner {
	p := &Planner{
		fs:  afero.NewOsFs(),
		env: env,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan validates app and builds its command line for the given files and
// URLs.
func (p *Planner) Plan(app *desktopentry.Application, files, urls []string) (*Plan, error) {
	exec, ok := app.String(desktopentry.KeyExec)
	return p.plan(app, app, exec, ok, files, urls)
}

// PlanAction is Plan for one of the application's desktop actions. The
// action's Exec is used while TryExec, Terminal and Path come from the
// application.
func (p *Planner) PlanAction(action *desktopentry.Action, files, urls []string) (*Plan, error) {
	exec := action.Exec()
	return p.plan(action.Application(), action, exec, exec != "", files, urls)
}

func (p *Planner) plan(
	app *desktopentry.Application,
	entry Entry,
	exec string,
	hasExec bool,
	files, urls []string,
) (*Plan, error) {
	if !hasExec || strings.TrimSpace(exec) == "" {
		return nil, newError(ErrNotExecutable, "%s has no Exec command", app.ID())
	}

	if err := p.checkTryExec(app); err != nil {
		return nil, err
	}

	expanded, err := Expand(exec, files, urls, entry)
	if err != nil {
		return nil, wrapError(ErrInvalidCommand, err, "expanding %s", app.ID())
	}

	program, args, err := Tokenize(expanded)
	if err != nil {
		return nil, err
	}

	if app.Terminal() {
		term, err := findTerminal(p.fs, p.env.Path, p.env.Terminal, p.terminalCandidates())
		if err != nil {
			return nil, err
		}
		program, args = wrapInTerminal(term, program, args)
	}

	plan := &Plan{
		Program: program,
		Args:    args,
		Dir:     app.WorkingDir(),
		Env:     p.env.SessionEnv(),
	}

	log.Debug().
		Str("id", app.ID()).
		Str("program", plan.Program).
		Strs("args", plan.Args).
		Str("dir", plan.Dir).
		Msg("planned launch")

	return plan, nil
}

func (p *Planner) checkTryExec(app *desktopentry.Application) error {
	tryExec, ok := app.String(desktopentry.KeyTryExec)
	if !ok {
		return nil
	}

	_, err := lookPath(p.fs, p.env.Path, tryExec)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errNotFound):
		return newError(ErrValidationFailed, "TryExec %q not found", tryExec)
	default:
		return wrapError(ErrIO, err, "checking TryExec %q", tryExec)
	}
}

func (p *Planner) terminalCandidates() []string {
	return slices.Concat(p.terminals, DefaultTerminals)
}
