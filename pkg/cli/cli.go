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
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ZaparooProject/go-desktopentry/pkg/catalog"
	"github.com/ZaparooProject/go-desktopentry/pkg/config"
	"github.com/ZaparooProject/go-desktopentry/pkg/desktopentry"
	"github.com/ZaparooProject/go-desktopentry/pkg/launch"
	"github.com/ZaparooProject/go-desktopentry/pkg/search"
	"github.com/rs/zerolog/log"
)

var (
	ErrUsage          = errors.New("no command given")
	ErrUnknownApp     = errors.New("unknown application")
	ErrUnknownAction  = errors.New("unknown action")
	ErrMissingValue   = errors.New("flag requires a value")
	ErrActionNoLaunch = errors.New("action flag requires launch")
)

type Flags struct {
	fs      *flag.FlagSet
	List    *bool
	All     *bool
	Show    *string
	Search  *string
	Launch  *string
	Action  *string
	DryRun  *bool
	Locale  *string
	JSON    *bool
	Version *bool
	Watch   *bool
}

// SetupFlags defines all CLI flags on fs.
func SetupFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs: fs,
		List: fs.Bool(
			"list",
			false,
			"list applications shown in menus",
		),
		All: fs.Bool(
			"all",
			false,
			"include hidden applications when listing",
		),
		Show: fs.String(
			"show",
			"",
			"print all details of one application by ID",
		),
		Search: fs.String(
			"search",
			"",
			"search applications by name, generic name and keywords",
		),
		Launch: fs.String(
			"launch",
			"",
			"launch application by ID, remaining arguments are files or URLs",
		),
		Action: fs.String(
			"action",
			"",
			"launch a desktop action of the application given to -launch",
		),
		DryRun: fs.Bool(
			"dry-run",
			false,
			"print the launch command instead of running it",
		),
		Locale: fs.String(
			"locale",
			"",
			"locale used for translated keys, overrides LC_ALL/LC_MESSAGES/LANG",
		),
		JSON: fs.Bool(
			"json",
			false,
			"print output as JSON",
		),
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
		Watch: fs.Bool(
			"watch",
			false,
			"keep running and reload when application directories change",
		),
	}
}

func (f *Flags) isFlagPassed(name string) bool {
	found := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// Args returns the positional arguments left after flag parsing.
func (f *Flags) Args() []string {
	return f.fs.Args()
}

// Pre parses args and handles flags that need no environment. It reports
// done when the program should exit without running Post.
func (f *Flags) Pre(args []string, out io.Writer) (done bool, err error) {
	if err := f.fs.Parse(args); err != nil {
		return true, fmt.Errorf("parsing flags: %w", err)
	}

	if *f.Version {
		_, _ = fmt.Fprintf(out, "%s v%s\n", config.AppName, config.AppVersion)
		return true, nil
	}

	for _, name := range []string{"show", "search", "launch", "action"} {
		if f.isFlagPassed(name) && strings.TrimSpace(*f.stringFlag(name)) == "" {
			return true, fmt.Errorf("%w: -%s", ErrMissingValue, name)
		}
	}
	if *f.Action != "" && *f.Launch == "" {
		return true, ErrActionNoLaunch
	}
	return false, nil
}

func (f *Flags) stringFlag(name string) *string {
	switch name {
	case "show":
		return f.Show
	case "search":
		return f.Search
	case "launch":
		return f.Launch
	default:
		return f.Action
	}
}

// Runner holds what Post needs to act on the remaining flags.
type Runner struct {
	Out     io.Writer
	Catalog *catalog.Catalog
	Planner *launch.Planner
	Spawner *launch.Spawner
	Search  search.Options
	// ShowHidden lists hidden entries without -all.
	ShowHidden bool
}

// Post actions the flags that need a loaded catalog.
func (f *Flags) Post(ctx context.Context, r *Runner) error {
	switch {
	case *f.List:
		return f.list(r)
	case *f.Show != "":
		return f.show(r, *f.Show)
	case *f.Search != "":
		return f.search(r, *f.Search)
	case *f.Launch != "":
		return f.launch(ctx, r, *f.Launch)
	case *f.Watch:
		return f.watch(ctx, r)
	default:
		return ErrUsage
	}
}

func (f *Flags) list(r *Runner) error {
	apps := r.Catalog.Visible()
	if *f.All || r.ShowHidden {
		apps = r.Catalog.All()
	}
	slices.SortFunc(apps, func(a, b *desktopentry.Application) int {
		return strings.Compare(a.ID(), b.ID())
	})

	if *f.JSON {
		out := make([]AppSummary, 0, len(apps))
		for _, app := range apps {
			out = append(out, summarize(app))
		}
		return writeJSON(r.Out, out)
	}

	for _, app := range apps {
		_, _ = fmt.Fprintf(r.Out, "%s\t%s\n", app.ID(), app.Name())
	}
	return nil
}

func (f *Flags) show(r *Runner, id string) error {
	app, ok := r.Catalog.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownApp, id)
	}
	details := describe(app)

	if *f.JSON {
		return writeJSON(r.Out, details)
	}

	_, _ = fmt.Fprintf(r.Out, "ID: %s\n", details.ID)
	_, _ = fmt.Fprintf(r.Out, "Path: %s\n", details.Path)
	for _, line := range [][2]string{
		{"Name", details.Name},
		{"GenericName", details.GenericName},
		{"Comment", details.Comment},
		{"Icon", details.Icon},
		{"Exec", details.Exec},
		{"TryExec", details.TryExec},
		{"WorkingDir", details.WorkingDir},
		{"Categories", strings.Join(details.Categories, ";")},
		{"Keywords", strings.Join(details.Keywords, ";")},
		{"MimeTypes", strings.Join(details.MimeTypes, ";")},
	} {
		if line[1] != "" {
			_, _ = fmt.Fprintf(r.Out, "%s: %s\n", line[0], line[1])
		}
	}
	_, _ = fmt.Fprintf(r.Out, "Terminal: %t\n", details.Terminal)
	_, _ = fmt.Fprintf(r.Out, "NoDisplay: %t\n", details.NoDisplay)
	_, _ = fmt.Fprintf(r.Out, "Hidden: %t\n", details.Hidden)
	for _, a := range details.Actions {
		_, _ = fmt.Fprintf(r.Out, "Action %s: %s\n", a.ID, a.Name)
	}
	return nil
}

func (f *Flags) search(r *Runner, query string) error {
	apps := r.Catalog.Visible()
	if *f.All || r.ShowHidden {
		apps = r.Catalog.All()
	}
	results := search.Search(apps, query, r.Search)

	if *f.JSON {
		out := make([]SearchHit, 0, len(results))
		for _, res := range results {
			out = append(out, SearchHit{
				ID:    res.App.ID(),
				Name:  res.App.Name(),
				Match: res.Kind.String(),
				Field: string(res.Field),
				Score: res.Score,
			})
		}
		return writeJSON(r.Out, out)
	}

	for _, res := range results {
		_, _ = fmt.Fprintf(r.Out, "%s\t%s\t%s %.2f\n", res.App.ID(), res.App.Name(), res.Kind, res.Score)
	}
	return nil
}

func (f *Flags) launch(ctx context.Context, r *Runner, id string) error {
	app, ok := r.Catalog.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownApp, id)
	}
	files, urls := SplitTargets(f.Args())

	var (
		plan *launch.Plan
		err  error
	)
	if *f.Action != "" {
		action, ok := app.Action(*f.Action)
		if !ok {
			return fmt.Errorf("%w: %s in %s", ErrUnknownAction, *f.Action, id)
		}
		plan, err = r.Planner.PlanAction(action, files, urls)
	} else {
		plan, err = r.Planner.Plan(app, files, urls)
	}
	if err != nil {
		return fmt.Errorf("planning %s: %w", id, err)
	}

	if *f.DryRun {
		if *f.JSON {
			return writeJSON(r.Out, PlanOutput{
				Program: plan.Program,
				Args:    plan.Args,
				Dir:     plan.Dir,
				Env:     plan.Env,
			})
		}
		quoted := make([]string, 0, len(plan.Args)+1)
		for _, arg := range plan.Argv() {
			if arg == "" {
				arg = "''"
			} else {
				arg = launch.Escape(arg)
			}
			quoted = append(quoted, arg)
		}
		_, _ = fmt.Fprintln(r.Out, strings.Join(quoted, " "))
		return nil
	}

	pid, err := r.Spawner.Spawn(ctx, plan)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("error launching application")
		return fmt.Errorf("launching %s: %w", id, err)
	}

	if *f.JSON {
		return writeJSON(r.Out, LaunchOutput{ID: id, PID: pid})
	}
	_, _ = fmt.Fprintf(r.Out, "launched %s (pid %d)\n", id, pid)
	return nil
}

// watch blocks until ctx is done, printing the catalog size after every
// reload.
func (f *Flags) watch(ctx context.Context, r *Runner, opts ...catalog.WatcherOption) error {
	opts = append(opts, catalog.WithOnReload(func(err error) {
		if err != nil {
			log.Error().Err(err).Msg("error reloading applications")
			return
		}
		if *f.JSON {
			_ = writeJSON(r.Out, ReloadOutput{Applications: r.Catalog.Len()})
			return
		}
		_, _ = fmt.Fprintf(r.Out, "reloaded %d applications\n", r.Catalog.Len())
	}))

	if err := catalog.NewWatcher(r.Catalog, opts...).Run(ctx); err != nil {
		return fmt.Errorf("watching applications: %w", err)
	}
	return nil
}

// SplitTargets separates launch arguments into local files and URLs. An
// argument with a scheme separator is a URL, anything else is a file.
func SplitTargets(args []string) (files, urls []string) {
	for _, arg := range args {
		if strings.Contains(arg, "://") {
			urls = append(urls, arg)
		} else {
			files = append(files, arg)
		}
	}
	return files, urls
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
