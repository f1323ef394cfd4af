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
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZaparooProject/go-desktopentry/pkg/cli"
	"github.com/ZaparooProject/go-desktopentry/pkg/config"
	"github.com/ZaparooProject/go-desktopentry/pkg/helpers/command"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool(
		"verbose",
		false,
		"also write logs to stderr",
	)
	flags := cli.SetupFlags(fs)

	done, err := flags.Pre(args, stdout)
	if err != nil {
		return err //nolint:wrapcheck // flag errors are already descriptive
	}
	if done {
		return nil
	}

	var logWriters []io.Writer
	if *verbose {
		logWriters = []io.Writer{stderr}
	}

	cfg, err := cli.Setup(
		config.ConfigDir(),
		config.StateDir(),
		config.BaseDefaults,
		logWriters,
	)
	if err != nil {
		return err //nolint:wrapcheck // wrapped by Setup
	}

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	env := config.FromOS(cfg.ForwardEnv()).WithConfig(cfg)
	if *flags.Locale != "" {
		env.Locale = *flags.Locale
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner, err := cli.NewRunner(ctx, cfg, env, afero.NewOsFs(), &command.RealExecutor{}, stdout)
	if err != nil {
		return err //nolint:wrapcheck // wrapped by NewRunner
	}

	if err := flags.Post(ctx, runner); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			fs.Usage()
		}
		return err //nolint:wrapcheck // wrapped by Post
	}
	return nil
}
