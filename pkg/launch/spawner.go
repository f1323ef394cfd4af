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
	"context"

	"github.com/ZaparooProject/go-desktopentry/pkg/helpers/command"
	"github.com/rs/zerolog/log"
)

// Spawner starts plans as detached processes.
type Spawner struct {
	exec command.Executor
}

func NewSpawner(exec command.Executor) *Spawner {
	if exec == nil {
		exec = &command.RealExecutor{}
	}
	return &Spawner{exec: exec}
}

// Spawn starts plan in a new session and returns the child's pid. It
// does not wait for the process.
func (s *Spawner) Spawn(ctx context.Context, plan *Plan) (int, error) {
	opts := command.DetachedOptions{
		Dir: plan.Dir,
		Env: plan.Env,
	}

	pid, err := s.exec.StartDetached(ctx, opts, plan.Program, plan.Args...)
	if err != nil {
		return 0, wrapError(ErrIO, err, "starting %s", plan.Program)
	}

	log.Info().
		Int("pid", pid).
		Str("program", plan.Program).
		Msg("launched application")
	return pid, nil
}
