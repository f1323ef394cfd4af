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
	"fmt"
)

var (
	// ErrNotExecutable means the entry has no usable Exec line.
	ErrNotExecutable = errors.New("not executable")
	// ErrTerminalNotFound means Terminal=true and no emulator was found.
	ErrTerminalNotFound = errors.New("terminal not found")
	// ErrInvalidCommand covers bad field codes and untokenizable Exec lines.
	ErrInvalidCommand = errors.New("invalid command")
	// ErrValidationFailed means TryExec did not resolve to an executable.
	ErrValidationFailed = errors.New("validation failed")
	// ErrIO is a filesystem or process start failure.
	ErrIO = errors.New("io error")
)

// Error is returned by every launch operation. Kind is one of the
// sentinels above so callers can use errors.Is.
type Error struct {
	Kind   error
	Err    error
	Detail string
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func wrapError(kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: err, Detail: fmt.Sprintf(format, args...)}
}
