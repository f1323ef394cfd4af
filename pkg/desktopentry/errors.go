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
	"errors"
	"fmt"
)

// Parse error kinds. Every error returned by Parse and ParseFile matches
// exactly one of these with errors.Is.
var (
	ErrIO                 = errors.New("io error")
	ErrInvalidFormat      = errors.New("invalid format")
	ErrMissingRequiredKey = errors.New("missing required key")
)

// ParseError describes why a document was rejected.
type ParseError struct {
	// Kind is one of ErrIO, ErrInvalidFormat or ErrMissingRequiredKey.
	Kind   error
	Err    error
	Path   string
	Detail string
	// Line is the 1-based line number, 0 when the error is not tied to a line.
	Line int
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error() + ": " + e.Detail
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, e.Line)
	}
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func invalidFormat(line int, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:   ErrInvalidFormat,
		Line:   line,
		Detail: fmt.Sprintf(format, args...),
	}
}

func missingKey(detail string) *ParseError {
	return &ParseError{Kind: ErrMissingRequiredKey, Detail: detail}
}

func ioError(line int, detail string, err error) *ParseError {
	return &ParseError{Kind: ErrIO, Line: line, Detail: detail, Err: err}
}
