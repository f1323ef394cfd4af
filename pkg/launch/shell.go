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
	"strings"
)

// shellSpecial are the characters that force quoting of an argument.
const shellSpecial = " \t\n'\"\\$`()[]{}?*~&|;<>"

// Escape quotes s for inclusion in a command line when it contains a
// shell-special character. Single quotes inside s are closed, emitted in
// double quotes and reopened.
func Escape(s string) string {
	if !strings.ContainsAny(s, shellSpecial) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// Tokenize splits an expanded command line into program and arguments.
//
// Runs of spaces and tabs outside quotes separate tokens. A ' or " opens
// a span closed only by the same character; quotes do not end a token,
// so a'b'c is one token. Inside a span a backslash before one of
// " ' \ $ ` yields that character and any other backslash pair is kept
// as is. Backslashes outside quotes are literal.
func Tokenize(cmd string) (program string, args []string, err error) {
	var (
		tokens  []string
		current strings.Builder
		quote   byte
		inToken bool
	)

	for i := 0; i < len(cmd); i++ {
		c := cmd[i]

		if quote != 0 {
			switch {
			case c == quote:
				quote = 0
			case c == '\\' && i+1 < len(cmd) && isQuotedEscape(cmd[i+1]):
				i++
				current.WriteByte(cmd[i])
			default:
				current.WriteByte(c)
			}
			continue
		}

		switch c {
		case ' ', '\t':
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		case '\'', '"':
			quote = c
			inToken = true
		default:
			current.WriteByte(c)
			inToken = true
		}
	}

	if quote != 0 {
		return "", nil, newError(ErrInvalidCommand, "unterminated %c quote in %q", quote, cmd)
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	if len(tokens) == 0 {
		return "", nil, newError(ErrInvalidCommand, "empty command")
	}

	return tokens[0], tokens[1:], nil
}

func isQuotedEscape(c byte) bool {
	switch c {
	case '"', '\'', '\\', '$', '`':
		return true
	default:
		return false
	}
}
