// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package index

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"
)

// directivePrefix starts every endcheck directive.
const directivePrefix = "//endcheck:"

// directive is a single parsed //endcheck: comment.
type directive struct {
	kind    Kind
	message string
	pos     token.Pos
}

// declError is a problem with a directive, reported at its declaration.
type declError struct {
	pos token.Pos
	end token.Pos
	msg string
}

// parseDirectives returns the endcheck directives of a comment group.
func parseDirectives(doc *ast.CommentGroup) (directives []directive, errs []declError) {
	if doc == nil {
		return nil, nil
	}

	for _, c := range doc.List {
		text, ok := strings.CutPrefix(c.Text, directivePrefix)
		if !ok {
			continue
		}

		d, err := parseDirective(text)
		if err != "" {
			errs = append(errs, declError{pos: c.Pos(), end: c.End(), msg: err})

			continue
		}

		d.pos = c.Pos()
		directives = append(directives, d)
	}

	return directives, errs
}

// parseDirective parses the text following [directivePrefix].
func parseDirective(text string) (directive, string) {
	verb, arg, _ := strings.Cut(text, " ")
	arg = strings.TrimSpace(arg)

	switch verb {
	case "end":
		if arg != "" {
			return directive{}, "endcheck:end takes no arguments"
		}

		return directive{kind: KindTerminal}, ""

	case "ignore":
		if arg != "" {
			return directive{}, "endcheck:ignore takes no arguments"
		}

		return directive{kind: KindIgnore}, ""

	case "start":
		message, err := parseMessage(arg)
		if err != nil {
			return directive{}, fmt.Sprintf("malformed endcheck:start message: %v", err)
		}

		return directive{kind: KindEntryPoint, message: message}, ""

	default:
		return directive{}, fmt.Sprintf("unknown directive endcheck:%s", verb)
	}
}

// parseMessage accepts a Go string literal or the raw remainder of the line.
func parseMessage(arg string) (string, error) {
	if arg == "" || (arg[0] != '"' && arg[0] != '`') {
		return arg, nil
	}

	return strconv.Unquote(arg)
}
