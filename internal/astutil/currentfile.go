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

package astutil

import (
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

// Linter is the name of the linter, used in //nolint comments and directives.
const Linter = "endcheck"

// CurrentFile holds the file under analysis together with its position information.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	return CurrentFile{file: file, handle: handle, generated: ast.IsGenerated(file)}
}

// Valid reports whether the file has position information.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated reports whether the file carries a "Code generated ... DO NOT EDIT." comment.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLintComment reports whether a //nolint:endcheck comment follows pos on the same line.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.handle == nil || !pos.IsValid() {
		return false
	}

	comments := c.file.Comments

	i, _ := slices.BinarySearchFunc(comments, pos, func(g *ast.CommentGroup, p token.Pos) int {
		return int(g.Pos() - p)
	})

	line := c.handle.Line(pos)
	for ; i < len(comments); i++ {
		for _, comment := range comments[i].List {
			if c.handle.Line(comment.Pos()) != line {
				return false
			}

			if CommentHasNoLint(comment) {
				return true
			}
		}
	}

	return false
}

// CommentHasNoLint checks whether a comment is a //nolint directive naming endcheck or all linters.
func CommentHasNoLint(comment *ast.Comment) bool {
	text, ok := strings.CutPrefix(comment.Text, "//")
	if !ok {
		return false
	}

	linters, ok := strings.CutPrefix(strings.TrimLeft(text, " \t"), "nolint:")
	if !ok {
		return false
	}

	if end := strings.IndexAny(linters, " \t/"); end >= 0 {
		linters = linters[:end] // explanation follows
	}

	for linter := range strings.SplitSeq(linters, ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == Linter || l == "all" {
			return true
		}
	}

	return false
}

// DocHasNoLint checks if the last line of a doc comment is a //nolint:endcheck directive.
func DocHasNoLint(doc *ast.CommentGroup) bool {
	return doc != nil && CommentHasNoLint(doc.List[len(doc.List)-1])
}
