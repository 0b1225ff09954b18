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
	"errors"
	"fmt"
	"go/types"
	"strings"
)

// ErrInvalidFuncName is returned for malformed qualified function names.
var ErrInvalidFuncName = errors.New("invalid function name")

// FuncName is the qualified name of a function or method.
type FuncName struct {
	Path     string // package path
	Receiver string // receiver type name, empty for functions
	Name     string // function name
}

// String returns the qualified name, "path.Func" or "(path.Type).Method".
func (f FuncName) String() string {
	if f.Receiver == "" {
		return qualify(f.Path, f.Name)
	}

	return "(" + qualify(f.Path, f.Receiver) + ")." + f.Name
}

func qualify(path, name string) string {
	if path == "" {
		return name
	}

	return path + "." + name
}

// FuncNameOf returns the [FuncName] of a function.
// Pointer receivers and aliases are resolved to the named type, generic methods to their origin.
func FuncNameOf(fun *types.Func) FuncName {
	fun = fun.Origin()

	var path string
	if pkg := fun.Pkg(); pkg != nil {
		path = pkg.Path()
	}

	name := FuncName{Path: path, Name: fun.Name()}

	sig, ok := fun.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return name
	}

	recv := types.Unalias(sig.Recv().Type())
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = types.Unalias(ptr.Elem())
	}

	if named, ok := recv.(*types.Named); ok {
		name.Receiver = named.Origin().Obj().Name()
	}

	return name
}

// ParseFuncName parses a qualified function name in the format produced by [FuncName.String].
// A leading '*' on the receiver type is accepted and ignored.
func ParseFuncName(s string) (FuncName, error) {
	s = strings.TrimSpace(s)

	if rest, ok := strings.CutPrefix(s, "("); ok {
		recv, name, ok := strings.Cut(rest, ").")
		if !ok || name == "" || strings.ContainsAny(name, "./()") {
			return FuncName{}, fmt.Errorf("%w %q: expected (path.Type).Method", ErrInvalidFuncName, s)
		}

		path, typ, ok := splitQualified(strings.TrimPrefix(recv, "*"))
		if !ok {
			return FuncName{}, fmt.Errorf("%w %q: expected (path.Type).Method", ErrInvalidFuncName, s)
		}

		return FuncName{Path: path, Receiver: typ, Name: name}, nil
	}

	path, name, ok := splitQualified(s)
	if !ok {
		return FuncName{}, fmt.Errorf("%w %q: expected path.Func", ErrInvalidFuncName, s)
	}

	return FuncName{Path: path, Name: name}, nil
}

// splitQualified splits "path.Name" at the last dot following the last slash.
func splitQualified(s string) (path, name string, ok bool) {
	dot := strings.LastIndexByte(s, '.')
	if dot <= 0 || dot == len(s)-1 || strings.LastIndexByte(s, '/') > dot {
		return "", "", false
	}

	return s[:dot], s[dot+1:], true
}
