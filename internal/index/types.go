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
	"go/types"
	"slices"
)

// TypeFacts describes a builder-eligible type.
type TypeFacts struct {
	// Terminals are the terminal methods in the method set of the type, sorted by name.
	Terminals []*types.Func

	// Reachable are the names of terminal methods reachable from a stage type, sorted.
	// Stage types are part of a sequence started by an entry point and declare no terminals.
	Reachable []string
}

// Stage reports whether the type is a stage of a sequence without terminals of its own.
func (t *TypeFacts) Stage() bool {
	return len(t.Terminals) == 0
}

// TerminalNames returns the names of the terminal methods completing a chain of this type.
func (t *TypeFacts) TerminalNames() []string {
	if t.Stage() {
		return t.Reachable
	}

	names := make([]string, 0, len(t.Terminals))
	for _, fn := range t.Terminals {
		names = append(names, fn.Name())
	}

	return slices.Compact(names)
}

// Eligible reports whether values of type t participate in the completion contract.
func (x *Index) Eligible(t types.Type) bool {
	return x.Facts(t) != nil
}

// Facts returns the facts of a builder-eligible type, or nil if t is not builder-eligible.
//
// Pointers are dereferenced and generic types resolved to their origin.
func (x *Index) Facts(t types.Type) *TypeFacts {
	named := namedOf(t)
	if named == nil {
		return nil
	}

	tn := named.Obj()
	if facts, ok := x.facts[tn]; ok {
		return facts
	}

	x.facts[tn] = nil // recursive types

	var facts *TypeFacts
	if terminals := x.terminalsOf(named); len(terminals) > 0 {
		facts = &TypeFacts{Terminals: terminals}
	} else if reachable, ok := x.stages[tn]; ok {
		facts = &TypeFacts{Reachable: reachable}
	}

	x.facts[tn] = facts

	return facts
}

// SameType reports whether two builder types denote the same named type.
func SameType(a, b types.Type) bool {
	na, nb := namedOf(a), namedOf(b)

	return na != nil && nb != nil && na.Obj() == nb.Obj()
}

// terminalsOf collects the terminal methods in the method set of a named type.
func (x *Index) terminalsOf(named *types.Named) []*types.Func {
	var terminals []*types.Func

	for sel := range methodSet(named).Methods() {
		if fn, ok := sel.Obj().(*types.Func); ok && x.IsTerminal(fn) {
			terminals = append(terminals, fn)
		}
	}

	slices.SortFunc(terminals, func(a, b *types.Func) int {
		switch {
		case a.Name() < b.Name():
			return -1
		case a.Name() > b.Name():
			return 1
		default:
			return 0
		}
	})

	return terminals
}

// computeStages finds the types reachable from entry points through method results
// that lead to a type with terminal methods.
//
// The search stays in the package declaring the entry point's result type.
func (x *Index) computeStages(entries []*types.Func) map[*types.TypeName][]string {
	succ := make(map[*types.TypeName][]*types.TypeName)

	var queue []*types.Named

	visit := func(named *types.Named, pkg *types.Package) {
		if named == nil || named.Obj().Pkg() != pkg {
			return
		}

		if _, ok := succ[named.Obj()]; ok {
			return
		}

		succ[named.Obj()] = nil
		queue = append(queue, named)
	}

	for _, fn := range entries {
		if named := namedOf(resultType(fn)); named != nil {
			visit(named, named.Obj().Pkg())
		}
	}

	for len(queue) > 0 {
		named := queue[0]
		queue = queue[1:]

		tn, pkg := named.Obj(), named.Obj().Pkg()

		for sel := range methodSet(named).Methods() {
			sig, ok := sel.Obj().Type().(*types.Signature)
			if !ok {
				continue
			}

			for res := range sig.Results().Variables() {
				next := namedOf(res.Type())
				if next == nil || next.Obj().Pkg() != pkg {
					continue
				}

				succ[tn] = append(succ[tn], next.Obj())
				visit(next, pkg)
			}
		}
	}

	// Propagate reachable terminal names backwards until nothing changes.
	reach := make(map[*types.TypeName][]string, len(succ))

	for tn := range succ {
		if named := namedOf(tn.Type()); named != nil {
			for _, fn := range x.terminalsOf(named) {
				reach[tn] = append(reach[tn], fn.Name())
			}
		}
	}

	for changed := true; changed; {
		changed = false

		for tn, next := range succ {
			for _, n := range next {
				for _, name := range reach[n] {
					if !slices.Contains(reach[tn], name) {
						reach[tn] = append(reach[tn], name)
						changed = true
					}
				}
			}
		}
	}

	stages := make(map[*types.TypeName][]string)

	for tn, names := range reach {
		if len(names) == 0 {
			continue
		}

		slices.Sort(names)
		stages[tn] = names
	}

	return stages
}

// methodSet returns the method set of a named type, including pointer receiver methods.
func methodSet(named *types.Named) *types.MethodSet {
	if types.IsInterface(named) {
		return types.NewMethodSet(named)
	}

	return types.NewMethodSet(types.NewPointer(named))
}

// namedOf returns the origin of a named type or pointer to a named type.
func namedOf(t types.Type) *types.Named {
	if t == nil {
		return nil
	}

	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}

	return named.Origin()
}

// resultType returns the first result type of a function, or nil.
func resultType(fn *types.Func) types.Type {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Results().Len() == 0 {
		return nil
	}

	return sig.Results().At(0).Type()
}
