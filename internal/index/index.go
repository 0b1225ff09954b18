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

// Package index collects the endcheck markers and builder types visible to a package.
package index

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/endcheck/internal/astutil"
	"fillmore-labs.com/endcheck/internal/config"
)

// Index holds the terminal methods, entry points and builder-eligible types visible in one package.
//
// It is built once per analysis pass. Type facts of imported types are computed on first use
// and memoized, the index is confined to the goroutine running the pass.
type Index struct {
	pkg        *types.Package
	importFact func(types.Object, analysis.Fact) bool

	// markers holds resolved markers, including negative lookups.
	markers map[*types.Func]Marker

	// rules holds markers declared by qualified name.
	rules map[astutil.FuncName]Marker

	// terminal memoizes [Index.IsTerminal].
	terminal map[*types.Func]bool

	// facts memoizes [Index.Facts].
	facts map[*types.TypeName]*TypeFacts

	// stages holds types reachable from entry points that lead to a terminal method,
	// mapped to the terminal names reachable from them.
	stages map[*types.TypeName][]string

	// interfaceTerminals holds terminal interface methods by name.
	interfaceTerminals map[string][]*types.Func
}

// Declaration is a problem with endcheck directives found at a declaration.
type Declaration struct {
	Pos, End token.Pos
	Message  string
}

// New builds the [Index] for the package of p.
//
// Directives declared in the package are exported as [Marker] facts. Problems with directives
// are returned as declarations, the index ignores the offending directives.
func New(ctx context.Context, p *analysis.Pass, rules config.Rules) (*Index, []Declaration) {
	defer trace.StartRegion(ctx, "Index").End()

	x := &Index{
		pkg:        p.Pkg,
		importFact: p.ImportObjectFact,
		markers:    make(map[*types.Func]Marker),
		rules:      make(map[astutil.FuncName]Marker),
		terminal:   make(map[*types.Func]bool),
		facts:      make(map[*types.TypeName]*TypeFacts),

		interfaceTerminals: make(map[string][]*types.Func),
	}

	c := collector{Index: x, info: p.TypesInfo}
	for _, f := range p.Files {
		c.collectFile(f)
	}

	for fn, m := range c.local {
		p.ExportObjectFact(fn, &m)

		if m.Kind == KindTerminal {
			x.addInterfaceTerminal(fn)
		}
	}

	entries := c.entries

	// Imported entry points, needed to find stage types.
	if p.AllObjectFacts != nil {
		for _, f := range p.AllObjectFacts() {
			m, ok := f.Fact.(*Marker)
			if !ok {
				continue
			}

			fn, ok := f.Object.(*types.Func)
			if !ok || fn.Pkg() == p.Pkg {
				continue
			}

			switch m.Kind {
			case KindEntryPoint:
				entries = append(entries, fn)

			case KindTerminal:
				x.addInterfaceTerminal(fn)
			}
		}
	}

	entries = append(entries, x.addRules(rules)...)

	x.stages = x.computeStages(entries)

	// Entry points declared here have to reach a terminal.
	for _, fn := range c.entries {
		if !x.Eligible(resultType(fn)) {
			c.errorf(c.entryPos[fn], token.NoPos, "entry point %s never reaches a terminal method", fn.Name())
		}
	}

	return x, c.errs
}

// Marker returns the marker of a function.
func (x *Index) Marker(fn *types.Func) Marker {
	if fn == nil {
		return Marker{}
	}

	fn = fn.Origin()
	if m, ok := x.markers[fn]; ok {
		return m
	}

	var m Marker

	switch {
	case fn.Pkg() == nil:
		// universe, e.g. error.Error

	case fn.Pkg() != x.pkg && x.importFact != nil && x.importFact(fn, &m):

	default:
		if len(x.rules) > 0 {
			m = x.rules[astutil.FuncNameOf(fn)]
		}
	}

	x.markers[fn] = m

	return m
}

// IsTerminal reports whether calling fn discharges a chain's obligation.
//
// A method redeclaring a terminal method of an embedded type with an identical signature
// is terminal too, as is a method implementing a terminal interface method.
func (x *Index) IsTerminal(fn *types.Func) bool {
	if fn == nil {
		return false
	}

	fn = fn.Origin()
	if t, ok := x.terminal[fn]; ok {
		return t
	}

	x.terminal[fn] = false // break embedding cycles

	t := x.Marker(fn).Kind == KindTerminal || x.overridesTerminal(fn) || x.implementsTerminal(fn)
	x.terminal[fn] = t

	return t
}

// EntryPoint reports whether fn starts a chain and its custom message, if any.
func (x *Index) EntryPoint(fn *types.Func) (message string, ok bool) {
	m := x.Marker(fn)

	return m.Message, m.Kind == KindEntryPoint
}

// Ignored reports whether chains related to fn are suppressed.
func (x *Index) Ignored(fn *types.Func) bool {
	return x.Marker(fn).Kind == KindIgnore
}

// overridesTerminal checks whether a method redeclares a terminal method of an embedded field.
func (x *Index) overridesTerminal(fn *types.Func) bool {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return false
	}

	named := namedOf(sig.Recv().Type())
	if named == nil {
		return false
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return false
	}

	for field := range st.Fields() {
		if !field.Embedded() {
			continue
		}

		obj, _, _ := types.LookupFieldOrMethod(field.Type(), true, fn.Pkg(), fn.Name())

		base, ok := obj.(*types.Func)
		if !ok || base.Origin() == fn || !types.Identical(base.Type(), fn.Type()) {
			continue
		}

		if x.IsTerminal(base) {
			return true
		}
	}

	return false
}

// implementsTerminal checks whether a concrete method implements a terminal method of an interface
// its receiver type satisfies.
func (x *Index) implementsTerminal(fn *types.Func) bool {
	candidates := x.interfaceTerminals[fn.Name()]
	if len(candidates) == 0 {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return false
	}

	named := namedOf(sig.Recv().Type())
	if named == nil || types.IsInterface(named) {
		return false
	}

	ptr := types.NewPointer(named)

	for _, m := range candidates {
		if !types.Identical(m.Type(), fn.Type()) {
			continue
		}

		iface, ok := m.Type().(*types.Signature).Recv().Type().Underlying().(*types.Interface)
		if ok && types.Implements(ptr, iface) {
			return true
		}
	}

	return false
}

// addInterfaceTerminal records a terminal method declared by a non-generic interface.
func (x *Index) addInterfaceTerminal(fn *types.Func) {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return
	}

	named, ok := types.Unalias(sig.Recv().Type()).(*types.Named)
	if !ok || !types.IsInterface(named) || named.TypeParams().Len() > 0 {
		return
	}

	x.interfaceTerminals[fn.Name()] = append(x.interfaceTerminals[fn.Name()], fn)
}

// addRules resolves rules against the package and its imports and returns the resolved entry points.
func (x *Index) addRules(rules config.Rules) []*types.Func {
	if rules.Empty() {
		return nil
	}

	add := func(rs []config.Rule, kind Kind) {
		for _, r := range rs {
			name, err := astutil.ParseFuncName(r.Func)
			if err != nil {
				continue // validated on load
			}

			if _, ok := x.rules[name]; ok {
				continue // first rule wins
			}

			x.rules[name] = Marker{Kind: kind, Message: r.Message}
		}
	}

	add(rules.Terminals, KindTerminal)
	add(rules.EntryPoints, KindEntryPoint)
	add(rules.Ignored, KindIgnore)

	var entries []*types.Func

	pkgs := allPackages(x.pkg)

	for _, r := range rules.EntryPoints {
		name, err := astutil.ParseFuncName(r.Func)
		if err != nil {
			continue
		}

		if fn := lookupFunc(pkgs[name.Path], name); fn != nil {
			entries = append(entries, fn)
		}
	}

	for _, r := range rules.Terminals {
		name, err := astutil.ParseFuncName(r.Func)
		if err != nil {
			continue
		}

		if fn := lookupFunc(pkgs[name.Path], name); fn != nil {
			x.addInterfaceTerminal(fn)
		}
	}

	return entries
}

// allPackages returns pkg and its transitive imports by path.
func allPackages(pkg *types.Package) map[string]*types.Package {
	pkgs := make(map[string]*types.Package)

	var visit func(*types.Package)
	visit = func(p *types.Package) {
		if _, ok := pkgs[p.Path()]; ok {
			return
		}

		pkgs[p.Path()] = p
		for _, imp := range p.Imports() {
			visit(imp)
		}
	}

	visit(pkg)

	return pkgs
}

// lookupFunc finds the function or method a [astutil.FuncName] denotes.
func lookupFunc(pkg *types.Package, name astutil.FuncName) *types.Func {
	if pkg == nil {
		return nil
	}

	if name.Receiver == "" {
		fn, _ := pkg.Scope().Lookup(name.Name).(*types.Func)

		return fn
	}

	tn, ok := pkg.Scope().Lookup(name.Receiver).(*types.TypeName)
	if !ok {
		return nil
	}

	obj, _, _ := types.LookupFieldOrMethod(tn.Type(), true, pkg, name.Name)
	fn, _ := obj.(*types.Func)

	return fn
}

// collector gathers directives from the syntax of the current package.
type collector struct {
	*Index
	info *types.Info

	local    map[*types.Func]Marker
	entries  []*types.Func
	entryPos map[*types.Func]token.Pos
	errs     []Declaration
}

func (c *collector) errorf(pos, end token.Pos, format string, args ...any) {
	c.errs = append(c.errs, Declaration{Pos: pos, End: end, Message: fmt.Sprintf(format, args...)})
}

func (c *collector) collectFile(f *ast.File) {
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			c.declare(d.Name, d.Doc)

		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}

			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				it, ok := ts.Type.(*ast.InterfaceType)
				if !ok || it.Methods == nil {
					continue
				}

				for _, field := range it.Methods.List {
					if len(field.Names) != 1 {
						continue // embedded interface
					}

					c.declare(field.Names[0], field.Doc)
				}
			}
		}
	}
}

// declare records the directives of a function declaration.
func (c *collector) declare(id *ast.Ident, doc *ast.CommentGroup) {
	directives, errs := parseDirectives(doc)
	for _, err := range errs {
		c.errorf(err.pos, err.end, "%s", err.msg)
	}

	if len(directives) == 0 {
		return
	}

	fn, ok := c.info.Defs[id].(*types.Func)
	if !ok {
		return
	}

	first := directives[0]
	for _, d := range directives[1:] {
		if d.kind != first.kind {
			c.errorf(d.pos, token.NoPos, "conflicting directives endcheck:%s and endcheck:%s on %s", first.kind, d.kind, fn.Name())
		}
	}

	sig, _ := fn.Type().(*types.Signature)

	switch first.kind {
	case KindTerminal:
		if sig == nil || sig.Recv() == nil {
			c.errorf(first.pos, token.NoPos, "endcheck:end on function %s, terminals must be methods", fn.Name())

			return
		}

	case KindEntryPoint:
		if sig == nil || sig.Results().Len() == 0 {
			c.errorf(first.pos, token.NoPos, "entry point %s has no result", fn.Name())

			return
		}

		if c.entryPos == nil {
			c.entryPos = make(map[*types.Func]token.Pos)
		}

		c.entries = append(c.entries, fn)
		c.entryPos[fn] = first.pos
	}

	m := Marker{Kind: first.kind, Message: first.message}

	if c.local == nil {
		c.local = make(map[*types.Func]Marker)
	}

	c.local[fn] = m
	c.markers[fn] = m
}
