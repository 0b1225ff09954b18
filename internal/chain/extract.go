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

package chain

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/endcheck/internal/astutil"
	"fillmore-labs.com/endcheck/internal/index"
)

// Extractor finds call chains on builder-eligible types.
type Extractor struct {
	Info  *types.Info
	Index *index.Index
	File  astutil.CurrentFile
}

// Extract returns the chains in the syntax tree below c.
//
// Function declarations with a //nolint:endcheck doc comment are skipped.
func (x Extractor) Extract(ctx context.Context, c inspector.Cursor) []Chain {
	defer trace.StartRegion(ctx, "Extract").End()

	var chains []Chain

	add := func(ch Chain, ok bool) {
		if ok {
			chains = append(chains, ch)
		}
	}

	nodes := []ast.Node{
		// keep-sorted start
		(*ast.CallExpr)(nil),
		(*ast.FuncDecl)(nil),
		(*ast.Ident)(nil),
		(*ast.SelectorExpr)(nil),
		// keep-sorted end
	}

	c.Inspect(nodes, func(c inspector.Cursor) bool {
		switch n := c.Node().(type) {
		// keep-sorted start newline_separated=yes
		case *ast.CallExpr:
			if t, ok := x.element(n); ok && !x.continues(c, t) {
				add(x.chain(c, n, false))
			}

		case *ast.FuncDecl:
			return n.Body != nil && !astutil.DocHasNoLint(n.Doc)

		case *ast.Ident:
			if kind, _ := c.ParentEdge(); kind == edge.SelectorExpr_Sel {
				break // handled with the selector
			}

			add(x.entryReference(c, n))

		case *ast.SelectorExpr:
			add(x.selector(c, n))
			// keep-sorted end
		}

		return true
	})

	return chains
}

// element reports whether a call belongs to a chain and returns the type of its value.
func (x Extractor) element(call *ast.CallExpr) (types.Type, bool) {
	if tv, ok := x.Info.Types[call.Fun]; ok && tv.IsType() {
		return nil, false // conversion
	}

	t := x.Info.TypeOf(call)

	if sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr); ok {
		if s := x.Info.Selections[sel]; s != nil && s.Kind() == types.MethodVal && x.Index.Eligible(s.Recv()) {
			return t, true // method step
		}
	}

	return t, x.Index.Eligible(t)
}

// selector handles field aliases, method values and method expressions.
func (x Extractor) selector(c inspector.Cursor, sel *ast.SelectorExpr) (Chain, bool) {
	s := x.Info.Selections[sel]
	if s == nil {
		return x.entryReference(c, sel) // qualified identifier
	}

	if !x.Index.Eligible(s.Recv()) {
		return Chain{}, false
	}

	switch s.Kind() {
	case types.FieldVal:
		if x.continues(c, x.Info.TypeOf(sel)) {
			return Chain{}, false
		}

		return x.chain(c, sel, false)

	default: // method value or method expression
		if x.called(c) {
			return Chain{}, false
		}

		return x.chain(c, sel, true)
	}
}

// entryReference builds a chain for an entry point used as a function value.
func (x Extractor) entryReference(c inspector.Cursor, e ast.Expr) (Chain, bool) {
	var id *ast.Ident
	switch n := e.(type) {
	case *ast.Ident:
		id = n

	case *ast.SelectorExpr:
		id = n.Sel

	default:
		return Chain{}, false
	}

	fn, ok := x.Info.Uses[id].(*types.Func)
	if !ok {
		return Chain{}, false
	}

	message, ok := x.Index.EntryPoint(fn)
	if !ok || x.called(c) {
		return Chain{}, false
	}

	c, outer := x.instantiated(c)

	root := Root{
		Kind:    RootReference,
		Expr:    outer,
		Type:    resultOf(fn),
		Func:    fn,
		Message: message,
	}

	if !x.Index.Eligible(root.Type) {
		return Chain{}, false
	}

	return x.finish(c, Chain{Root: root, Outer: outer}, true), true
}

// continues reports whether the value at c, of type t, is the receiver of a further chain step.
func (x Extractor) continues(c inspector.Cursor, t types.Type) bool {
	c = unparen(c)

	if kind, _ := c.ParentEdge(); kind != edge.SelectorExpr_X {
		return false
	}

	s := x.Info.Selections[c.Parent().Node().(*ast.SelectorExpr)]

	return s != nil && s.Kind() != types.MethodExpr && x.Index.Eligible(t)
}

// called reports whether the function value at c is called.
func (x Extractor) called(c inspector.Cursor) bool {
	c, _ = x.instantiated(unparen(c))
	kind, _ := unparen(c).ParentEdge()

	return kind == edge.CallExpr_Fun
}

// instantiated climbs from a generic function to its explicit instantiation.
func (x Extractor) instantiated(c inspector.Cursor) (inspector.Cursor, ast.Expr) {
	for {
		switch kind, _ := c.ParentEdge(); kind {
		case edge.IndexExpr_X, edge.IndexListExpr_X:
			if _, ok := x.Info.TypeOf(c.Parent().Node().(ast.Expr)).(*types.Signature); ok {
				c = c.Parent()

				continue
			}
		}

		return c, c.Node().(ast.Expr)
	}
}

// chain collects the nodes from the outermost expression down to the root.
func (x Extractor) chain(c inspector.Cursor, outer ast.Expr, reference bool) (Chain, bool) {
	var (
		nodes []Node
		root  Root
		e     = outer
	)

descend:
	for {
		e = ast.Unparen(e)

		switch n := e.(type) {
		case *ast.CallExpr:
			sel, ok := ast.Unparen(n.Fun).(*ast.SelectorExpr)
			if !ok {
				break descend
			}

			s := x.Info.Selections[sel]
			if s == nil || s.Kind() != types.MethodVal || !x.Index.Eligible(s.Recv()) {
				break descend
			}

			fn, _ := s.Obj().(*types.Func)
			nodes = append(nodes, Node{Expr: n, Sel: sel.Sel, Method: fn, Result: x.Info.TypeOf(n)})
			e = sel.X

		case *ast.SelectorExpr:
			s := x.Info.Selections[n]
			if s == nil || !x.Index.Eligible(s.Recv()) {
				break descend
			}

			switch s.Kind() {
			case types.FieldVal:
				nodes = append(nodes, Node{Expr: n, Sel: n.Sel, Result: x.Info.TypeOf(n)})

			case types.MethodVal:
				fn, _ := s.Obj().(*types.Func)
				nodes = append(nodes, Node{Expr: n, Sel: n.Sel, Method: fn, Result: resultOf(fn)})

			case types.MethodExpr:
				fn, _ := s.Obj().(*types.Func)
				nodes = append(nodes, Node{Expr: n, Sel: n.Sel, Method: fn, Result: resultOf(fn)})
				root = Root{Kind: RootReference, Expr: n, Type: s.Recv(), Func: fn}

				break descend
			}

			e = n.X

		default:
			break descend
		}
	}

	slices.Reverse(nodes)

	if root.Expr == nil {
		root = x.root(c, e)
	}

	switch root.Kind {
	case RootSelf, RootVariable:
		if len(nodes) == 0 || !x.Index.Eligible(nodes[0].Result) {
			return Chain{}, false // plain use of a builder value
		}

	case RootComposite:
		if len(nodes) == 0 {
			return Chain{}, false
		}
	}

	return x.finish(c, Chain{Root: root, Nodes: nodes, Outer: outer}, reference), true
}

// root classifies the innermost expression of a chain.
func (x Extractor) root(c inspector.Cursor, e ast.Expr) Root {
	r := Root{Kind: RootVariable, Expr: e, Type: x.Info.TypeOf(e)}

	switch n := e.(type) {
	case *ast.CallExpr:
		if tv, ok := x.Info.Types[n.Fun]; ok && tv.IsType() {
			break // conversion
		}

		r.Func, _ = typeutil.Callee(x.Info, n).(*types.Func)
		if message, ok := x.Index.EntryPoint(r.Func); ok {
			r.Kind, r.Message = RootEntryPoint, message
		} else {
			r.Kind = RootCall
		}

	case *ast.CompositeLit:
		r.Kind = RootComposite

	case *ast.UnaryExpr:
		if _, ok := ast.Unparen(n.X).(*ast.CompositeLit); ok && n.Op == token.AND {
			r.Kind = RootComposite
		}

	case *ast.Ident:
		if recv := x.receiver(c); recv != nil && x.Info.Uses[n] == recv {
			r.Kind = RootSelf
		}
	}

	return r
}

// receiver returns the receiver of the method declaration enclosing c, if any.
func (x Extractor) receiver(c inspector.Cursor) types.Object {
	for e := range c.Enclosing((*ast.FuncDecl)(nil)) {
		fun := e.Node().(*ast.FuncDecl)
		if fun.Recv == nil || len(fun.Recv.List) == 0 || len(fun.Recv.List[0].Names) == 0 {
			return nil
		}

		return x.Info.Defs[fun.Recv.List[0].Names[0]]
	}

	return nil
}

// finish classifies the usage context and suppression of a chain.
func (x Extractor) finish(c inspector.Cursor, ch Chain, reference bool) Chain {
	ch.Context = x.classify(c)

	if reference {
		t := ch.Context.Type
		if t == nil {
			t = x.Info.TypeOf(ch.Outer)
		}

		ch.Context = Context{Usage: UsageReference, Type: t, Node: ch.Context.Node}
	}

	ch.Suppressed = x.suppressed(c, ch)

	return ch
}

// suppressed reports whether a chain is exempt from checks.
func (x Extractor) suppressed(c inspector.Cursor, ch Chain) bool {
	if x.Index.Ignored(ch.Root.Func) ||
		x.File.NoLintComment(ch.Root.Expr.Pos()) || x.File.NoLintComment(ch.Outer.End()) {
		return true
	}

	stmt := false
	for e := range c.Enclosing() {
		switch n := e.Node().(type) {
		case *ast.FuncDecl:
			if fn, ok := x.Info.Defs[n.Name].(*types.Func); ok && x.Index.Ignored(fn) {
				return true
			}

		case ast.Stmt:
			if !stmt {
				stmt = true
				if x.File.NoLintComment(n.Pos()) {
					return true
				}
			}
		}
	}

	return false
}

// unparen climbs out of enclosing parentheses.
func unparen(c inspector.Cursor) inspector.Cursor {
	for {
		if kind, _ := c.ParentEdge(); kind != edge.ParenExpr_X {
			return c
		}

		c = c.Parent()
	}
}

// resultOf returns the first result type of a function, or nil.
func resultOf(fn *types.Func) types.Type {
	if fn == nil {
		return nil
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Results().Len() == 0 {
		return nil
	}

	return sig.Results().At(0).Type()
}
