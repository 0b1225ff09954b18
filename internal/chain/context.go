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
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// classify classifies the parent of the outermost chain expression at c.
//
// Parentheses, conversions and explicit instantiations are transparent.
func (x Extractor) classify(c inspector.Cursor) Context {
	c = x.transparent(c)

	kind, idx := c.ParentEdge()
	parent := c.Parent().Node()

	switch kind {
	case edge.ExprStmt_X, edge.GoStmt_Call, edge.DeferStmt_Call:
		return Context{Usage: UsageStatement, Node: parent}

	case edge.AssignStmt_Rhs:
		n := parent.(*ast.AssignStmt)
		if len(n.Lhs) != len(n.Rhs) {
			break
		}

		if isBlank(n.Lhs[idx]) {
			return Context{Usage: UsageStatement, Node: n}
		}

		return Context{Usage: UsageAssignment, Type: x.Info.TypeOf(n.Lhs[idx]), Node: n}

	case edge.ValueSpec_Values:
		n := parent.(*ast.ValueSpec)
		if idx >= len(n.Names) {
			break
		}

		if isBlank(n.Names[idx]) {
			return Context{Usage: UsageStatement, Node: n}
		}

		return Context{Usage: UsageAssignment, Type: x.Info.TypeOf(n.Names[idx]), Node: n}

	case edge.CompositeLit_Elts, edge.KeyValueExpr_Key, edge.KeyValueExpr_Value, edge.SendStmt_Value:
		return Context{Usage: UsageAssignment, Node: parent}

	case edge.CallExpr_Args:
		call := parent.(*ast.CallExpr)

		return Context{Usage: UsageArgument, Type: x.paramType(call, idx), Node: call}

	case edge.ReturnStmt_Results:
		return x.returnContext(c, parent.(*ast.ReturnStmt), idx)
	}

	return Context{Usage: UsageOther, Node: parent}
}

// transparent climbs out of parentheses, conversions and instantiations.
func (x Extractor) transparent(c inspector.Cursor) inspector.Cursor {
	for {
		c, _ = x.instantiated(unparen(c))

		if kind, _ := c.ParentEdge(); kind != edge.CallExpr_Args {
			return c
		}

		call := c.Parent().Node().(*ast.CallExpr)
		if tv, ok := x.Info.Types[call.Fun]; !ok || !tv.IsType() {
			return c
		}

		c = c.Parent()
	}
}

// paramType returns the type of the parameter receiving argument idx of a call, or nil.
func (x Extractor) paramType(call *ast.CallExpr, idx int) types.Type {
	t := x.Info.TypeOf(call.Fun)
	if t == nil {
		return nil
	}

	sig, ok := t.Underlying().(*types.Signature)
	if !ok {
		return nil
	}

	params := sig.Params()
	n := params.Len()

	switch {
	case sig.Variadic() && idx >= n-1:
		last := params.At(n - 1).Type()
		if call.Ellipsis.IsValid() {
			return last
		}

		if s, ok := last.Underlying().(*types.Slice); ok {
			return s.Elem()
		}

		return nil

	case idx < n:
		return params.At(idx).Type()

	default:
		return nil
	}
}

// returnContext classifies a returned chain by the result type of the enclosing function.
func (x Extractor) returnContext(c inspector.Cursor, ret *ast.ReturnStmt, idx int) Context {
	for e := range c.Enclosing((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		var (
			sig   *types.Signature
			usage Usage
		)

		switch n := e.Node().(type) {
		case *ast.FuncDecl:
			if fn, ok := x.Info.Defs[n.Name].(*types.Func); ok {
				sig, _ = fn.Type().(*types.Signature)
			}

			usage = UsageReturn

		case *ast.FuncLit:
			sig, _ = x.Info.TypeOf(n).(*types.Signature)
			usage = UsageClosure
		}

		ctx := Context{Usage: usage, Node: ret}
		if sig != nil && sig.Results().Len() == len(ret.Results) {
			ctx.Type = sig.Results().At(idx).Type()
		}

		return ctx
	}

	return Context{Usage: UsageOther, Node: ret}
}

func isBlank(e ast.Expr) bool {
	id, ok := ast.Unparen(e).(*ast.Ident)

	return ok && id.Name == "_"
}
