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

// Package chain reconstructs fluent call chains from syntax trees.
//
// A chain is a sequence of method calls, each invoked on the result of the previous one,
// rooted at a value of a builder-eligible type. The extractor records the nodes of each chain
// and the syntactic context consuming the value of its outermost expression.
package chain

import (
	"go/ast"
	"go/token"
	"go/types"
)

// RootKind classifies the origin of a chain.
type RootKind uint8

//go:generate go tool stringer -type RootKind,Usage -linecomment
const (
	// RootEntryPoint is a call to a marked entry point.
	RootEntryPoint RootKind = iota // entry point

	// RootCall is a call to any other function returning a builder.
	RootCall // call

	// RootComposite is a composite literal of a builder type.
	RootComposite // composite literal

	// RootSelf is the receiver of the enclosing method.
	RootSelf // receiver

	// RootVariable is any other operand, usually a variable or parameter.
	RootVariable // variable

	// RootReference is a method expression or an entry point used as a function value.
	RootReference // function reference
)

// Usage classifies the syntactic context consuming the value of a chain.
type Usage uint8

const (
	// UsageStatement discards the value: expression statements, go and defer calls,
	// assignments to the blank identifier.
	UsageStatement Usage = iota // statement

	// UsageAssignment stores the value in a variable, a composite literal or a channel.
	UsageAssignment // assignment

	// UsageArgument passes the value to a parameter.
	UsageArgument // argument

	// UsageReturn returns the value from a function declaration.
	UsageReturn // return

	// UsageClosure returns the value from a function literal.
	UsageClosure // closure

	// UsageReference uses a method or entry point as a function value.
	UsageReference // function reference

	// UsageEscape consumes the builder with a method or field that yields no builder.
	UsageEscape // escape

	// UsageOther is any other context, e.g. comparisons or switch tags.
	UsageOther // other
)

// Root is the origin of a chain.
type Root struct {
	Kind RootKind
	Expr ast.Expr
	// Type is the builder type of the root value.
	Type types.Type
	// Func is the called function of call and entry point roots, or the referenced function.
	Func *types.Func
	// Message is the custom message of an entry point root.
	Message string
}

// Node is a single step of a chain.
type Node struct {
	// Expr is the call expression of a method call or the selector of a field alias or method value.
	Expr ast.Expr
	// Sel is the selected method or field name.
	Sel *ast.Ident
	// Method is the invoked or referenced method, nil for fields.
	Method *types.Func
	// Result is the type of the step's value, for method values the result type of the method.
	Result types.Type
}

// Pos returns the start of the step, the selected name.
func (n Node) Pos() token.Pos { return n.Sel.Pos() }

// End returns the end of the step.
func (n Node) End() token.Pos { return n.Expr.End() }

// Context is the syntactic context consuming the outermost expression of a chain.
type Context struct {
	Usage Usage
	// Type is the expected type: the parameter type for arguments, the result type for returns,
	// the target type for assignments and references. Nil if unknown.
	Type types.Type
	// Node is the node consuming the value.
	Node ast.Node
}

// Chain is a reconstructed call chain.
type Chain struct {
	Root  Root
	Nodes []Node
	// Outer is the outermost expression of the chain.
	Outer   ast.Expr
	Context Context
	// Suppressed is set for chains with an explicit opt-out.
	Suppressed bool
}
