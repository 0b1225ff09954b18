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

package obligation

import (
	"context"
	"go/token"
	"go/types"
	"runtime/trace"

	"fillmore-labs.com/endcheck/internal/chain"
	"fillmore-labs.com/endcheck/internal/index"
)

// Resolver computes the final state of chain obligations.
type Resolver struct {
	Index *index.Index
}

// ResolveAll resolves the obligations of all chains.
func (r Resolver) ResolveAll(ctx context.Context, chains []chain.Chain) []*Obligation {
	defer trace.StartRegion(ctx, "Resolve").End()

	var obligations []*Obligation
	for _, ch := range chains {
		obligations = append(obligations, r.Resolve(ch)...)
	}

	return obligations
}

// Resolve walks the nodes of a chain from the root outwards and returns its obligations in their final state.
//
// The walk keeps a stack of open obligations: a method returning a new builder type opens a nested
// obligation, a method returning the type of a lower entry closes everything above it.
// A chain ending in a terminal method discharges every obligation on the stack.
func (r Resolver) Resolve(ch chain.Chain) []*Obligation {
	root := r.open(ch.Root.Expr.Pos(), ch.Root.Expr.End(), ch.Root.Type, ch.Root.Message)
	if root == nil {
		return nil
	}

	var (
		done       []*Obligation
		stack      = []*Obligation{root}
		terminated = r.terminated(ch)
	)

walk:
	for _, n := range ch.Nodes {
		top := stack[len(stack)-1]

		if n.Method != nil && r.Index.IsTerminal(n.Method) {
			top.terminal = true
		}

		message, _ := r.Index.EntryPoint(n.Method)

		next := r.open(n.Pos(), n.End(), n.Result, message)
		if next == nil {
			// The builder is consumed by a step yielding no builder.
			for _, o := range stack {
				if terminated {
					o.resolve(Discharged, chain.UsageEscape, n.Expr)

					continue
				}

				o.close(chain.UsageEscape, n.Expr)
			}

			done, stack = append(done, stack...), nil

			break walk
		}

		if index.SameType(n.Result, top.Type) {
			continue
		}

		if i := lower(stack, n.Result); i >= 0 {
			// Back to an enclosing builder.
			for _, o := range stack[i+1:] {
				o.close(chain.UsageEscape, n.Expr)
			}

			done, stack = append(done, stack[i+1:]...), stack[:i+1]

			continue
		}

		switch {
		case top.Facts.Stage():
			// Sequence: the obligation moves on to the next stage.
			top.Type, top.Facts = next.Type, next.Facts
			if top.Message == "" {
				top.Message = next.Message
			}

		case top.terminal:
			top.resolve(Discharged, chain.UsageOther, n.Expr)
			done = append(done, top)
			stack[len(stack)-1] = next

		default:
			stack = append(stack, next)
		}
	}

	for _, o := range stack {
		if o.terminal || terminated {
			o.resolve(Discharged, ch.Context.Usage, ch.Context.Node)

			continue
		}

		r.resolveContext(o, ch.Context)
	}

	done = append(done, stack...)

	if ch.Suppressed {
		for _, o := range done {
			if o.State == Violated {
				o.State, o.Usage, o.Node = Suppressed, ch.Context.Usage, nil
			}
		}
	}

	return done
}

// terminated reports whether the outermost step of a chain calls a terminal method.
func (r Resolver) terminated(ch chain.Chain) bool {
	if len(ch.Nodes) == 0 {
		return false
	}

	last := ch.Nodes[len(ch.Nodes)-1]

	return last.Method != nil && r.Index.IsTerminal(last.Method)
}

// open creates an obligation for a builder-eligible type, nil otherwise.
func (r Resolver) open(pos, end token.Pos, t types.Type, message string) *Obligation {
	facts := r.Index.Facts(t)
	if facts == nil {
		return nil
	}

	return &Obligation{Pos: pos, End: end, Type: t, Facts: facts, Message: message}
}

// resolveContext resolves an obligation left open at the end of a chain by the consuming context.
func (r Resolver) resolveContext(o *Obligation, ctx chain.Context) {
	discharged := false

	switch ctx.Usage {
	case chain.UsageStatement, chain.UsageEscape:

	case chain.UsageAssignment, chain.UsageOther:
		discharged = true

	case chain.UsageArgument, chain.UsageReturn, chain.UsageClosure:
		discharged = ctx.Type == nil || r.Index.Eligible(ctx.Type)

	case chain.UsageReference:
		if ctx.Type == nil {
			discharged = true

			break
		}

		sig, ok := ctx.Type.Underlying().(*types.Signature)
		if !ok {
			discharged = true // stored as an opaque value

			break
		}

		discharged = sig.Results().Len() > 0 && r.Index.Eligible(sig.Results().At(0).Type())
	}

	if discharged {
		o.resolve(Discharged, ctx.Usage, ctx.Node)
	} else {
		o.resolve(Violated, ctx.Usage, ctx.Node)
	}
}

// lower returns the index of the stack entry below the top with the type t, or -1.
func lower(stack []*Obligation, t types.Type) int {
	for i := len(stack) - 2; i >= 0; i-- {
		if index.SameType(stack[i].Type, t) {
			return i
		}
	}

	return -1
}
