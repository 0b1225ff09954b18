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

// Package obligation resolves the completion obligations of call chains.
package obligation

import (
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/endcheck/internal/chain"
	"fillmore-labs.com/endcheck/internal/index"
)

// State is the resolution state of an obligation.
type State uint8

//go:generate go tool stringer -type State -linecomment
const (
	// Open obligations await resolution.
	Open State = iota // open

	// Discharged obligations reached a terminal method or were handed on to other code.
	Discharged // discharged

	// Suppressed obligations are exempt from checks.
	Suppressed // suppressed

	// Violated obligations lost their builder before reaching a terminal method.
	Violated // violated
)

// Obligation is the requirement to complete a builder value.
type Obligation struct {
	// Pos and End delimit the expression creating the obligation.
	Pos, End token.Pos

	// Type is the builder type, advanced along sequence stages.
	Type  types.Type
	Facts *index.TypeFacts

	// Message is the custom message of the entry point creating the obligation.
	Message string

	State State

	// Usage and Node describe where a violated obligation was lost.
	Usage chain.Usage
	Node  ast.Node

	terminal bool
}

// TerminalNames returns the names of the methods completing the obligation.
func (o *Obligation) TerminalNames() []string {
	if o.Facts == nil {
		return nil
	}

	return o.Facts.TerminalNames()
}

// resolve moves an open obligation into a final state.
func (o *Obligation) resolve(state State, usage chain.Usage, node ast.Node) {
	if o.State != Open {
		return
	}

	o.State = state
	if state == Violated {
		o.Usage, o.Node = usage, node
	}
}

// close resolves an obligation losing its builder: discharged if a terminal was reached.
func (o *Obligation) close(usage chain.Usage, node ast.Node) {
	if o.terminal {
		o.resolve(Discharged, usage, node)

		return
	}

	o.resolve(Violated, usage, node)
}
