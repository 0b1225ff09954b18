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

// Package report turns violated obligations into diagnostics.
package report

import (
	"context"
	"runtime/trace"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/endcheck/internal/chain"
	"fillmore-labs.com/endcheck/internal/config"
	"fillmore-labs.com/endcheck/internal/index"
	"fillmore-labs.com/endcheck/internal/obligation"
)

// DefaultPrefix starts the message of chains without a custom message.
const DefaultPrefix = "Method chain must end with"

// Options control the diagnostic text.
type Options struct {
	// Prefix replaces [DefaultPrefix] when not empty.
	Prefix string

	Behavior config.Behavior
}

// Diagnostics creates one diagnostic per violated obligation.
//
// The diagnostic spans the expression creating the obligation. Custom messages are used verbatim,
// otherwise the message lists the terminal methods completing the chain.
func Diagnostics(ctx context.Context, obligations []*obligation.Obligation, opts Options) []analysis.Diagnostic {
	defer trace.StartRegion(ctx, "Report").End()

	var diagnostics []analysis.Diagnostic

	for _, o := range obligations {
		if o.State != obligation.Violated {
			continue
		}

		diagnostic := analysis.Diagnostic{
			Pos:     o.Pos,
			End:     o.End,
			Message: opts.message(o),
		}

		if o.Node != nil && opts.Behavior.Enabled(config.RelatedInformation) {
			if msg, ok := relatedMessage(o.Usage); ok {
				diagnostic.Related = []analysis.RelatedInformation{{Pos: o.Node.Pos(), End: o.Node.End(), Message: msg}}
			}
		}

		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

// Declarations converts problems found at directives into diagnostics.
func Declarations(decls []index.Declaration) []analysis.Diagnostic {
	diagnostics := make([]analysis.Diagnostic, 0, len(decls))
	for _, d := range decls {
		diagnostics = append(diagnostics, analysis.Diagnostic{Pos: d.Pos, End: d.End, Message: d.Message})
	}

	return diagnostics
}

func (o Options) message(ob *obligation.Obligation) string {
	if ob.Message != "" {
		return ob.Message
	}

	prefix := o.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	names := ob.TerminalNames()
	if len(names) == 0 {
		return prefix + " a terminal method"
	}

	return prefix + " " + concatNames(names)
}

func relatedMessage(usage chain.Usage) (string, bool) {
	switch usage {
	case chain.UsageStatement:
		return "Result discarded here", true

	case chain.UsageArgument:
		return "Passed as a non-builder argument here", true

	case chain.UsageReturn, chain.UsageClosure:
		return "Returned as a non-builder here", true

	case chain.UsageReference:
		return "Used as a function value here", true

	case chain.UsageEscape:
		return "Builder consumed here", true

	default:
		return "", false
	}
}

// concatNames formats a list of method names into a human-readable string (e.g., "A(), B() or C()").
func concatNames(names []string) string {
	var allNames strings.Builder

	for i, name := range names {
		if i > 0 {
			var separator string
			if i == len(names)-1 {
				separator = " or "
			} else {
				separator = ", "
			}

			allNames.WriteString(separator) // ignore error
		}

		allNames.WriteString(name) // ignore error
		allNames.WriteString("()") // ignore error
	}

	return allNames.String()
}
