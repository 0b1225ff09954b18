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

package gclplugin

import "fillmore-labs.com/endcheck/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Declarations enables diagnostics for inconsistent directives.
	Declarations *bool `json:"declarations,omitzero"`
	// Related attaches the discarding context to diagnostics.
	Related *bool `json:"related,omitzero"`
	// Rules is the path of a TOML rules file.
	Rules *string `json:"rules,omitzero"`
	// MessagePrefix replaces the start of the default message.
	MessagePrefix *string `json:"message-prefix,omitzero"`
	// Terminals are qualified names of terminal methods.
	Terminals []string `json:"terminals,omitzero"`
	// EntryPoints are functions starting chains.
	EntryPoints []EntryPoint `json:"entry-points,omitzero"`
	// Ignore are qualified names of functions whose chains are not checked.
	Ignore []string `json:"ignore,omitzero"`
}

// EntryPoint names a function starting chains, with an optional custom message.
type EntryPoint struct {
	Func    string `json:"func"`
	Message string `json:"message,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the endcheck analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Declarations, analyzer.WithDeclarations)
	opts = appendOption(opts, s.Related, analyzer.WithRelated)
	opts = appendOption(opts, s.Rules, analyzer.WithRules)
	opts = appendOption(opts, s.MessagePrefix, analyzer.WithDefaultMessage)

	for _, name := range s.Terminals {
		opts = append(opts, analyzer.WithTerminal(name))
	}

	for _, e := range s.EntryPoints {
		opts = append(opts, analyzer.WithEntryPoint(e.Func, e.Message))
	}

	for _, name := range s.Ignore {
		opts = append(opts, analyzer.WithIgnore(name))
	}

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
