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

// Package config holds the analyzer options and the rules file.
package config

// Config is a single behavioral option of the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// ReportDeclarations enables diagnostics for inconsistent endcheck directives at their declaration.
	ReportDeclarations

	// RelatedInformation attaches the discarding context to each chain diagnostic.
	RelatedInformation
)

// Behavior is the set of enabled [Config] options.
type Behavior struct {
	options Config
}

// NewBehavior returns a [Behavior] with the given options enabled.
func NewBehavior(options ...Config) Behavior {
	var b Behavior
	for _, o := range options {
		b.options |= o
	}

	return b
}

// DefaultBehavior returns the default [Behavior].
func DefaultBehavior() Behavior {
	return NewBehavior(ReportDeclarations, RelatedInformation)
}

// Set enables or disables option.
func (b *Behavior) Set(option Config, enabled bool) {
	if enabled {
		b.options |= option
	} else {
		b.options &^= option
	}
}

// Enabled reports whether option is enabled.
func (b Behavior) Enabled(option Config) bool {
	return b.options&option == option
}
