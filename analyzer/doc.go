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

// Package analyzer implements the endcheck static analysis pass.
//
// # Overview
//
// Endcheck enforces the completion contract of fluent APIs: a call chain built on a
// builder type has to reach one of the builder's terminal methods before its value is
// discarded.
//
// # Markers
//
// Builders are declared with directives in doc comments:
//
//	// End completes the chain.
//	//
//	//endcheck:end
//	func (d *Dsl) End() { ... }
//
//	// Start begins a chain.
//	//
//	//endcheck:start "Chain not completed."
//	func Start() *Dsl { ... }
//
// endcheck:end marks a terminal method, also on interface methods. endcheck:start marks an
// entry point, with an optional message replacing the default diagnostic. endcheck:ignore
// exempts a function: chains started by calling it and chains in its body are not checked.
// Functions in packages without directives can be marked with a TOML rules file, see [WithRules].
//
// # Example
//
//	dsl.Start().Add(1).End() // ok
//	dsl.Start().Add(1)       // Method chain must end with End()
//	b := dsl.Start().Add(1)  // ok, checked where b is used
//	consume(dsl.Start())     // ok, when consume takes a builder
//
// A //nolint:endcheck comment on the line of a chain suppresses its diagnostic.
package analyzer
