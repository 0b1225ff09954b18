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

// Package dsl is a small fluent API used by the other test packages.
package dsl

// Dsl collects items.
type Dsl struct {
	items []int

	// And continues the chain.
	And *Dsl
}

// Start begins a chain.
//
//endcheck:start
func Start() *Dsl { // want Start:"start"
	d := &Dsl{}
	d.And = d

	return d
}

// Add appends an item.
func (d *Dsl) Add(i int) *Dsl {
	d.items = append(d.items, i)

	return d
}

// Twice appends an item two times.
func (d *Dsl) Twice(i int) *Dsl {
	return d.Add(i).Add(i)
}

// Each calls f with the builder.
func (d *Dsl) Each(f func(*Dsl)) *Dsl {
	f(d)

	return d
}

// Reset drops the collected items.
func (d *Dsl) Reset() {
	d.items = nil
	d.Add(0) // want `Method chain must end with Build\(\) or End\(\)`
}

// Name is a plain query.
func (d *Dsl) Name() string { return "dsl" }

// Close is not a terminal method.
func (d *Dsl) Close() error { return nil }

// Nested starts a sub-builder.
func (d *Dsl) Nested() *Sub { return &Sub{parent: d} }

// End completes the chain.
//
//endcheck:end
func (d *Dsl) End() {} // want End:"end"

// Build completes the chain and returns the items.
//
//endcheck:end
func (d *Dsl) Build() []int { return d.items } // want Build:"end"

// Sub is a nested builder.
type Sub struct{ parent *Dsl }

// Item adds a sub item.
func (s *Sub) Item(int) *Sub { return s }

// Done returns to the parent builder.
//
//endcheck:end
func (s *Sub) Done() *Dsl { return s.parent } // want Done:"end"

// Legacy starts chains that are never completed.
//
//endcheck:ignore
func Legacy() *Dsl { return Start() } // want Legacy:"ignore"
