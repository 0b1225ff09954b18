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

package dsl

// Builder is an interface builder.
type Builder interface {
	With(key string) Builder

	// Close completes the builder.
	//
	//endcheck:end
	Close() error // want Close:"end"
}

type builder struct{}

func (b builder) With(string) Builder { return b }

func (builder) Close() error { return nil }

// NewBuilder returns a [Builder].
func NewBuilder() Builder { return builder{} }

// Base is embedded in other builders.
type Base struct{}

// Finish completes the builder.
//
//endcheck:end
func (b *Base) Finish() {} // want Finish:"end"

// Derived embeds [Base].
type Derived struct{ Base }

// NewDerived returns a new [Derived].
func NewDerived() *Derived { return &Derived{} }

// Add adds an item.
func (d *Derived) Add(int) *Derived { return d }

// Finish replaces [Base.Finish].
func (d *Derived) Finish() {}

// List is a generic builder.
type List[T any] struct{ items []T }

// NewList starts a list.
//
//endcheck:start
func NewList[T any]() *List[T] { return &List[T]{} } // want NewList:"start"

// Append appends an item.
func (l *List[T]) Append(v T) *List[T] {
	l.items = append(l.items, v)

	return l
}

// Seal completes the list.
//
//endcheck:end
func (l *List[T]) Seal() []T { return l.items } // want Seal:"end"
