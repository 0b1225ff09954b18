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

// Package rules declares a builder without directives, configured by rules.
package rules

// Query is a query builder.
type Query struct{ where []string }

// Select starts a query.
func Select() *Query { return &Query{} }

// Where adds a condition.
func (q *Query) Where(cond string) *Query {
	q.where = append(q.where, cond)

	return q
}

// Run executes the query.
func (q *Query) Run() error { return nil }

// Raw starts an unchecked query.
func Raw() *Query { return &Query{} }

func use() {
	_ = Select().Where("a").Run()
	Select().Where("a") // want "Query not executed."
	Raw().Where("b")
}
