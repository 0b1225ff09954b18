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

package basic

import "test/dsl"

func supply(func() *dsl.Dsl) {}

func run(func()) {}

func each(func(*dsl.Dsl)) {}

func label(func(*dsl.Dsl) string) {}

func extend(func(int) *dsl.Dsl) {}

func closures() {
	supply(func() *dsl.Dsl { return dsl.Start() })
	run(func() { dsl.Start().Add(1) }) // want `Method chain must end with Build\(\) or End\(\)`
	run(func() { dsl.Start().Add(1).End() })
	_ = func() any { return dsl.Start() } // want `Method chain must end with Build\(\) or End\(\)`
}

func callbacks() {
	dsl.Start().Each(func(*dsl.Dsl) { dsl.Start().End() }).End()

	dsl.Start().Each(func(*dsl.Dsl) {
		dsl.Start().Add(1) // want `Method chain must end with Build\(\) or End\(\)`
	}).End()

	dsl.Start().Each(func(*dsl.Dsl) { // want `Method chain must end with Build\(\) or End\(\)`
		dsl.Start().End()
	})

	for i := range 3 {
		run(func() { _ = i * 2 })
	}
}

func references() {
	supply(dsl.Start)
	each((*dsl.Dsl).End)
	label((*dsl.Dsl).Name) // want `Method chain must end with Build\(\) or End\(\)`
	extend(dsl.Start().Add)
	run(dsl.Start().Add(1).End)

	b := dsl.Start()
	run(b.End)
	extend(b.Add)
}
