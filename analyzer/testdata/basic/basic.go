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

import (
	"strings"

	"test/dsl"
)

func complete() {
	dsl.Start().Add(1).End()
	dsl.Start().Add(1).Add(2).End()
	_ = dsl.Start().Add(1).Build()
	dsl.Start().Nested().Item(1).Done().End()
	dsl.NewDerived().Add(1).Finish()
	_ = dsl.NewList[int]().Append(1).Seal()
	_ = dsl.NewBuilder().With("a").Close()
	(&dsl.Dsl{}).Add(1).End()
	dsl.Start().And.Add(1).End()
	go dsl.Start().End()
}

func incomplete() {
	dsl.Start().Add(1)                    // want `Method chain must end with Build\(\) or End\(\)`
	dsl.Start()                           // want `Method chain must end with Build\(\) or End\(\)`
	(dsl.Start()).Add(1)                  // want `Method chain must end with Build\(\) or End\(\)`
	(&dsl.Dsl{}).Add(1)                   // want `Method chain must end with Build\(\) or End\(\)`
	_ = dsl.Start().Add(1)                // want `Method chain must end with Build\(\) or End\(\)`
	_ = dsl.Start().And                   // want `Method chain must end with Build\(\) or End\(\)`
	defer dsl.Start().Add(1)              // want `Method chain must end with Build\(\) or End\(\)`
	dsl.NewDerived().Add(1)               // want `Method chain must end with Finish\(\)`
	dsl.NewList[string]().Append("a")     // want `Method chain must end with Seal\(\)`
	dsl.NewBuilder().With("a").With("b")  // want `Method chain must end with Close\(\)`
	dsl.Start().Add(1).Close()            // want `Method chain must end with Build\(\) or End\(\)`
	_ = dsl.Start().Name()                // want `Method chain must end with Build\(\) or End\(\)`
}

func nested() {
	dsl.Start().Nested().Done().End()
	dsl.Start().Nested().Item(1).Done()
	dsl.Start().Add(1).Nested().Done()
	dsl.Start().Nested().Done().Add(1)    // want `Method chain must end with Build\(\) or End\(\)`
	dsl.Start().Nested()                  // want `Method chain must end with Build\(\) or End\(\)` `Method chain must end with Done\(\)`
	dsl.Start().Nested().Item(1).Done().Nested().Done().Build()
}

func deferral() {
	b := dsl.Start().Add(1)
	b.Add(2).End()
	b.Add(3) // want `Method chain must end with Build\(\) or End\(\)`

	var c = dsl.Start()
	c.End()
	c.Name()

	if dsl.Start() == nil {
		return
	}
}

func consume(*dsl.Dsl) {}

func consumeBuilder(dsl.Builder) {}

func inspect(any) {}

func arguments() {
	consume(dsl.Start().Add(1))
	consumeBuilder(dsl.NewBuilder().With("a"))
	inspect(dsl.Start().Add(1)) // want `Method chain must end with Build\(\) or End\(\)`
	inspect(dsl.Start().Build())

	items := []*dsl.Dsl{dsl.Start()}
	items = append(items, dsl.Start().Add(1))
	byName := map[string]*dsl.Dsl{"a": dsl.Start()}

	ch := make(chan *dsl.Dsl, 1)
	ch <- dsl.Start()

	_, _ = items, byName
}

func build() *dsl.Dsl { return dsl.Start().Add(1) }

func describe() any { return dsl.Start().Add(1) } // want `Method chain must end with Build\(\) or End\(\)`

func name() string { return dsl.Start().Name() } // want `Method chain must end with Build\(\) or End\(\)`

func unrelated() {
	var sb strings.Builder
	sb.WriteString("x")
	_ = strings.NewReplacer("a", "b").Replace("a")
	_ = sb.String()
}
