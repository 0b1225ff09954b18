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

package suppress

import "test/dsl"

func statements() {
	dsl.Start().Add(1) //nolint:endcheck
	dsl.Start().Add(1) //nolint:all
	dsl.Start().       //nolint:endcheck
				Add(1)
	dsl.Legacy().Add(1)
	dsl.Start().Add(1) //nolint:other // want `Method chain must end with Build\(\) or End\(\)`
}

// helper builds an incomplete chain on purpose.
//
//endcheck:ignore
func helper() { // want helper:"ignore"
	dsl.Start().Add(1)

	func() { dsl.Start() }()
}

// skipped is excluded from analysis.
//
//nolint:endcheck
func skipped() {
	dsl.Start().Add(1)
}

func chained() *dsl.Dsl {
	return helperStart().Add(1)
}

// helperStart starts chains checked by the callers.
//
//endcheck:ignore
func helperStart() *dsl.Dsl { return dsl.Start() } // want helperStart:"ignore"

func callers() {
	helperStart().Add(1)
}
