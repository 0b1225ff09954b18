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

// Call starts a call that needs two parameters.
//
//endcheck:start "Missing parameters."
func Call() *Parameter1 { return &Parameter1{} } // want Call:`start "Missing parameters."`

// Parameter1 expects the first parameter.
type Parameter1 struct{}

// WithFirst sets the first parameter.
func (*Parameter1) WithFirst(int) *Parameter2 { return &Parameter2{} }

// Parameter2 expects the second parameter.
type Parameter2 struct{}

// WithSecond sets the second parameter and completes the call.
//
//endcheck:end
func (*Parameter2) WithSecond(int) {} // want WithSecond:"end"
