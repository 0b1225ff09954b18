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

package directives

// T is a builder with inconsistent directives.
type T struct{}

// New starts a T.
//
//endcheck:start custom message without quotes
func New() *T { return &T{} } // want New:"start \"custom message without quotes\""

// Done completes T.
//
//endcheck:end
func (*T) Done() {} // want Done:"end"

// Other has an unknown directive.
//
// want +1 "unknown directive endcheck:finish"
//endcheck:finish
func (*T) Other() {}

// Extra has an argument.
//
// want +1 "endcheck:end takes no arguments"
//endcheck:end now
func (*T) Extra() {}

// Both has conflicting directives.
//
// want +2 "conflicting directives endcheck:end and endcheck:start on Both"
//endcheck:end
//endcheck:start
func (*T) Both() *T { return nil } // want Both:"end"

// Finish is no method.
//
// want +1 "endcheck:end on function Finish, terminals must be methods"
//endcheck:end
func Finish() {}

// Begin has no result.
//
// want +1 "entry point Begin has no result"
//endcheck:start
func Begin() {}

// Open never reaches a terminal.
//
// want +1 "entry point Open never reaches a terminal method"
//endcheck:start
func Open() string { return "" } // want Open:"start"

// Quoted has a malformed message.
//
// want +1 "malformed endcheck:start message"
//endcheck:start "unterminated
func Quoted() *T { return nil }

func use() {
	New().Done()
	New() // want "custom message without quotes"
	_ = Open()
}
