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

type impl struct{}

func newImpl() *impl { return &impl{} }

func (i *impl) With(string) dsl.Builder { return i }

func (i *impl) Step() *impl { return i }

func (*impl) Close() error { return nil }

func implementations() {
	newImpl().Step() // want `Method chain must end with Close\(\)`
	_ = newImpl().Step().Close()
	_ = newImpl().With("a").Close()
	newImpl().With("a") // want `Method chain must end with Close\(\)` `Method chain must end with Close\(\)`
}
