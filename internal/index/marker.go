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

package index

import "strconv"

// Kind classifies a function marked with an endcheck directive.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// KindNone marks functions without directive.
	KindNone Kind = iota // none

	// KindTerminal marks methods that discharge a chain's completion obligation.
	KindTerminal // end

	// KindEntryPoint marks functions and methods that start a chain.
	KindEntryPoint // start

	// KindIgnore marks functions whose chains are never reported.
	KindIgnore // ignore
)

// Marker is the object fact exported for every marked function,
// making markers of a package visible to its importers.
type Marker struct {
	Kind Kind
	// Message is the custom diagnostic of an entry point, empty for the default.
	Message string
}

// AFact implements [analysis.Fact].
func (*Marker) AFact() {}

func (m *Marker) String() string {
	if m.Message == "" {
		return m.Kind.String()
	}

	return m.Kind.String() + " " + strconv.Quote(m.Message)
}
