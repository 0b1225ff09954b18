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

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"

	"fillmore-labs.com/endcheck/internal/astutil"
)

// ErrInvalidRule is returned for rules that can't be applied.
var ErrInvalidRule = errors.New("invalid rule")

// Rules declares markers for functions that can't carry endcheck directives,
// usually because they live in third-party packages.
//
// Example rules file:
//
//	[[terminal]]
//	func = "(example.com/dsl.Builder).Build"
//
//	[[start]]
//	func = "example.com/dsl.New"
//	message = "Missing parameters."
//
//	[[ignore]]
//	func = "example.com/dsl.Legacy"
type Rules struct {
	Terminals   []Rule `toml:"terminal"`
	EntryPoints []Rule `toml:"start"`
	Ignored     []Rule `toml:"ignore"`
}

// Rule names a function by its qualified name, see [astutil.FuncName].
type Rule struct {
	Func string `toml:"func"`
	// Message replaces the default diagnostic for chains started by an entry point.
	Message string `toml:"message,omitempty"`
}

// Empty reports whether no rules are declared.
func (r Rules) Empty() bool {
	return len(r.Terminals) == 0 && len(r.EntryPoints) == 0 && len(r.Ignored) == 0
}

// Merge appends the rules of o to r.
func (r *Rules) Merge(o Rules) {
	r.Terminals = append(r.Terminals, o.Terminals...)
	r.EntryPoints = append(r.EntryPoints, o.EntryPoints...)
	r.Ignored = append(r.Ignored, o.Ignored...)
}

// LoadRules reads and validates a TOML rules file.
func LoadRules(path string) (Rules, error) {
	var rules Rules

	meta, err := toml.DecodeFile(path, &rules)
	if err != nil {
		return Rules{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		return Rules{}, fmt.Errorf("%s: %w: unknown keys %s", path, ErrInvalidRule, strings.Join(keys, ", "))
	}

	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("%s: %w", path, err)
	}

	return rules, nil
}

// Validate checks all function names and reports every invalid entry.
func (r Rules) Validate() error {
	var err error

	err = multierr.Append(err, validateRules("terminal", r.Terminals, false))
	err = multierr.Append(err, validateRules("start", r.EntryPoints, true))
	err = multierr.Append(err, validateRules("ignore", r.Ignored, false))

	return err
}

func validateRules(section string, rules []Rule, message bool) error {
	var err error

	for i, rule := range rules {
		name, perr := astutil.ParseFuncName(rule.Func)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: [[%s]] #%d: %w", ErrInvalidRule, section, i+1, perr))

			continue
		}

		if section == "terminal" && name.Receiver == "" {
			err = multierr.Append(err, fmt.Errorf("%w: [[%s]] #%d: %s is not a method", ErrInvalidRule, section, i+1, name))
		}

		if !message && rule.Message != "" {
			err = multierr.Append(err, fmt.Errorf("%w: [[%s]] #%d: message is only allowed for entry points", ErrInvalidRule, section, i+1))
		}
	}

	return err
}
