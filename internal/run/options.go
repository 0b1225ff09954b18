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

package run

import "fillmore-labs.com/endcheck/internal/config"

// Options represent configuration options for the endcheck analyzer.
type Options struct {
	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Rules are markers registered programmatically.
	Rules config.Rules

	// RulesFile is the path of a TOML rules file, loaded for every pass.
	RulesFile string

	// Prefix replaces the start of the default diagnostic message.
	Prefix string
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehavior(),
	}
}

// rules merges the programmatic rules with the rules file.
func (r *Options) rules() (config.Rules, error) {
	if err := r.Rules.Validate(); err != nil {
		return config.Rules{}, err
	}

	if r.RulesFile == "" {
		return r.Rules, nil
	}

	loaded, err := config.LoadRules(r.RulesFile)
	if err != nil {
		return config.Rules{}, err
	}

	var rules config.Rules
	rules.Merge(r.Rules)
	rules.Merge(loaded)

	return rules, nil
}
