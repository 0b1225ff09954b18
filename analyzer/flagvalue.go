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

package analyzer

import (
	"flag"
	"strconv"

	"fillmore-labs.com/endcheck/internal/config"
)

// NewBehaviorValue returns a boolean [flag.Value] toggling a single option of a [config.Behavior].
func NewBehaviorValue(behavior *config.Behavior, option config.Config) flag.Getter {
	return behaviorValue{behavior: behavior, option: option}
}

type behaviorValue struct {
	behavior *config.Behavior
	option   config.Config
}

// Set implements [flag.Value].
func (v behaviorValue) Set(s string) error {
	enabled, err := parseBool(s)
	if err != nil {
		return err
	}

	v.behavior.Set(v.option, enabled)

	return nil
}

// String implements [flag.Value]. It is called on the zero value for usage messages.
func (v behaviorValue) String() string {
	return strconv.FormatBool(v.enabled())
}

// Get implements [flag.Getter].
func (v behaviorValue) Get() any {
	return v.enabled()
}

// IsBoolFlag marks the flag as usable without a value.
func (behaviorValue) IsBoolFlag() bool { return true }

func (v behaviorValue) enabled() bool {
	return v.behavior != nil && v.behavior.Enabled(v.option)
}

// parseBool accepts the spellings of [strconv.ParseBool] and "on"/"off".
func parseBool(s string) (bool, error) {
	switch s {
	case "on", "On", "ON":
		return true, nil

	case "off", "Off", "OFF":
		return false, nil
	}

	return strconv.ParseBool(s)
}
