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

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"

	. "fillmore-labs.com/endcheck/internal/config"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "endcheck.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Can't write rules file: %v", err)
	}

	return path
}

func TestLoadRules(t *testing.T) {
	t.Parallel()

	path := writeRules(t, `
[[terminal]]
func = "(*example.com/dsl.Builder).Build"

[[start]]
func = "example.com/dsl.New"
message = "Missing parameters."

[[ignore]]
func = "example.com/dsl.Legacy"
`)

	got, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() failed: %v", err)
	}

	want := Rules{
		Terminals:   []Rule{{Func: "(*example.com/dsl.Builder).Build"}},
		EntryPoints: []Rule{{Func: "example.com/dsl.New", Message: "Missing parameters."}},
		Ignored:     []Rule{{Func: "example.com/dsl.Legacy"}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadRules() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRulesInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		errs    int
	}{
		{"unknown key", "[[terminal]]\nfunc = \"(example.com/dsl.B).End\"\nname = \"x\"\n", 1},
		{"terminal function", "[[terminal]]\nfunc = \"example.com/dsl.End\"\n", 1},
		{"message on terminal", "[[terminal]]\nfunc = \"(example.com/dsl.B).End\"\nmessage = \"x\"\n", 1},
		{"all reported", "[[terminal]]\nfunc = \"End\"\n\n[[ignore]]\nfunc = \"(dsl.B)\"\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadRules(writeRules(t, tt.content))
			if !errors.Is(err, ErrInvalidRule) {
				t.Fatalf("LoadRules() error = %v, want %v", err, ErrInvalidRule)
			}

			if got := len(multierr.Errors(errors.Unwrap(err))); got != tt.errs {
				t.Errorf("LoadRules() reported %d errors, want %d: %v", got, tt.errs, err)
			}
		})
	}
}

func TestLoadRulesSyntax(t *testing.T) {
	t.Parallel()

	if _, err := LoadRules(writeRules(t, "[[terminal]\n")); err == nil {
		t.Error("LoadRules() succeeded on malformed TOML")
	}

	if _, err := LoadRules(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadRules() succeeded on a missing file")
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	var r Rules
	if !r.Empty() {
		t.Fatal("zero Rules are not empty")
	}

	r.Merge(Rules{Terminals: []Rule{{Func: "(p.T).End"}}})
	r.Merge(Rules{Terminals: []Rule{{Func: "(p.T).Build"}}, Ignored: []Rule{{Func: "p.Legacy"}}})

	if got, want := len(r.Terminals), 2; got != want {
		t.Errorf("got %d terminals, want %d", got, want)
	}

	if r.Empty() {
		t.Error("merged Rules are empty")
	}
}
