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

	"fillmore-labs.com/endcheck/internal/config"
	"fillmore-labs.com/endcheck/internal/run"
)

func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(NewBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(NewBehaviorValue(&r.Behavior, config.ReportDeclarations), "declarations", "report inconsistent endcheck directives")
	flags.Var(NewBehaviorValue(&r.Behavior, config.RelatedInformation), "related", "point diagnostics to the discarding context")
	flags.StringVar(&r.RulesFile, "rules", r.RulesFile, "TOML file declaring terminal methods and entry points")
	flags.StringVar(&r.Prefix, "message-prefix", r.Prefix, "start of the default diagnostic message")
}
