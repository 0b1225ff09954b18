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

// Package run drives the endcheck pipeline for one analysis pass.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/endcheck/internal/astutil"
	"fillmore-labs.com/endcheck/internal/chain"
	"fillmore-labs.com/endcheck/internal/config"
	"fillmore-labs.com/endcheck/internal/index"
	"fillmore-labs.com/endcheck/internal/obligation"
	"fillmore-labs.com/endcheck/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the endcheck analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("endcheck: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	rules, err := r.rules()
	if err != nil {
		return nil, fmt.Errorf("endcheck: %w", err)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "EndCheck")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	for _, diagnostic := range r.Check(ctx, p, in, rules) {
		p.Report(diagnostic)
	}

	return nil, nil
}

// Check analyzes one package and returns all diagnostics.
//
// Markers declared in the package are exported as facts of p, nothing is reported.
func (r *Options) Check(ctx context.Context, p *analysis.Pass, in *inspector.Inspector, rules config.Rules) []analysis.Diagnostic {
	var diagnostics []analysis.Diagnostic

	collect := func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) }

	// Stage 1: Collect markers and builder types
	idx, decls := index.New(ctx, p, rules)

	if r.Behavior.Enabled(config.ReportDeclarations) {
		diagnostics = append(diagnostics, report.Declarations(decls)...)
	}

	resolver := obligation.Resolver{Index: idx}
	opts := report.Options{Prefix: r.Prefix, Behavior: r.Behavior}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(collect, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.DocHasNoLint(file.Doc) {
			continue
		}

		// Stage 2: Reconstruct call chains
		extractor := chain.Extractor{Info: p.TypesInfo, Index: idx, File: currentFile}
		chains := extractor.Extract(ctx, f)

		// Stage 3: Resolve obligations
		obligations := resolver.ResolveAll(ctx, chains)

		// Stage 4: Generate diagnostics
		diagnostics = append(diagnostics, report.Diagnostics(ctx, obligations, opts)...)
	}

	return diagnostics
}
