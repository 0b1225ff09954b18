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
	"log/slog"

	"fillmore-labs.com/endcheck/internal/config"
	"fillmore-labs.com/endcheck/internal/run"
)

// Option configures specific behavior of a [New] endcheck analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithDeclarations is an [Option] to report inconsistent endcheck directives.
func WithDeclarations(declarations bool) Option {
	return declarationsOption{declarations: declarations}
}

type declarationsOption struct{ declarations bool }

func (o declarationsOption) apply(r *run.Options) {
	r.Behavior.Set(config.ReportDeclarations, o.declarations)
}

func (o declarationsOption) LogAttr() slog.Attr {
	return slog.Bool("declarations", o.declarations)
}

// WithRelated is an [Option] to attach the discarding context to diagnostics.
func WithRelated(related bool) Option { return relatedOption{related: related} }

type relatedOption struct{ related bool }

func (o relatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.RelatedInformation, o.related)
}

func (o relatedOption) LogAttr() slog.Attr {
	return slog.Bool("related", o.related)
}

// WithRules is an [Option] to read markers from a TOML rules file.
//
// The file is read on every analysis pass, see [config.Rules] for the format.
func WithRules(path string) Option { return rulesOption{path: path} }

type rulesOption struct{ path string }

func (o rulesOption) apply(r *run.Options) {
	r.RulesFile = o.path
}

func (o rulesOption) LogAttr() slog.Attr {
	return slog.String("rules", o.path)
}

// WithTerminal is an [Option] to mark a method as terminal by its qualified name,
// e.g. "(example.com/dsl.Builder).Build".
func WithTerminal(name string) Option { return terminalOption{name: name} }

type terminalOption struct{ name string }

func (o terminalOption) apply(r *run.Options) {
	r.Rules.Terminals = append(r.Rules.Terminals, config.Rule{Func: o.name})
}

func (o terminalOption) LogAttr() slog.Attr {
	return slog.String("terminal", o.name)
}

// WithEntryPoint is an [Option] to mark a function as entry point by its qualified name,
// e.g. "example.com/dsl.New". A non-empty message replaces the default diagnostic.
func WithEntryPoint(name, message string) Option {
	return entryPointOption{name: name, message: message}
}

type entryPointOption struct{ name, message string }

func (o entryPointOption) apply(r *run.Options) {
	r.Rules.EntryPoints = append(r.Rules.EntryPoints, config.Rule{Func: o.name, Message: o.message})
}

func (o entryPointOption) LogAttr() slog.Attr {
	return slog.Group("entry-point", slog.String("func", o.name), slog.String("message", o.message))
}

// WithIgnore is an [Option] to suppress chains started by a function, given by its qualified name.
func WithIgnore(name string) Option { return ignoreOption{name: name} }

type ignoreOption struct{ name string }

func (o ignoreOption) apply(r *run.Options) {
	r.Rules.Ignored = append(r.Rules.Ignored, config.Rule{Func: o.name})
}

func (o ignoreOption) LogAttr() slog.Attr {
	return slog.String("ignore", o.name)
}

// WithDefaultMessage is an [Option] to replace the start of the default diagnostic message,
// "Method chain must end with".
func WithDefaultMessage(prefix string) Option { return defaultMessageOption{prefix: prefix} }

type defaultMessageOption struct{ prefix string }

func (o defaultMessageOption) apply(r *run.Options) {
	r.Prefix = o.prefix
}

func (o defaultMessageOption) LogAttr() slog.Attr {
	return slog.String("message-prefix", o.prefix)
}
