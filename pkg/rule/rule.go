// Copyright 2025 walteh LLC
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

// Package rule implements the ordered find-and-replace engine that every
// patch job is built on: a rule set is folded over text left to right, each
// rule seeing the previous rule's output.
package rule

import (
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ❌ ErrPattern marks a malformed matcher, detected at compile time before
// any file is touched.
var ErrPattern = errors.Base("invalid pattern")

// 🔄 Rule is one atomic find-and-substitute step.
type Rule struct {
	// Pattern is the text to find. Treated as a literal substring unless
	// Regex is set.
	Pattern string

	// Regex marks Pattern as an RE2 regular expression.
	Regex bool

	// With is the replacement text. Regex rules expand capture references
	// ($1, ${name}) in it.
	With string

	// WithFunc, when set, computes the replacement from the matched text
	// and takes precedence over With.
	WithFunc func(match string) string

	// First restricts the rule to the first occurrence. The default is
	// every occurrence in the text.
	First bool
}

// 🔧 Compiled is a validated rule ready to apply.
type Compiled struct {
	rule Rule
	re   *regexp.Regexp // nil for literal rules
}

// 🏭 Compile validates a single rule.
func (r Rule) Compile() (Compiled, error) {
	if r.Pattern == "" {
		return Compiled{}, errors.Errorf("%w: pattern is empty", ErrPattern)
	}

	if !r.Regex {
		return Compiled{rule: r}, nil
	}

	re, err := regexp.Compile(r.Pattern)
	if err != nil {
		return Compiled{}, errors.Errorf("%w: compiling %q: %v", ErrPattern, r.Pattern, err)
	}

	// A pattern that matches the empty string would substitute between
	// every character, which is never what a patch rule means.
	if re.MatchString("") {
		return Compiled{}, errors.Errorf("%w: %q matches the empty string", ErrPattern, r.Pattern)
	}

	return Compiled{rule: r, re: re}, nil
}

// 🏭 Compile validates a whole rule set, failing on the first bad rule.
func Compile(rules []Rule) ([]Compiled, error) {
	compiled := make([]Compiled, 0, len(rules))
	for i, r := range rules {
		c, err := r.Compile()
		if err != nil {
			return nil, errors.Errorf("rule %d: %w", i, err)
		}
		compiled = append(compiled, c)
	}
	return compiled, nil
}

// 📊 Result describes one application of a rule set to a piece of text.
type Result struct {
	Text         string // text after the full fold
	Changed      bool   // whether Text differs from the input
	Replacements int    // total substitutions made across all rules
}

// 🎯 Apply folds the rule set over text in order. A rule that matches
// nothing is a no-op, not an error. An empty rule set returns the input
// unchanged. The operation is pure: no I/O, deterministic output.
func Apply(text string, rules []Compiled) Result {
	result := Result{Text: text}

	current := text
	for _, c := range rules {
		next, n := c.apply(current)
		if next != current {
			result.Replacements += n
		}
		current = next
	}

	result.Text = current
	result.Changed = current != text
	return result
}

// apply runs one compiled rule, returning the new text and how many
// occurrences were substituted.
func (c Compiled) apply(text string) (string, int) {
	if c.re != nil {
		return c.applyRegex(text)
	}
	return c.applyLiteral(text)
}

func (c Compiled) applyLiteral(text string) (string, int) {
	count := strings.Count(text, c.rule.Pattern)
	if count == 0 {
		return text, 0
	}
	if c.rule.First {
		count = 1
	}

	replacement := c.rule.With
	if c.rule.WithFunc != nil {
		replacement = c.rule.WithFunc(c.rule.Pattern)
	}

	limit := -1
	if c.rule.First {
		limit = 1
	}
	return strings.Replace(text, c.rule.Pattern, replacement, limit), count
}

func (c Compiled) applyRegex(text string) (string, int) {
	if c.rule.First {
		loc := c.re.FindStringSubmatchIndex(text)
		if loc == nil {
			return text, 0
		}
		var replacement []byte
		if c.rule.WithFunc != nil {
			replacement = []byte(c.rule.WithFunc(text[loc[0]:loc[1]]))
		} else {
			replacement = c.re.ExpandString(nil, c.rule.With, text, loc)
		}
		return text[:loc[0]] + string(replacement) + text[loc[1]:], 1
	}

	count := len(c.re.FindAllStringIndex(text, -1))
	if count == 0 {
		return text, 0
	}

	if c.rule.WithFunc != nil {
		return c.re.ReplaceAllStringFunc(text, c.rule.WithFunc), count
	}
	return c.re.ReplaceAllString(text, c.rule.With), count
}
