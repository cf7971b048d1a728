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

// Package rewrite runs patch jobs: read a target file, fold a rule set over
// its content, and write back only when something actually changed.
package rewrite

import (
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/patchrc/pkg/rule"
)

// ❌ ErrResource marks a target that could not be read or written.
var ErrResource = errors.Base("resource unavailable")

// 📦 Job pairs a target file with the ordered rule set to apply to it.
// Jobs are built right before execution and consumed once; two jobs in the
// same batch must never name the same target.
type Job struct {
	// Name is a short label for operator-facing output. Defaults to Target.
	Name string

	// Target is the path of the file to rewrite.
	Target string

	// Rules is the ordered rule set. Later rules see earlier rules' output.
	Rules []rule.Rule
}

// 📝 DisplayName returns the job's label for status lines.
func (j Job) DisplayName() string {
	if j.Name != "" {
		return j.Name
	}
	return j.Target
}

// 📊 Result reports the outcome of one job.
type Result struct {
	Target       string // path of the target file
	Changed      bool   // whether the file was rewritten
	Replacements int    // substitutions made across all rules
	Err          error  // ErrPattern or ErrResource derived failure, nil on success
}
