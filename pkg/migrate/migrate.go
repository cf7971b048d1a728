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

// Package migrate holds the one-shot patch batches as data: each migration
// names the point-in-time fix it applies and builds its job list against a
// project root. Migrations are not composable with each other — some
// deliberately reverse what an earlier one did — so exactly one is applied
// per invocation.
package migrate

import (
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/patchrc/pkg/rewrite"
)

// 📦 Migration is one named, self-contained patch batch.
type Migration struct {
	// Name identifies the migration on the command line.
	Name string

	// Description says what defect the migration patches.
	Description string

	// Jobs builds the concrete job list for a project root.
	Jobs func(root string) ([]rewrite.Job, error)
}

var registry = map[string]Migration{}

// 📝 Register registers a migration under its name.
func Register(m Migration) {
	registry[m.Name] = m
}

// 🎯 Lookup returns the migration registered under name.
func Lookup(name string) (Migration, error) {
	m, ok := registry[name]
	if !ok {
		return Migration{}, errors.Errorf("unknown migration %q", name)
	}
	return m, nil
}

// 📜 All returns every registered migration, sorted by name.
func All() []Migration {
	out := make([]Migration, 0, len(registry))
	for _, m := range registry {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// challengeDir is where the challenge components live, relative to the
// project root.
const challengeDir = "src/components/challenges"

// 🔍 challengeFiles lists the .tsx challenge components under root,
// skipping the given basenames.
func challengeFiles(root string, skip ...string) ([]string, error) {
	pattern := filepath.ToSlash(filepath.Join(root, challengeDir, "*.tsx"))
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, errors.Errorf("listing challenge files: %w", err)
	}
	if len(matches) == 0 {
		return nil, errors.Errorf("no challenge files under %s", filepath.Join(root, challengeDir))
	}
	sort.Strings(matches)

	skipped := map[string]bool{}
	for _, name := range skip {
		skipped[name] = true
	}

	var files []string
	for _, match := range matches {
		if !skipped[filepath.Base(match)] {
			files = append(files, match)
		}
	}
	return files, nil
}
