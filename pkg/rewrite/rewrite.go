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

package rewrite

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/patchrc/pkg/rule"
)

// 🏃 Runner executes batches of jobs.
type Runner struct {
	async   bool
	workers int
	dryRun  bool
}

// 🔧 Options configures a Runner.
type Options struct {
	// Async runs jobs concurrently. Safe because batch targets are
	// disjoint by precondition.
	Async bool

	// Workers bounds concurrency in async mode. Zero means 4.
	Workers int

	// DryRun applies rules in memory and reports would-change without
	// ever writing.
	DryRun bool
}

// 🏭 NewRunner creates a new runner.
func NewRunner(opts Options) *Runner {
	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}
	return &Runner{
		async:   opts.Async,
		workers: workers,
		dryRun:  opts.DryRun,
	}
}

// 🏃 RunJob executes a single job: validate rules, read, transform, and
// write back only on change. Rule validation happens before any I/O so a
// configuration defect never touches the target.
func (r *Runner) RunJob(ctx context.Context, job Job) Result {
	logger := zerolog.Ctx(ctx)
	result := Result{Target: job.Target}

	compiled, err := rule.Compile(job.Rules)
	if err != nil {
		result.Err = errors.Errorf("job %s: %w", job.DisplayName(), err)
		return result
	}

	content, mode, err := readTarget(job.Target)
	if err != nil {
		result.Err = err
		return result
	}

	applied := rule.Apply(content, compiled)
	result.Changed = applied.Changed
	result.Replacements = applied.Replacements

	if !applied.Changed {
		logger.Debug().Str("target", job.Target).Msg("no changes, skipping write")
		return result
	}

	if r.dryRun {
		logger.Debug().Str("target", job.Target).Int("replacements", applied.Replacements).Msg("dry run, skipping write")
		return result
	}

	if err := writeTargetAtomic(job.Target, []byte(applied.Text), mode); err != nil {
		result.Err = err
		return result
	}

	logger.Debug().
		Str("target", job.Target).
		Int("replacements", applied.Replacements).
		Msg("rewrote target")
	return result
}

// 🏃 RunBatch executes every job regardless of sibling failures and returns
// results in job order. There is no retry: the rules are static text
// patterns, so a failed job fails the same way every time.
func (r *Runner) RunBatch(ctx context.Context, jobs []Job) []Result {
	if r.async {
		return r.runBatchAsync(ctx, jobs)
	}

	results := make([]Result, len(jobs))
	for i, job := range jobs {
		results[i] = r.RunJob(ctx, job)
	}
	return results
}

// ⚡ runBatchAsync fans jobs out over a bounded worker group. Jobs never
// share a target, so there is no ordering constraint between them.
func (r *Runner) runBatchAsync(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			results[i] = r.RunJob(ctx, job)
			return nil // failures live in the result, not the group
		})
	}

	_ = g.Wait()
	return results
}

// readTarget reads the whole file and remembers its mode for write-back.
func readTarget(path string) (string, os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", 0, errors.Errorf("%w: stat %s: %v", ErrResource, path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", 0, errors.Errorf("%w: reading %s: %v", ErrResource, path, err)
	}
	return string(content), info.Mode(), nil
}

// writeTargetAtomic replaces the file's content in one rename so a partial
// write is never observable.
func writeTargetAtomic(path string, content []byte, mode os.FileMode) error {
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, content, mode); err != nil {
		return errors.Errorf("%w: writing temp file for %s: %v", ErrResource, path, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return errors.Errorf("%w: replacing %s: %v", ErrResource, path, err)
	}
	return nil
}
