package config

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/patchrc/pkg/rewrite"
)

// 🔍 isGlob reports whether the target must be expanded before execution.
func isGlob(target string) bool {
	return strings.ContainsAny(target, "*?[{")
}

// 🎯 ExpandJobs turns job declarations into concrete per-file jobs. Glob
// targets expand against the config root; literal targets pass through even
// when the file is missing, so the read failure surfaces at run time. Two
// declarations resolving to the same file is a configuration defect: jobs
// in one batch must own disjoint targets.
func ExpandJobs(cfg *Config) ([]rewrite.Job, error) {
	var jobs []rewrite.Job
	seen := map[string]string{} // target -> job name that claimed it

	for _, jc := range cfg.Jobs {
		targets, err := expandTarget(cfg.Root, jc)
		if err != nil {
			return nil, errors.Errorf("job %s: %w", jc.Name, err)
		}

		for _, target := range targets {
			if prev, ok := seen[target]; ok {
				return nil, errors.Errorf("jobs %s and %s both target %s", prev, jc.Name, target)
			}
			seen[target] = jc.Name

			job := rewrite.Job{
				Name:   jc.Name,
				Target: target,
			}
			for _, r := range jc.Replace {
				job.Rules = append(job.Rules, r.Rule())
			}
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}

// expandTarget resolves one declaration to its target paths.
func expandTarget(root string, jc JobConfig) ([]string, error) {
	if !isGlob(jc.Target) {
		return []string{filepath.Join(root, jc.Target)}, nil
	}

	pattern := filepath.ToSlash(filepath.Join(root, jc.Target))
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, errors.Errorf("expanding glob %q: %w", jc.Target, err)
	}
	sort.Strings(matches)

	var targets []string
	for _, match := range matches {
		rel, err := filepath.Rel(root, match)
		if err != nil {
			return nil, errors.Errorf("relativizing %q: %w", match, err)
		}

		excluded, err := matchesAny(jc.Exclude, filepath.ToSlash(rel))
		if err != nil {
			return nil, err
		}
		if !excluded {
			targets = append(targets, match)
		}
	}
	return targets, nil
}

func matchesAny(patterns []string, path string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, errors.Errorf("matching exclude %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
