package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_HCL(t *testing.T) {
	path := writeConfig(t, "batch.hcl", `
root = "src"

job "unused-props" {
  target  = "components/challenges/*.tsx"
  exclude = ["**/ChallengeBase.tsx"]

  replace {
    pattern = "const { onComplete, timeLimit, } = props;"
    with    = "const { onComplete, } = props;"
  }

  replace {
    regex = "startTimeRef\\.current"
    with  = "startTime"
  }
}
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "src", cfg.Root)
	require.Len(t, cfg.Jobs, 1)

	job := cfg.Jobs[0]
	assert.Equal(t, "unused-props", job.Name)
	assert.Equal(t, "components/challenges/*.tsx", job.Target)
	assert.Equal(t, []string{"**/ChallengeBase.tsx"}, job.Exclude)
	require.Len(t, job.Replace, 2)
	assert.False(t, job.Replace[0].Rule().Regex)
	assert.True(t, job.Replace[1].Rule().Regex)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "batch.yaml", `
root: src
jobs:
  - name: remove-starttime
    target: components/GameContainer.tsx
    replace:
      - regex: '\s*const startTimeRef = useRef<number>\(Date\.now\(\)\);\n'
        with: "\n"
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, cfg.Jobs, 1)
	assert.Equal(t, "remove-starttime", cfg.Jobs[0].Name)
	require.Len(t, cfg.Jobs[0].Replace, 1)
	assert.True(t, cfg.Jobs[0].Replace[0].Rule().Regex)
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, "batch.json", `{
  "root": "src",
  "jobs": [
    {
      "name": "rename",
      "target": "utils/debug.ts",
      "replace": [
        {"pattern": "} catch (e) {", "with": "} catch (_) {"}
      ]
    }
  ]
}`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, cfg.Jobs, 1)
	assert.Equal(t, "utils/debug.ts", cfg.Jobs[0].Target)
}

func TestLoad_UnknownExtension(t *testing.T) {
	path := writeConfig(t, "batch.toml", `anything = true`)

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parser found")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantError string
	}{
		{
			name: "valid",
			cfg: Config{
				Jobs: []JobConfig{{
					Name:    "ok",
					Target:  "a.txt",
					Replace: []Replace{{Pattern: "a", With: "b"}},
				}},
			},
		},
		{
			name:      "no_jobs",
			cfg:       Config{},
			wantError: "at least one job",
		},
		{
			name: "missing_target",
			cfg: Config{
				Jobs: []JobConfig{{Name: "bad", Replace: []Replace{{Pattern: "a", With: "b"}}}},
			},
			wantError: "target is required",
		},
		{
			name: "no_rules",
			cfg: Config{
				Jobs: []JobConfig{{Name: "bad", Target: "a.txt"}},
			},
			wantError: "at least one replace rule",
		},
		{
			name: "pattern_and_regex",
			cfg: Config{
				Jobs: []JobConfig{{
					Name:    "bad",
					Target:  "a.txt",
					Replace: []Replace{{Pattern: "a", Regex: "a", With: "b"}},
				}},
			},
			wantError: "mutually exclusive",
		},
		{
			name: "neither_pattern_nor_regex",
			cfg: Config{
				Jobs: []JobConfig{{
					Name:    "bad",
					Target:  "a.txt",
					Replace: []Replace{{With: "b"}},
				}},
			},
			wantError: "one of pattern or regex",
		},
		{
			name: "malformed_regex_rejected_before_any_io",
			cfg: Config{
				Jobs: []JobConfig{{
					Name:    "bad",
					Target:  "a.txt",
					Replace: []Replace{{Regex: "broken(", With: "b"}},
				}},
			},
			wantError: "invalid pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantError == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestExpandJobs(t *testing.T) {
	root := t.TempDir()
	challenges := filepath.Join(root, "components", "challenges")
	require.NoError(t, os.MkdirAll(challenges, 0755))
	for _, name := range []string{"14_ClickPrecision.tsx", "17_SimonSays.tsx", "ChallengeBase.tsx", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(challenges, name), []byte("content"), 0644))
	}

	cfg := &Config{
		Root: root,
		Jobs: []JobConfig{{
			Name:    "unused-props",
			Target:  "components/challenges/*.tsx",
			Exclude: []string{"**/ChallengeBase.tsx"},
			Replace: []Replace{{Pattern: "a", With: "b"}},
		}},
	}
	require.NoError(t, cfg.Validate())

	jobs, err := ExpandJobs(cfg)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, filepath.Join(challenges, "14_ClickPrecision.tsx"), jobs[0].Target)
	assert.Equal(t, filepath.Join(challenges, "17_SimonSays.tsx"), jobs[1].Target)
	for _, job := range jobs {
		assert.Equal(t, "unused-props", job.Name)
		require.Len(t, job.Rules, 1)
	}
}

func TestExpandJobs_LiteralTargetPassesThrough(t *testing.T) {
	cfg := &Config{
		Root: "src",
		Jobs: []JobConfig{{
			Name:    "one-off",
			Target:  "components/GameContainer.tsx",
			Replace: []Replace{{Pattern: "a", With: "b"}},
		}},
	}
	require.NoError(t, cfg.Validate())

	jobs, err := ExpandJobs(cfg)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, filepath.Join("src", "components", "GameContainer.tsx"), jobs[0].Target)
}

func TestExpandJobs_RejectsSharedTargets(t *testing.T) {
	cfg := &Config{
		Jobs: []JobConfig{
			{Name: "first", Target: "a.txt", Replace: []Replace{{Pattern: "a", With: "b"}}},
			{Name: "second", Target: "a.txt", Replace: []Replace{{Pattern: "b", With: "c"}}},
		},
	}
	require.NoError(t, cfg.Validate())

	_, err := ExpandJobs(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both target")
}
