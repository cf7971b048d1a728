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

package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/patchrc/pkg/rule"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Replace represents one find-and-substitute rule in a job
type Replace struct {
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty" hcl:"pattern,optional"` // Literal substring to find
	Regex   string `json:"regex,omitempty" yaml:"regex,omitempty" hcl:"regex,optional"`       // RE2 regular expression to find
	With    string `json:"with" yaml:"with" hcl:"with"`                                       // Replacement text ($1 expansion for regex)
	First   bool   `json:"first,omitempty" yaml:"first,omitempty" hcl:"first,optional"`       // First occurrence only
}

// 🎯 Rule converts the declaration to an engine rule.
func (r Replace) Rule() rule.Rule {
	if r.Regex != "" {
		return rule.Rule{Pattern: r.Regex, Regex: true, With: r.With, First: r.First}
	}
	return rule.Rule{Pattern: r.Pattern, With: r.With, First: r.First}
}

// 📦 JobConfig declares one target (path or glob) and its ordered rules
type JobConfig struct {
	Name    string    `json:"name" yaml:"name" hcl:"name,label"`                               // Display name
	Target  string    `json:"target" yaml:"target" hcl:"target"`                               // Path or doublestar glob, relative to root
	Exclude []string  `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"` // Globs to skip when Target is a glob
	Replace []Replace `json:"replace" yaml:"replace" hcl:"replace,block"`                      // Ordered rules
}

// 📚 Config represents a complete patch batch
type Config struct {
	Root string      `json:"root,omitempty" yaml:"root,omitempty" hcl:"root,optional"` // Base directory for targets
	Jobs []JobConfig `json:"jobs" yaml:"jobs" hcl:"job,block"`                         // Jobs in execution order
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if len(cfg.Jobs) == 0 {
		return errors.Errorf("at least one job is required")
	}

	for i, job := range cfg.Jobs {
		if job.Target == "" {
			return errors.Errorf("job %d (%s): target is required", i, job.Name)
		}
		if len(job.Replace) == 0 {
			return errors.Errorf("job %d (%s): at least one replace rule is required", i, job.Name)
		}
		for j, r := range job.Replace {
			if r.Pattern == "" && r.Regex == "" {
				return errors.Errorf("job %d (%s): replace %d: one of pattern or regex is required", i, job.Name, j)
			}
			if r.Pattern != "" && r.Regex != "" {
				return errors.Errorf("job %d (%s): replace %d: pattern and regex are mutually exclusive", i, job.Name, j)
			}
		}
	}

	// Rule compilation failures are configuration defects; catch them here
	// instead of at run time.
	for i, job := range cfg.Jobs {
		for j, r := range job.Replace {
			if _, err := r.Rule().Compile(); err != nil {
				return errors.Errorf("job %d (%s): replace %d: %w", i, job.Name, j, err)
			}
		}
	}

	if cfg.Root == "" {
		cfg.Root = "."
	}
	cfg.Root = filepath.Clean(cfg.Root)

	return nil
}
