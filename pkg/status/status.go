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

// Package status tracks per-job outcomes and renders them for the operator.
package status

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// 📊 Outcome is the reported state of one job.
type Outcome int

const (
	OutcomeUnknown   Outcome = iota
	OutcomeFixed             // target was rewritten
	OutcomeUnchanged         // rules matched nothing new
	OutcomeFailed            // target unreadable/unwritable or rules invalid
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeFixed:
		return "fixed"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 Record is one job's reported outcome.
type Record struct {
	Target       string  // target file path
	Outcome      Outcome // what happened
	Replacements int     // substitutions made
	Err          error   // set when Outcome is OutcomeFailed
}

// 📈 Reporter collects job records and tracks batch progress.
type Reporter struct {
	logger *zerolog.Logger

	mu      sync.RWMutex
	records []Record

	total     int
	processed int
}

// 🏭 NewReporter creates a new reporter.
func NewReporter(logger *zerolog.Logger) *Reporter {
	return &Reporter{
		logger: logger,
	}
}

// 🎬 StartBatch resets progress tracking for a new batch.
func (r *Reporter) StartBatch(ctx context.Context, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = nil
	r.total = total
	r.processed = 0

	r.logger.Debug().Int("total", total).Msg("starting batch")
}

// 📝 Track records one job's outcome and advances progress.
func (r *Reporter) Track(ctx context.Context, record Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, record)
	r.processed++

	event := r.logger.Info()
	if record.Outcome == OutcomeFailed {
		event = r.logger.Error().Err(record.Err)
	}
	event.
		Str("target", record.Target).
		Str("outcome", record.Outcome.String()).
		Int("replacements", record.Replacements).
		Msg("job finished")
}

// 📜 Records returns the collected records in tracking order.
func (r *Reporter) Records() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// 📊 Progress returns processed and total counts.
func (r *Reporter) Progress() (processed, total int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.processed, r.total
}

// 🧮 Summary tallies records by outcome.
func (r *Reporter) Summary() (fixed, unchanged, failed int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.records {
		switch record.Outcome {
		case OutcomeFixed:
			fixed++
		case OutcomeFailed:
			failed++
		case OutcomeUnchanged:
			unchanged++
		}
	}
	return fixed, unchanged, failed
}
