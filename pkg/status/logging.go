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

package status

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about job outcomes, with
// each line mirrored into zerolog for debugging.
type UserLogger struct {
	log zerolog.Logger
}

// 🎯 NewUserLogger creates a new user logger.
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogRecord logs one job outcome with appropriate prefix and color.
func (u *UserLogger) LogRecord(record Record) {
	switch record.Outcome {
	case OutcomeFixed:
		msg := fmt.Sprintf("Fixed %s (%d replacements)", record.Target, record.Replacements)
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"}).Println(msg)
		u.log.Info().Msg(msg)
	case OutcomeFailed:
		msg := fmt.Sprintf("Failed %s", record.Target)
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(msg)
		pterm.Error.Println(record.Err)
		u.log.Error().Err(record.Err).Msg(msg)
	default:
		msg := fmt.Sprintf("No changes %s", record.Target)
		pterm.Info.WithPrefix(pterm.Prefix{Text: "👍"}).Println(msg)
		u.log.Info().Msg(msg)
	}
}

// 📊 LogBatchStart announces a batch to the operator.
func (u *UserLogger) LogBatchStart(description string, total int) {
	msg := fmt.Sprintf("%s (%d jobs)", description, total)
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).Println(msg)
	u.log.Info().Int("total", total).Msg(description)
}

// ✅ LogSummary reports the final tally.
func (u *UserLogger) LogSummary(fixed, unchanged, failed int) {
	msg := fmt.Sprintf("%d fixed, %d unchanged, %d failed", fixed, unchanged, failed)
	if failed > 0 {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(msg)
		u.log.Warn().Msg(msg)
	} else {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
		u.log.Info().Msg(msg)
	}
}
