package status

import (
	"fmt"

	"github.com/fatih/color"
)

// 🎨 Formatter renders records and progress as console lines.
type Formatter struct{}

// 🏭 NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatRecord formats one job's outcome line
func (f *Formatter) FormatRecord(record Record) string {
	switch record.Outcome {
	case OutcomeFixed:
		return fmt.Sprintf("✨ %s %s (%d replacements)",
			color.New(color.FgGreen).Sprint("Fixed"), record.Target, record.Replacements)
	case OutcomeFailed:
		return fmt.Sprintf("❌ %s %s: %v",
			color.New(color.FgRed).Sprint("Failed"), record.Target, record.Err)
	default:
		return fmt.Sprintf("👍 %s %s",
			color.New(color.FgYellow).Sprint("No changes"), record.Target)
	}
}

// FormatProgress formats a progress message with percentage
func (f *Formatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatSummary formats the end-of-batch tally line
func (f *Formatter) FormatSummary(fixed, unchanged, failed int) string {
	if failed > 0 {
		return fmt.Sprintf("❌ Done: %d fixed, %d unchanged, %s",
			fixed, unchanged, color.New(color.FgRed).Sprintf("%d failed", failed))
	}
	return fmt.Sprintf("✅ Done: %d fixed, %d unchanged", fixed, unchanged)
}
