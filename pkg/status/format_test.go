package status

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

// 🧪 TestFormatter_FormatRecord tests per-job line rendering
func TestFormatter_FormatRecord(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name   string
		record Record
		want   string
	}{
		{
			name:   "fixed",
			record: Record{Target: "src/a.tsx", Outcome: OutcomeFixed, Replacements: 3},
			want:   "✨ Fixed src/a.tsx (3 replacements)",
		},
		{
			name:   "unchanged",
			record: Record{Target: "src/b.tsx", Outcome: OutcomeUnchanged},
			want:   "👍 No changes src/b.tsx",
		},
		{
			name:   "failed",
			record: Record{Target: "src/c.tsx", Outcome: OutcomeFailed, Err: errors.New("no such file")},
			want:   "❌ Failed src/c.tsx: no such file",
		},
	}

	formatter := NewFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatter.FormatRecord(tt.record))
		})
	}
}

func TestFormatter_FormatProgress(t *testing.T) {
	formatter := NewFormatter()

	assert.Equal(t, "⏳ Progress: 1/4 (25%)", formatter.FormatProgress(1, 4))
	assert.Equal(t, "✅ Progress: 4/4 (100%)", formatter.FormatProgress(4, 4))
	assert.Equal(t, "✅ Progress: 0/0 (0%)", formatter.FormatProgress(0, 0))
}

func TestFormatter_FormatSummary(t *testing.T) {
	color.NoColor = true
	formatter := NewFormatter()

	assert.Equal(t, "✅ Done: 2 fixed, 1 unchanged", formatter.FormatSummary(2, 1, 0))
	assert.Equal(t, "❌ Done: 2 fixed, 1 unchanged, 1 failed", formatter.FormatSummary(2, 1, 1))
}
