package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsCmd_ListsRegisteredMigrations(t *testing.T) {
	cmd := NewMigrationsCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	for _, name := range []string{"unused-props", "challenge-base-props", "date-now-usestate", "starttime-ref", "remove-starttime", "lint-cleanup"} {
		assert.Contains(t, out.String(), name)
	}
}
