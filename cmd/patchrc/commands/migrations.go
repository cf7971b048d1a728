package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/walteh/patchrc/pkg/migrate"
)

// NewMigrationsCmd creates a new migrations command
func NewMigrationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrations",
		Short: "List the built-in migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range migrate.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", m.Name, m.Description)
			}
			return nil
		},
	}

	return cmd
}
