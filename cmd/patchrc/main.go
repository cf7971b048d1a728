package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/walteh/patchrc/cmd/patchrc/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "patchrc",
		Short: "A tool for applying idempotent text patches to source files",
		Long: `patchrc applies ordered find-and-replace rule sets to source files,
writing a file back only when the rules actually changed its content.
Batches come from a config file or from a built-in named migration;
re-running a batch on an already-patched tree reports no changes.`,
		SilenceUsage: true,
	}

	addRootFlags(rootCmd)

	// Flags are parsed by Execute, so logging and options resolve lazily.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		setupLogging()
		return nil
	}

	rootCmd.AddCommand(
		commands.NewApplyCmd(newRootOpts),
		commands.NewCheckCmd(newRootOpts),
		commands.NewMigrationsCmd(),
	)

	setupLogging()
	ctx := log.Logger.WithContext(context.Background())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
