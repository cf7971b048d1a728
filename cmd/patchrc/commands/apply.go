package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(newOpts OptsFactory) *cobra.Command {
	var (
		configFile string
		migration  string
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a patch batch to the project tree",
		Long: `Apply runs a batch of rewrite jobs against the project root.
It will:
1. Build the job list from --config or --migration
2. Run every job, reading each target and folding its rules over the content
3. Write a target back only when its content actually changed
4. Report a per-job line and a final summary

A job whose target is missing or unwritable is reported and the batch
continues; the command exits non-zero if any job failed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "apply").Logger().WithContext(ctx)

			o, err := newOpts(ctx)
			if err != nil {
				return err
			}

			jobs, description, err := resolveJobs(ctx, o, configFile, migration)
			if err != nil {
				return err
			}

			_, _, failed := applyJobs(ctx, o, jobs, description)
			if failed > 0 {
				return errors.Errorf("%d of %d jobs failed", failed, len(jobs))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "batch config file (.hcl, .yaml, .json)")
	cmd.Flags().StringVarP(&migration, "migration", "m", "", "built-in migration name")

	return cmd
}
