package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(newOpts OptsFactory) *cobra.Command {
	var (
		configFile string
		migration  string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report which targets a batch would change, without writing",
		Long: `Check runs the same job list as apply but never writes: every rule
set is folded over its target in memory and the would-change outcome is
reported per job. The command exits non-zero when any target would change
or any job failed, so it can gate CI on a fully-patched tree.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "check").Logger().WithContext(ctx)

			o, err := newOpts(ctx)
			if err != nil {
				return err
			}

			jobs, _, err := resolveJobs(ctx, o, configFile, migration)
			if err != nil {
				return err
			}

			fixed, _, failed := checkJobs(ctx, o, jobs, cmd.OutOrStdout())
			if failed > 0 {
				return errors.Errorf("%d of %d jobs failed", failed, len(jobs))
			}
			if fixed > 0 {
				return errors.Errorf("%d of %d targets would change", fixed, len(jobs))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "batch config file (.hcl, .yaml, .json)")
	cmd.Flags().StringVarP(&migration, "migration", "m", "", "built-in migration name")

	return cmd
}
