package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/patchrc/cmd/patchrc/opts"
	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/migrate"
	"github.com/walteh/patchrc/pkg/rewrite"
	"github.com/walteh/patchrc/pkg/status"
)

// OptsFactory builds root options after flags have been parsed.
type OptsFactory func(ctx context.Context) (*opts.RootOpts, error)

// resolveJobs builds the job list from exactly one source: a config file or
// a named built-in migration.
func resolveJobs(ctx context.Context, o *opts.RootOpts, configFile, migration string) ([]rewrite.Job, string, error) {
	switch {
	case configFile != "" && migration != "":
		return nil, "", errors.Errorf("--config and --migration are mutually exclusive")

	case configFile != "":
		cfg, err := config.Load(ctx, configFile)
		if err != nil {
			return nil, "", errors.Errorf("loading config: %w", err)
		}
		if cfg.Root == "." {
			cfg.Root = o.Root
		}
		jobs, err := config.ExpandJobs(cfg)
		if err != nil {
			return nil, "", errors.Errorf("expanding jobs: %w", err)
		}
		return jobs, "batch " + configFile, nil

	case migration != "":
		m, err := migrate.Lookup(migration)
		if err != nil {
			return nil, "", err
		}
		jobs, err := m.Jobs(o.Root)
		if err != nil {
			return nil, "", errors.Errorf("building migration jobs: %w", err)
		}
		return jobs, "migration " + m.Name, nil

	default:
		return nil, "", errors.Errorf("one of --config or --migration is required")
	}
}

// record converts a runner result into a status record.
func record(result rewrite.Result) status.Record {
	r := status.Record{
		Target:       result.Target,
		Replacements: result.Replacements,
	}
	switch {
	case result.Err != nil:
		r.Outcome = status.OutcomeFailed
		r.Err = result.Err
	case result.Changed:
		r.Outcome = status.OutcomeFixed
	default:
		r.Outcome = status.OutcomeUnchanged
	}
	return r
}

// runBatch executes the batch, tracking every outcome in a reporter.
func runBatch(ctx context.Context, o *opts.RootOpts, jobs []rewrite.Job, dryRun bool) *status.Reporter {
	runner := rewrite.NewRunner(rewrite.Options{
		Async:   o.Async,
		Workers: o.Workers,
		DryRun:  dryRun,
	})

	reporter := status.NewReporter(zerolog.Ctx(ctx))
	reporter.StartBatch(ctx, len(jobs))
	for _, result := range runner.RunBatch(ctx, jobs) {
		reporter.Track(ctx, record(result))
	}
	return reporter
}

// applyJobs runs the batch for real with operator-facing pterm output.
func applyJobs(ctx context.Context, o *opts.RootOpts, jobs []rewrite.Job, description string) (fixed, unchanged, failed int) {
	o.UserLogger.LogBatchStart(description, len(jobs))

	reporter := runBatch(ctx, o, jobs, false)
	for _, r := range reporter.Records() {
		o.UserLogger.LogRecord(r)
	}

	fixed, unchanged, failed = reporter.Summary()
	o.UserLogger.LogSummary(fixed, unchanged, failed)
	return fixed, unchanged, failed
}

// checkJobs dry-runs the batch with plain line output for CI logs.
func checkJobs(ctx context.Context, o *opts.RootOpts, jobs []rewrite.Job, out io.Writer) (fixed, unchanged, failed int) {
	formatter := status.NewFormatter()

	reporter := runBatch(ctx, o, jobs, true)
	for _, r := range reporter.Records() {
		fmt.Fprintln(out, formatter.FormatRecord(r))
	}

	fixed, unchanged, failed = reporter.Summary()
	fmt.Fprintln(out, formatter.FormatSummary(fixed, unchanged, failed))
	return fixed, unchanged, failed
}
