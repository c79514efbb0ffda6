package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"prmetrics/internal/app/config"
	"prmetrics/internal/domain"
	"prmetrics/internal/domain/report"
	"prmetrics/internal/infrastructure/async"
	"prmetrics/internal/infrastructure/csvreport"
	"prmetrics/internal/infrastructure/github"
	"prmetrics/internal/infrastructure/logging"
	"prmetrics/internal/infrastructure/teamfile"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)

		code := 1
		var de *domain.DomainError
		if errors.As(err, &de) && de.ExitCode != 0 {
			code = de.ExitCode
		}
		stop()
		os.Exit(code)
	}
}

func newRootCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
		teamsFile string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:           "prmetrics",
		Short:         "Generate a per-team pull-request metrics CSV report",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), startDate, endDate, teamsFile, outputDir)
		},
	}

	cmd.Flags().StringVar(&startDate, "start-date", "", "first day of the reporting period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "last day of the reporting period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&teamsFile, "teams-file", "", "path to the team mapping JSON (default from TEAMS_FILE or teams.json)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for the CSV report (default from OUTPUT_DIR or output)")
	_ = cmd.MarkFlagRequired("start-date")
	_ = cmd.MarkFlagRequired("end-date")

	return cmd
}

func run(ctx context.Context, startDate, endDate, teamsFile, outputDir string) error {
	// Date validation happens before any config or network work.
	period, err := report.ParsePeriod(startDate, endDate)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if teamsFile != "" {
		cfg.TeamsFile = teamsFile
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	log, err := logging.NewLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	client, err := github.NewClient(cfg.Token, cfg.RepoOwner, cfg.RepoName, cfg.APIBaseURL)
	if err != nil {
		return err
	}

	bus := async.NewAsyncEventBus(ctx, 2, log)
	defer bus.Close()

	svc := report.NewService(
		teamfile.NewLoader(cfg.TeamsFile),
		client,
		csvreport.NewWriter(cfg.OutputDir),
		bus,
		log,
	)

	summary, err := svc.Generate(ctx, period)
	if err != nil {
		return err
	}

	log.Info("report written",
		zap.String("path", summary.Path),
		zap.Int("teams", len(summary.Rows)),
		zap.Int("prs_in_period", summary.InPeriod),
		zap.Int("unassigned_authors", len(summary.Unassigned)),
	)

	// The path on stdout is the machine-readable result of the run.
	fmt.Println(summary.Path)
	return nil
}
