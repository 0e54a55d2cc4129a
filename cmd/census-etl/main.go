package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"census-etl/internal/application/cli"
	"census-etl/internal/infra/container"
	"census-etl/pkg/log"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := cli.NewRootCommand(run).ExecuteContext(ctx)
	stop()
	log.Sync()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dryRun bool) error {
	components, err := container.Build(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize components: %w", err)
	}
	defer components.Close()

	execute := components.Pipeline.Run
	if dryRun {
		execute = components.Pipeline.DryRun
	}

	requestID := uuid.NewString()
	summary, err := execute(ctx, requestID)
	if err != nil {
		log.Error("Extraction run failed", zap.String("request_id", requestID), zap.Error(err))
		return err
	}

	log.Info("Extraction run summary",
		zap.String("request_id", summary.RequestID),
		zap.Int("jurisdictions", summary.Jurisdictions),
		zap.Int("failed_jurisdictions", len(summary.FailedJurisdictions)),
		zap.Int("skipped_rows", summary.SkippedRows),
		zap.Int("records_extracted", summary.RecordsExtracted),
		zap.Int64("records_loaded", summary.RecordsLoaded),
		zap.Bool("dry_run", summary.DryRun),
		zap.Duration("elapsed", summary.FinishedAt.Sub(summary.StartedAt)))
	return nil
}
