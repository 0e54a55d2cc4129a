package pipeline

import (
	"context"
	"fmt"
	"time"

	"census-etl/internal/domain/gateway/db"
	"census-etl/internal/domain/model"
	"census-etl/internal/domain/usecase/extract"
	"census-etl/pkg/log"
	"census-etl/pkg/msg"

	"go.uber.org/zap"
)

type pipelineUseCase struct {
	extractUseCase extract.UseCase
	dbGateway      db.PopulationGateway
	jurisdictions  int
	logger         log.Observer
	now            func() time.Time
}

func NewPipelineUseCase(extractUseCase extract.UseCase, dbGateway db.PopulationGateway, jurisdictions int, logger log.Observer) UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &pipelineUseCase{
		extractUseCase: extractUseCase,
		dbGateway:      dbGateway,
		jurisdictions:  jurisdictions,
		logger:         logger,
		now:            time.Now,
	}
}

func (uc *pipelineUseCase) Run(ctx context.Context, requestID string) (*model.RunSummary, error) {
	return uc.run(ctx, requestID, false)
}

func (uc *pipelineUseCase) DryRun(ctx context.Context, requestID string) (*model.RunSummary, error) {
	return uc.run(ctx, requestID, true)
}

func (uc *pipelineUseCase) run(ctx context.Context, requestID string, dryRun bool) (*model.RunSummary, error) {
	summary := &model.RunSummary{
		RequestID:     requestID,
		StartedAt:     uc.now().UTC(),
		Jurisdictions: uc.jurisdictions,
		DryRun:        dryRun,
	}
	uc.logger.Info(msg.GetMessage("pipeline.start", requestID), zap.String("request_id", requestID))

	result, err := uc.extractUseCase.Extract(ctx)
	if err != nil {
		uc.logger.Error(msg.GetMessage("pipeline.extract-failed", requestID),
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	summary.FailedJurisdictions = result.Failures
	summary.SkippedRows = result.SkippedRows
	summary.RecordsExtracted = len(result.Cities)

	if dryRun {
		uc.logger.Info(msg.GetMessage("pipeline.dry-run", requestID), zap.String("request_id", requestID))
	} else {
		loaded, err := uc.dbGateway.SaveAll(ctx, requestID, result.Cities)
		if err != nil {
			summary.FinishedAt = uc.now().UTC()
			uc.logger.Error(msg.GetMessage("pipeline.load-failed", requestID, len(result.Cities)),
				zap.String("request_id", requestID),
				zap.Int("records", len(result.Cities)),
				zap.Error(err))
			return summary, fmt.Errorf("load failed: %w", err)
		}
		summary.RecordsLoaded = loaded
	}

	summary.FinishedAt = uc.now().UTC()
	uc.logger.Info(msg.GetMessage("pipeline.end", requestID, summary.RecordsExtracted, summary.RecordsLoaded),
		zap.String("request_id", requestID),
		zap.Int("records_extracted", summary.RecordsExtracted),
		zap.Int64("records_loaded", summary.RecordsLoaded),
		zap.Int("failed_jurisdictions", len(summary.FailedJurisdictions)),
		zap.Duration("elapsed", summary.FinishedAt.Sub(summary.StartedAt)))

	return summary, nil
}
