package pipeline

import (
	"context"

	"census-etl/internal/domain/model"
)

//go:generate mockgen -source=usecase.go -destination=mocks/usecase_mock.go -package=mocks

type UseCase interface {
	// Run extracts every jurisdiction and loads the result into the warehouse
	Run(ctx context.Context, requestID string) (*model.RunSummary, error)

	// DryRun extracts without loading
	DryRun(ctx context.Context, requestID string) (*model.RunSummary, error)
}
