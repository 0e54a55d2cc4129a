package extract

import (
	"context"
	"errors"

	"census-etl/internal/domain/entity"
	"census-etl/internal/domain/model"
)

// ErrMissingCredential is returned before any request is made when no census API key is configured.
var ErrMissingCredential = errors.New("census api key is not configured")

//go:generate mockgen -source=usecase.go -destination=mocks/usecase_mock.go -package=mocks

type UseCase interface {
	// ExtractAllCitiesPopulations returns every place above the population threshold,
	// ordered by jurisdiction code and then by API order
	ExtractAllCitiesPopulations(ctx context.Context) ([]entity.CityPopulation, error)

	// Extract runs the same pass and also reports the jurisdictions that contributed nothing
	Extract(ctx context.Context) (*model.ExtractionResult, error)
}
