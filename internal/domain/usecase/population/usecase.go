package population

import (
	"context"

	"census-etl/internal/domain/entity"
	"census-etl/internal/domain/model"
)

//go:generate mockgen -source=usecase.go -destination=mocks/usecase_mock.go -package=mocks

type UseCase interface {
	// FindAllCities returns a page of loaded cities, largest first, optionally within one state
	FindAllCities(ctx context.Context, page int, size int, stateCode string) (*model.Page[entity.CityPopulation], error)
}
