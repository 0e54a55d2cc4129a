package population

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"census-etl/internal/domain/entity"
	"census-etl/internal/domain/gateway/db"
	"census-etl/internal/domain/model"
)

// ErrUnknownState is returned when the state filter is not one of the extracted jurisdictions.
var ErrUnknownState = errors.New("unknown state code")

type populationUseCase struct {
	dbGateway db.PopulationGateway
}

func NewPopulationUseCase(dbGateway db.PopulationGateway) UseCase {
	return &populationUseCase{dbGateway: dbGateway}
}

func (uc *populationUseCase) FindAllCities(ctx context.Context, page int, size int, stateCode string) (*model.Page[entity.CityPopulation], error) {
	if stateCode != "" {
		jurisdiction, ok := model.FindJurisdiction(stateCode)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownState, stateCode)
		}
		stateCode = jurisdiction.FIPS()
	}

	cities, totalElements, err := uc.fetchCitiesAndCountInParallel(ctx, page, size, stateCode)
	if err != nil {
		return nil, err
	}

	return model.NewPage(cities, page, size, totalElements), nil
}

// fetchCitiesAndCountInParallel fetches the page and the total count in parallel
func (uc *populationUseCase) fetchCitiesAndCountInParallel(ctx context.Context, page int, size int, stateCode string) ([]entity.CityPopulation, int64, error) {
	var wg sync.WaitGroup
	var cities []entity.CityPopulation
	var totalElements int64
	var citiesErr, countErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		cities, citiesErr = uc.dbGateway.FindAll(ctx, page, size, stateCode)
	}()
	go func() {
		defer wg.Done()
		totalElements, countErr = uc.dbGateway.CountAll(ctx, stateCode)
	}()
	wg.Wait()

	if citiesErr != nil {
		return nil, 0, fmt.Errorf("failed to find cities: %w", citiesErr)
	}
	if countErr != nil {
		return nil, 0, fmt.Errorf("failed to count cities: %w", countErr)
	}

	return cities, totalElements, nil
}
