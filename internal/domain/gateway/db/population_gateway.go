package db

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"census-etl/internal/domain/entity"
)

const populationTable = "city_populations"

var ErrPageOutOfRange = errors.New("page offset out of range")

//go:generate mockgen -source=population_gateway.go -destination=mocks/population_gateway_mock.go -package=mocks

// PopulationGateway is the warehouse table holding extracted city populations
type PopulationGateway interface {
	// EnsureSchema creates the warehouse table when it does not exist yet
	EnsureSchema(ctx context.Context) error

	// SaveAll upserts the records on (state_code, place_key) and returns the number of rows written
	SaveAll(ctx context.Context, runID string, cities []entity.CityPopulation) (int64, error)

	// FindAll pages through loaded records by descending population, optionally within one state
	FindAll(ctx context.Context, page int, size int, stateCode string) ([]entity.CityPopulation, error)

	// CountAll counts loaded records, optionally within one state
	CountAll(ctx context.Context, stateCode string) (int64, error)
}

// cityPopulationRow is the tabular form of a CityPopulation.
type cityPopulationRow struct {
	StateCode  string    `gorm:"column:state_code;primaryKey;type:text"`
	PlaceKey   string    `gorm:"column:place_key;primaryKey;type:text"`
	PlaceCode  string    `gorm:"column:place_code;type:text;not null"`
	Name       string    `gorm:"column:name;type:text;not null"`
	Population int64     `gorm:"column:population;not null;index"`
	RunID      string    `gorm:"column:run_id;type:text;not null"`
	LoadedAt   time.Time `gorm:"column:loaded_at;not null"`
}

func (cityPopulationRow) TableName() string {
	return populationTable
}

// pageOffset returns the row offset of a 0-based page; negative pages count as the first one.
func pageOffset(page, size int) (int, error) {
	if page <= 0 || size <= 0 {
		return 0, nil
	}
	if page > math.MaxInt/size {
		return 0, fmt.Errorf("%w: page %d of size %d", ErrPageOutOfRange, page, size)
	}
	return page * size, nil
}

// placeKey identifies a place within its state: the census place code, or the name when the response had none.
func placeKey(city entity.CityPopulation) string {
	if code := strings.TrimSpace(city.PlaceCode); code != "" {
		return code
	}
	return "name:" + strings.ToLower(strings.TrimSpace(city.Name))
}

// toRows converts a ResultSet into table rows stamped with the run. Records sharing a key keep the last occurrence,
// since a single upsert statement cannot touch the same row twice.
func toRows(runID string, loadedAt time.Time, cities []entity.CityPopulation) []cityPopulationRow {
	type key struct{ state, place string }

	rows := make([]cityPopulationRow, 0, len(cities))
	positions := make(map[key]int, len(cities))

	for _, city := range cities {
		row := cityPopulationRow{
			StateCode:  city.StateCode,
			PlaceKey:   placeKey(city),
			PlaceCode:  city.PlaceCode,
			Name:       city.Name,
			Population: city.Population,
			RunID:      runID,
			LoadedAt:   loadedAt,
		}

		k := key{row.StateCode, row.PlaceKey}
		if i, seen := positions[k]; seen {
			rows[i] = row
			continue
		}
		positions[k] = len(rows)
		rows = append(rows, row)
	}

	return rows
}

func (row cityPopulationRow) toEntity() entity.CityPopulation {
	return entity.CityPopulation{
		Name:       row.Name,
		Population: row.Population,
		StateCode:  row.StateCode,
		PlaceCode:  row.PlaceCode,
	}
}
