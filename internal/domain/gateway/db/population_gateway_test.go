package db

import (
	"math"
	"testing"
	"time"

	"census-etl/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestToRows_KeepsLastDuplicateInPlace(t *testing.T) {
	loadedAt := time.Date(2026, 1, 5, 3, 0, 0, 0, time.UTC)
	cities := []entity.CityPopulation{
		{Name: "Phoenix city, Arizona", Population: 1650070, StateCode: "04", PlaceCode: "55000"},
		{Name: "Tucson city, Arizona", Population: 547239, StateCode: "04", PlaceCode: "77000"},
		{Name: "Phoenix city, Arizona", Population: 1660000, StateCode: "04", PlaceCode: "55000"},
	}

	rows := toRows("run-1", loadedAt, cities)

	assert.Len(t, rows, 2)
	assert.Equal(t, "55000", rows[0].PlaceCode)
	assert.Equal(t, int64(1660000), rows[0].Population)
	assert.Equal(t, "77000", rows[1].PlaceCode)
	for _, row := range rows {
		assert.Equal(t, "run-1", row.RunID)
		assert.Equal(t, loadedAt, row.LoadedAt)
	}
	assert.Equal(t, cities[1], rows[1].toEntity())
}

func TestToRows_PlacelessCitiesKeyedByName(t *testing.T) {
	cities := []entity.CityPopulation{
		{Name: "CityA", Population: 150000, StateCode: "06"},
		{Name: "CityC", Population: 250000, StateCode: "06"},
		{Name: "cityc ", Population: 260000, StateCode: "06"},
		{Name: "CityA", Population: 150000, StateCode: "41"},
	}

	rows := toRows("run-1", time.Now(), cities)

	assert.Len(t, rows, 3)
	assert.Equal(t, "name:citya", rows[0].PlaceKey)
	assert.Equal(t, "name:cityc", rows[1].PlaceKey)
	assert.Equal(t, int64(260000), rows[1].Population)
	assert.Equal(t, "41", rows[2].StateCode)
	for _, row := range rows {
		assert.Empty(t, row.PlaceCode)
	}
}

func TestToRows_PlaceCodeWinsOverName(t *testing.T) {
	rows := toRows("run-1", time.Now(), []entity.CityPopulation{
		{Name: "Springfield city, Illinois", Population: 114230, StateCode: "17", PlaceCode: "72000"},
		{Name: "Springfield city, Illinois", Population: 114394, StateCode: "17", PlaceCode: "72001"},
	})

	assert.Len(t, rows, 2)
	assert.Equal(t, "72000", rows[0].PlaceKey)
	assert.Equal(t, "72001", rows[1].PlaceKey)
}

func TestPageOffset(t *testing.T) {
	offset, err := pageOffset(3, 20)
	assert.NoError(t, err)
	assert.Equal(t, 60, offset)

	offset, err = pageOffset(-4, 20)
	assert.NoError(t, err)
	assert.Zero(t, offset)

	_, err = pageOffset(math.MaxInt/20+1, 20)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestToRows_Empty(t *testing.T) {
	assert.Empty(t, toRows("run-1", time.Now(), nil))
}
