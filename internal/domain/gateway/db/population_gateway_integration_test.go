//go:build integration

package db

import (
	"context"
	"testing"

	"census-etl/internal/domain/entity"
	"census-etl/internal/domain/model"
	"census-etl/pkg/testutil/containers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func populationGateways(t *testing.T) map[string]PopulationGateway {
	t.Helper()

	sqlcContainer := containers.NewPostgresContainer(t)

	gormContainer := containers.NewPostgresContainer(t)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: gormContainer.DB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return map[string]PopulationGateway{
		"sqlc": NewSQLCPopulationGateway(sqlcContainer.DB),
		"gorm": NewGormPopulationGateway(gormDB, 2),
	}
}

func TestPopulationGateway_Integration(t *testing.T) {
	ctx := context.Background()

	for name, gateway := range populationGateways(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, gateway.EnsureSchema(ctx))
			require.NoError(t, gateway.EnsureSchema(ctx))

			first := []entity.CityPopulation{
				{Name: "Chicago city, Illinois", Population: 2664452, StateCode: "17", PlaceCode: "14000"},
				{Name: "Aurora city, Illinois", Population: 180542, StateCode: "17", PlaceCode: "03012"},
				{Name: "Detroit city, Michigan", Population: 633218, StateCode: "26", PlaceCode: "22000"},
			}
			written, err := gateway.SaveAll(ctx, "run-1", first)
			require.NoError(t, err)
			assert.Equal(t, int64(3), written)

			// second run updates Chicago and adds one city, upsert keeps one row per place
			second := []entity.CityPopulation{
				{Name: "Chicago city, Illinois", Population: 2700000, StateCode: "17", PlaceCode: "14000"},
				{Name: "Naperville city, Illinois", Population: 151870, StateCode: "17", PlaceCode: "51622"},
			}
			_, err = gateway.SaveAll(ctx, "run-2", second)
			require.NoError(t, err)

			total, err := gateway.CountAll(ctx, "")
			require.NoError(t, err)
			assert.Equal(t, int64(4), total)

			illinois, err := gateway.CountAll(ctx, "17")
			require.NoError(t, err)
			assert.Equal(t, int64(3), illinois)

			page, err := gateway.FindAll(ctx, 0, 2, "17")
			require.NoError(t, err)
			require.Len(t, page, 2)
			assert.Equal(t, int64(2700000), page[0].Population)
			assert.Equal(t, "03012", page[1].PlaceCode)

			next, err := gateway.FindAll(ctx, 1, 2, "17")
			require.NoError(t, err)
			require.Len(t, next, 1)
			assert.Equal(t, "51622", next[0].PlaceCode)

			written, err = gateway.SaveAll(ctx, "run-3", nil)
			require.NoError(t, err)
			assert.Zero(t, written)

			// responses without a place column are keyed by name
			placeless := []entity.CityPopulation{
				{Name: "CityA", Population: 150000, StateCode: "06"},
				{Name: "CityC", Population: 250000, StateCode: "06"},
			}
			written, err = gateway.SaveAll(ctx, "run-4", placeless)
			require.NoError(t, err)
			assert.Equal(t, int64(2), written)

			california, err := gateway.FindAll(ctx, 0, 10, "06")
			require.NoError(t, err)
			assert.Equal(t, []entity.CityPopulation{placeless[1], placeless[0]}, california)
		})
	}
}

func TestHealthDBGateway_Integration(t *testing.T) {
	ctx := context.Background()
	container := containers.NewPostgresContainer(t)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: container.DB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusUp, NewSQLCHealthDBGateway(container.DB).Health(ctx).Status)
	assert.Equal(t, model.StatusUp, NewGormHealthDBGateway(gormDB).Health(ctx).Status)

	require.NoError(t, container.DB.Close())

	status := NewSQLCHealthDBGateway(container.DB).Health(ctx)
	assert.Equal(t, model.StatusDown, status.Status)
	assert.NotEmpty(t, status.Details["message"])
}
