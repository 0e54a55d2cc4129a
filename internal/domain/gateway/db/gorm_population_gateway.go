package db

import (
	"context"
	"fmt"
	"time"

	"census-etl/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormPopulationGateway struct {
	DB        *gorm.DB
	BatchSize int
}

var _ PopulationGateway = (*GormPopulationGateway)(nil)

func NewGormPopulationGateway(db *gorm.DB, batchSize int) *GormPopulationGateway {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &GormPopulationGateway{DB: db, BatchSize: batchSize}
}

func (gateway *GormPopulationGateway) EnsureSchema(ctx context.Context) error {
	if err := gateway.DB.WithContext(ctx).AutoMigrate(&cityPopulationRow{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", populationTable, err)
	}
	return nil
}

// SaveAll upserts the rows in batches inside one transaction
func (gateway *GormPopulationGateway) SaveAll(ctx context.Context, runID string, cities []entity.CityPopulation) (int64, error) {
	if len(cities) == 0 {
		return 0, nil
	}
	rows := toRows(runID, time.Now().UTC(), cities)

	var written int64
	err := gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "state_code"}, {Name: "place_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"place_code", "name", "population", "run_id", "loaded_at"}),
		}).CreateInBatches(&rows, gateway.BatchSize)
		if result.Error != nil {
			return result.Error
		}
		written = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert %s: %w", populationTable, err)
	}

	return written, nil
}

func (gateway *GormPopulationGateway) FindAll(ctx context.Context, page int, size int, stateCode string) ([]entity.CityPopulation, error) {
	offset, err := pageOffset(page, size)
	if err != nil {
		return nil, err
	}

	var rows []cityPopulationRow
	err = gateway.filtered(ctx, stateCode).
		Order("population DESC").
		Order("state_code ASC").
		Order("place_key ASC").
		Limit(size).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	cities := make([]entity.CityPopulation, 0, len(rows))
	for _, row := range rows {
		cities = append(cities, row.toEntity())
	}
	return cities, nil
}

func (gateway *GormPopulationGateway) CountAll(ctx context.Context, stateCode string) (int64, error) {
	var count int64
	err := gateway.filtered(ctx, stateCode).Count(&count).Error
	return count, err
}

func (gateway *GormPopulationGateway) filtered(ctx context.Context, stateCode string) *gorm.DB {
	query := gateway.DB.WithContext(ctx).Model(&cityPopulationRow{})
	if stateCode != "" {
		query = query.Where("state_code = ?", stateCode)
	}
	return query
}
