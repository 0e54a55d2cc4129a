package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"census-etl/internal/domain/entity"

	"github.com/lib/pq"
)

const createPopulationTableSQL = `
	CREATE TABLE IF NOT EXISTS city_populations (
		state_code  TEXT        NOT NULL,
		place_key   TEXT        NOT NULL,
		place_code  TEXT        NOT NULL,
		name        TEXT        NOT NULL,
		population  BIGINT      NOT NULL,
		run_id      TEXT        NOT NULL,
		loaded_at   TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (state_code, place_key)
	);
	CREATE INDEX IF NOT EXISTS idx_city_populations_population ON city_populations (population);`

const stagingTable = "city_populations_staging"

type SQLCPopulationGateway struct {
	DB *sql.DB
}

var _ PopulationGateway = (*SQLCPopulationGateway)(nil)

func NewSQLCPopulationGateway(db *sql.DB) *SQLCPopulationGateway {
	return &SQLCPopulationGateway{DB: db}
}

// EnsureSchema creates the warehouse table when missing
func (gateway *SQLCPopulationGateway) EnsureSchema(ctx context.Context) error {
	if _, err := gateway.DB.ExecContext(ctx, createPopulationTableSQL); err != nil {
		return fmt.Errorf("failed to create %s: %w", populationTable, err)
	}
	return nil
}

// SaveAll copies the rows into a transaction-scoped staging table and upserts them in one statement
func (gateway *SQLCPopulationGateway) SaveAll(ctx context.Context, runID string, cities []entity.CityPopulation) (written int64, err error) {
	if len(cities) == 0 {
		return 0, nil
	}
	rows := toRows(runID, time.Now().UTC(), cities)

	tx, err := gateway.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `CREATE TEMP TABLE `+stagingTable+` (LIKE city_populations INCLUDING DEFAULTS) ON COMMIT DROP`); err != nil {
		return 0, fmt.Errorf("failed to create staging table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(stagingTable, "state_code", "place_key", "place_code", "name", "population", "run_id", "loaded_at"))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare copy: %w", err)
	}

	for _, row := range rows {
		if _, err = stmt.ExecContext(ctx, row.StateCode, row.PlaceKey, row.PlaceCode, row.Name, row.Population, row.RunID, row.LoadedAt); err != nil {
			_ = stmt.Close()
			return 0, fmt.Errorf("failed to copy row %s/%s: %w", row.StateCode, row.PlaceKey, err)
		}
	}
	if _, err = stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return 0, fmt.Errorf("failed to flush copy: %w", err)
	}
	if err = stmt.Close(); err != nil {
		return 0, err
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO city_populations (state_code, place_key, place_code, name, population, run_id, loaded_at)
		SELECT state_code, place_key, place_code, name, population, run_id, loaded_at FROM `+stagingTable+`
		ON CONFLICT (state_code, place_key) DO UPDATE SET
			place_code = EXCLUDED.place_code,
			name = EXCLUDED.name,
			population = EXCLUDED.population,
			run_id = EXCLUDED.run_id,
			loaded_at = EXCLUDED.loaded_at`)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert %s: %w", populationTable, err)
	}

	written, err = result.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return written, nil
}

// FindAll retrieves loaded records with an optional state filter and pagination
func (gateway *SQLCPopulationGateway) FindAll(ctx context.Context, page int, size int, stateCode string) ([]entity.CityPopulation, error) {
	offset, err := pageOffset(page, size)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT c.state_code, c.place_key, c.place_code, c.name, c.population, c.run_id, c.loaded_at
		FROM city_populations c
		WHERE 1=1`

	args := []interface{}{}
	argCount := 0

	if stateCode != "" {
		argCount++
		query += fmt.Sprintf(" AND c.state_code = $%d", argCount)
		args = append(args, stateCode)
	}

	query += " ORDER BY c.population DESC, c.state_code ASC, c.place_key ASC"

	argCount++
	query += fmt.Sprintf(" LIMIT $%d", argCount)
	args = append(args, size)

	argCount++
	query += fmt.Sprintf(" OFFSET $%d", argCount)
	args = append(args, offset)

	rows, err := gateway.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]entity.CityPopulation, 0)
	for rows.Next() {
		var row cityPopulationRow
		if err := rows.Scan(&row.StateCode, &row.PlaceKey, &row.PlaceCode, &row.Name, &row.Population, &row.RunID, &row.LoadedAt); err != nil {
			return nil, err
		}
		cities = append(cities, row.toEntity())
	}

	return cities, rows.Err()
}

// CountAll counts loaded records with an optional state filter
func (gateway *SQLCPopulationGateway) CountAll(ctx context.Context, stateCode string) (int64, error) {
	query := `SELECT COUNT(*) FROM city_populations c WHERE 1=1`
	args := []interface{}{}

	if stateCode != "" {
		query += " AND c.state_code = $1"
		args = append(args, stateCode)
	}

	var count int64
	err := gateway.DB.QueryRowContext(ctx, query, args...).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return count, err
}
