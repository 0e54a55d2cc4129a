package sqlc

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"census-etl/internal/infra/database"

	_ "github.com/lib/pq"
)

// Open connects to the warehouse through lib/pq and verifies the connection.
func Open(ctx context.Context, config database.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", config.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err = db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return db, nil
}
