package container

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"census-etl/configs"
	"census-etl/internal/domain/gateway/api"
	cachegateway "census-etl/internal/domain/gateway/cache"
	"census-etl/internal/domain/gateway/db"
	"census-etl/internal/domain/model"
	"census-etl/internal/domain/usecase/extract"
	"census-etl/internal/domain/usecase/health"
	"census-etl/internal/domain/usecase/pipeline"
	"census-etl/internal/domain/usecase/population"
	"census-etl/internal/infra/database"
	gormdb "census-etl/internal/infra/database/gorm"
	"census-etl/internal/infra/database/sqlc"
	infraredis "census-etl/internal/infra/redis"
	"census-etl/pkg/cache"
	"census-etl/pkg/http"
	"census-etl/pkg/log"
	"census-etl/pkg/redis"
	"census-etl/pkg/resource"
)

const (
	DriverSQLC = "sqlc"
	DriverGorm = "gorm"

	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Container holds the use cases shared by the CLI and the API server.
type Container struct {
	Pipeline   pipeline.UseCase
	Population population.UseCase
	Health     health.UseCase
	// Redis is nil when app.redis.enabled is false.
	Redis *redis.Client

	closers []io.Closer
}

func init() {
	resource.SetDefault("app.census.base-url", "https://api.census.gov/data")
	resource.SetDefault("app.census.year", 2024)
	resource.SetDefault("app.census.dataset", "acs/acs1")
	resource.SetDefault("app.census.population-variable", extract.DefaultPopulationVariable)
	resource.SetDefault("app.census.population-threshold", extract.DefaultPopulationThreshold)
	resource.SetDefault("app.census.cache.ttl", "12h")
	resource.SetDefault("app.census.cache.backend", CacheMemory)
	resource.SetDefault("app.warehouse.driver", DriverSQLC)
	resource.SetDefault("app.warehouse.batch-size", 500)
}

// Build opens the warehouse and the optional Redis connection and assembles every use case.
func Build(ctx context.Context) (*Container, error) {
	c := &Container{}

	populationGateway, healthGateway, err := c.openWarehouse(ctx)
	if err != nil {
		return nil, err
	}

	if err := populationGateway.EnsureSchema(ctx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to prepare warehouse schema: %w", err)
	}

	c.Redis, err = infraredis.OpenFromProperties(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	if c.Redis != nil {
		c.closers = append(c.closers, c.Redis)
	}

	censusGateway, err := c.censusGateway()
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	extractUseCase := extract.NewExtractUseCase(extract.Config{
		APIKey:              configs.Env.CensusAPIKey,
		PopulationThreshold: resource.GetInt64("app.census.population-threshold"),
		PopulationVariable:  resource.GetString("app.census.population-variable"),
	}, censusGateway, log.Named("extractor"))

	c.Pipeline = pipeline.NewPipelineUseCase(extractUseCase, populationGateway, len(model.Jurisdictions), log.Named("pipeline"))
	c.Population = population.NewPopulationUseCase(populationGateway)
	c.Health = health.NewHealthUseCase(healthGateway, cachegateway.NewRedisHealthGateway(c.Redis))

	return c, nil
}

func (c *Container) openWarehouse(ctx context.Context) (db.PopulationGateway, db.HealthDBGateway, error) {
	config := database.ConfigFromProperties()

	switch driver := strings.ToLower(resource.GetString("app.warehouse.driver")); driver {
	case DriverSQLC:
		conn, err := sqlc.Open(ctx, config)
		if err != nil {
			return nil, nil, err
		}
		c.closers = append(c.closers, conn)
		return db.NewSQLCPopulationGateway(conn), db.NewSQLCHealthDBGateway(conn), nil
	case DriverGorm:
		conn, err := gormdb.Open(config)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to access gorm connection pool: %w", err)
		}
		c.closers = append(c.closers, sqlDB)
		return db.NewGormPopulationGateway(conn, resource.GetInt("app.warehouse.batch-size")), db.NewGormHealthDBGateway(conn), nil
	default:
		return nil, nil, fmt.Errorf("unsupported warehouse driver %q", driver)
	}
}

func (c *Container) censusGateway() (api.CensusGateway, error) {
	variable := resource.GetString("app.census.population-variable")

	gateway := api.NewCensusGateway(api.CensusGatewayConfig{
		BaseURL:            DatasetURL(),
		PopulationVariable: variable,
		RequestsPerSecond:  resource.GetFloat64("app.census.requests-per-second"),
	}, http.ClientOptions{
		ReadTimeout: resource.GetDuration("app.census.read-timeout"),
		Logger:      http.NewZapHTTPLogger(log.NamedZap("census-http")),
	})

	if !resource.GetBool("app.census.cache.enabled") {
		return gateway, nil
	}

	ttl := resource.GetDuration("app.census.cache.ttl")
	var responseCache cache.JSONCache
	switch backend := strings.ToLower(resource.GetString("app.census.cache.backend")); backend {
	case CacheMemory:
		responseCache = cache.NewMemoryCache(ttl, 10*time.Minute)
	case CacheRedis:
		if c.Redis == nil {
			return nil, fmt.Errorf("census cache backend %q requires app.redis.enabled", backend)
		}
		responseCache = c.Redis
	default:
		return nil, fmt.Errorf("unsupported census cache backend %q", backend)
	}

	prefix := fmt.Sprintf("census_etl::%d::%s::%s",
		resource.GetInt("app.census.year"), resource.GetString("app.census.dataset"), variable)
	return api.NewCachedCensusGateway(gateway, responseCache, ttl, prefix, log.Named("census-cache")), nil
}

// DatasetURL joins base-url, year and dataset, e.g. https://api.census.gov/data/2024/acs/acs1
func DatasetURL() string {
	return fmt.Sprintf("%s/%d/%s",
		strings.TrimRight(resource.GetString("app.census.base-url"), "/"),
		resource.GetInt("app.census.year"),
		strings.Trim(resource.GetString("app.census.dataset"), "/"))
}

// Close releases every connection opened by Build, most recent first.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
