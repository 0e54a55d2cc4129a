package redis

import (
	"context"
	"fmt"

	"census-etl/pkg/redis"
	"census-etl/pkg/resource"
)

// OpenFromProperties connects to Redis when app.redis.enabled is set; otherwise it returns nil.
func OpenFromProperties(ctx context.Context) (*redis.Client, error) {
	if !resource.GetBool("app.redis.enabled") {
		return nil, nil
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	client, err := redis.NewClient(config)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", config.Addr(), err)
	}
	return client, nil
}
