package cache

import (
	"context"

	"census-etl/internal/domain/model"
	"census-etl/pkg/redis"
)

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

// RedisHealthGateway reports the Redis connection used by the scheduler lock and the response cache.
// A nil client reports UNKNOWN, meaning Redis is disabled.
type RedisHealthGateway struct {
	client *redis.Client
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{client: client}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if gateway.client == nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"message": "redis disabled"},
		}
	}

	latency, err := redis.HealthCheck(ctx, gateway.client)
	if err != nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"message": err.Error()},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message": string(model.StatusUp),
			"latency": latency.String(),
		},
	}
}
