package redis

import (
	"context"
	"time"
)

// HealthCheck pings Redis and returns the round-trip latency.
func HealthCheck(ctx context.Context, client *Client) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	if err := client.Ping(ctx); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}
