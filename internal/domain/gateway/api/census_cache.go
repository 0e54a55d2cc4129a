package api

import (
	"context"
	"errors"
	"time"

	"census-etl/internal/domain/model/external"
	"census-etl/pkg/cache"
	"census-etl/pkg/log"

	"go.uber.org/zap"
)

// cachedCensusGateway serves repeated jurisdiction queries from the cache for ttl.
// Only successful responses are cached, failures always reach the API.
type cachedCensusGateway struct {
	next   CensusGateway
	cache  cache.JSONCache
	ttl    time.Duration
	prefix string
	logger log.Observer
}

// NewCachedCensusGateway wraps next with a response cache. prefix scopes keys per dataset and variable.
func NewCachedCensusGateway(next CensusGateway, responseCache cache.JSONCache, ttl time.Duration, prefix string, logger log.Observer) CensusGateway {
	return &cachedCensusGateway{
		next:   next,
		cache:  responseCache,
		ttl:    ttl,
		prefix: prefix,
		logger: logger,
	}
}

func (c *cachedCensusGateway) FetchPlacePopulations(ctx context.Context, query PlaceQuery) (external.CensusRows, error) {
	key := c.prefix + "::places::" + query.StateCode

	var cached external.CensusRows
	err := c.cache.GetJSON(ctx, key, &cached)
	if err == nil && len(cached) > 0 {
		return cached, nil
	}
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		c.logger.Warn("census cache read failed", zap.String("key", key), zap.Error(err))
	}

	rows, err := c.next.FetchPlacePopulations(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SetJSON(ctx, key, rows, c.ttl); err != nil {
		c.logger.Warn("census cache write failed", zap.String("key", key), zap.Error(err))
	}
	return rows, nil
}
