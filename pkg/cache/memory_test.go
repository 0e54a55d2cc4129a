package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Hour, time.Minute)

	var rows [][]string
	assert.ErrorIs(t, c.GetJSON(ctx, "places::06", &rows), ErrCacheMiss)

	stored := [][]string{{"NAME", "B01003_001E"}, {"Fresno city, California", "545567"}}
	require.NoError(t, c.SetJSON(ctx, "places::06", stored, time.Hour))
	stored[1][1] = "changed"

	require.NoError(t, c.GetJSON(ctx, "places::06", &rows))
	assert.Equal(t, "545567", rows[1][1])

	c.Flush()
	assert.ErrorIs(t, c.GetJSON(ctx, "places::06", &rows), ErrCacheMiss)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Hour, time.Minute)

	require.NoError(t, c.SetJSON(ctx, "places::02", []string{"x"}, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	var got []string
	assert.ErrorIs(t, c.GetJSON(ctx, "places::02", &got), ErrCacheMiss)
}
