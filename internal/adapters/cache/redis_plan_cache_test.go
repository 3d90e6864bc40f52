package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"route-optimizer-service/internal/domain"
)

func newTestCache(t *testing.T) (*RedisPlanCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisPlanCache(client, time.Hour), mr
}

func TestRedisPlanCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)

	_, ok, err := c.Get(context.Background(), "plan:none")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisPlanCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)

	want := domain.OptimizedRoute{
		Sequence:                 []string{"o1", "o3", "o2"},
		TotalDistanceKm:          12.34,
		EstimatedDurationMinutes: 33,
		Algorithm:                "nearest_neighbor",
	}

	require.NoError(t, c.Put(context.Background(), "plan:r1:abc", want))

	got, ok, err := c.Get(context.Background(), "plan:r1:abc")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestRedisPlanCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	c.TTL = time.Minute

	require.NoError(t, c.Put(context.Background(), "plan:r1:abc", domain.OptimizedRoute{Sequence: []string{"o1"}}))

	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(context.Background(), "plan:r1:abc")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisPlanCacheCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, mr.Set("plan:r1:abc", "not-json"))

	_, _, err := c.Get(context.Background(), "plan:r1:abc")
	require.Error(t, err)
}
