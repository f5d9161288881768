package redis

import (
	"context"
	"orderup/internal/models"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := NewClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func TestMenuCacheRoundTrip(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	_, err := client.GetMenu(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)

	items := []models.MenuItem{
		{ItemID: 1, Name: "Burger", Description: "Beef"},
		{ItemID: 2, Name: "Fries"},
	}
	require.NoError(t, client.SetMenu(ctx, items, time.Minute))

	cached, err := client.GetMenu(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, cached)

	require.NoError(t, client.InvalidateMenu(ctx))
	_, err = client.GetMenu(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMenuCacheExpires(t *testing.T) {
	mr, client := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.SetMenu(ctx, []models.MenuItem{{ItemID: 1, Name: "Tea"}}, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := client.GetMenu(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMenuCacheCorruptValue(t *testing.T) {
	mr, client := setupTestRedis(t)

	require.NoError(t, mr.Set(menuListKey, "not json"))

	_, err := client.GetMenu(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestInitializeRejectsBadURL(t *testing.T) {
	_, err := Initialize("://nope")
	assert.Error(t, err)
}

func TestInitializePingsServer(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := Initialize("redis://" + mr.Addr())
	require.NoError(t, err)
	assert.NoError(t, client.Close())
}
