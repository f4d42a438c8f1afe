package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, 24*time.Hour), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "shop_cart_v1:s1", []byte(`{"items":[],"total":0}`)))
	assert.True(t, mr.Exists("shop_cart_v1:s1"))

	data, err := store.Load(ctx, "shop_cart_v1:s1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"total":0}`, string(data))
}

func TestRedisStore_Load_Missing(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.Load(context.Background(), "shop_cart_v1:nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_Delete(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "shop_favs_v1:s1", []byte(`["p1"]`)))
	require.NoError(t, store.Delete(ctx, "shop_favs_v1:s1"))
	assert.False(t, mr.Exists("shop_favs_v1:s1"))

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete(ctx, "shop_favs_v1:s1"))
}

func TestRedisStore_TTLApplied(t *testing.T) {
	store, mr := setupTestStore(t)

	require.NoError(t, store.Save(context.Background(), "shop_cart_v1:s1", []byte(`{}`)))
	mr.FastForward(25 * time.Hour)
	assert.False(t, mr.Exists("shop_cart_v1:s1"))
}
