package favorites

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/shoplight-backend/internal/domain/catalog"
	"github.com/your-org/shoplight-backend/internal/infrastructure/storage"
	"github.com/your-org/shoplight-backend/internal/pkg/notify"
)

const testSession = "sess-1"

func setupFavorites(t *testing.T) (*Service, *notify.Recorder, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	catalogSvc := catalog.NewService([]catalog.Product{
		{ID: "p1", Name: "Linen Classic Shirt", Price: 29.99, Category: "Clothing"},
		{ID: "p2", Name: "Everyday Sneakers", Price: 64.99, Category: "Shoes"},
	})
	recorder := notify.NewRecorder()
	svc := NewService(storage.NewRedisStore(client, 24*time.Hour), catalogSvc, recorder, "shop_favs_v1")
	return svc, recorder, mr
}

func TestToggle_AddThenRemove(t *testing.T) {
	svc, recorder, _ := setupFavorites(t)
	ctx := context.Background()

	assert.True(t, svc.Toggle(ctx, testSession, "p1"))
	assert.True(t, svc.Has(ctx, testSession, "p1"))
	assert.Equal(t, 1, svc.Count(ctx, testSession))

	assert.False(t, svc.Toggle(ctx, testSession, "p1"))
	assert.False(t, svc.Has(ctx, testSession, "p1"))
	assert.Zero(t, svc.Count(ctx, testSession))

	events := recorder.Events()
	require.Len(t, events, 2)
	assert.Equal(t, notify.KindFavorited, events[0].Kind)
	assert.Equal(t, notify.KindUnfavorited, events[1].Kind)
}

// Toggle is its own inverse for any starting membership.
func TestToggle_SelfInverse(t *testing.T) {
	svc, _, _ := setupFavorites(t)
	ctx := context.Background()

	svc.Toggle(ctx, testSession, "p2")
	before := svc.All(ctx, testSession)

	svc.Toggle(ctx, testSession, "p1")
	svc.Toggle(ctx, testSession, "p1")

	assert.ElementsMatch(t, before, svc.All(ctx, testSession))
}

// An id unknown to the catalog still toggles and persists; the existence
// check only gates the notification.
func TestToggle_UnknownIDStillPersists(t *testing.T) {
	svc, recorder, _ := setupFavorites(t)
	ctx := context.Background()

	assert.True(t, svc.Toggle(ctx, testSession, "ghost"))
	assert.True(t, svc.Has(ctx, testSession, "ghost"))

	events := recorder.Events()
	require.Len(t, events, 1)
	assert.Equal(t, notify.KindError, events[0].Kind)
}

func TestPersistenceRoundTrip(t *testing.T) {
	svc, _, mr := setupFavorites(t)
	ctx := context.Background()

	svc.Toggle(ctx, testSession, "p1")
	svc.Toggle(ctx, testSession, "p2")

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	catalogSvc := catalog.NewService(nil)
	fresh := NewService(storage.NewRedisStore(client, 24*time.Hour), catalogSvc, notify.NewRecorder(), "shop_favs_v1")

	assert.ElementsMatch(t, []string{"p1", "p2"}, fresh.All(ctx, testSession))
}

func TestLoad_MalformedDataResetsToEmpty(t *testing.T) {
	svc, _, mr := setupFavorites(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("shop_favs_v1:"+testSession, "not-json"))
	assert.Empty(t, svc.All(ctx, testSession))
	assert.Zero(t, svc.Count(ctx, testSession))

	// Usable after the reset.
	svc.Toggle(ctx, testSession, "p1")
	assert.True(t, svc.Has(ctx, testSession, "p1"))
}

func TestContains_PredicateSnapshot(t *testing.T) {
	svc, _, _ := setupFavorites(t)
	ctx := context.Background()

	svc.Toggle(ctx, testSession, "p1")
	isFav := svc.Contains(ctx, testSession)

	assert.True(t, isFav("p1"))
	assert.False(t, isFav("p2"))
}
