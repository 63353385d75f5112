package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/cpr_dispatch/internal/flow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisDeskStore(t *testing.T, ttl time.Duration) (*RedisDeskStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisDeskStore(client, ttl), mr
}

func TestRedisDeskStore_MissingDeskIsNil(t *testing.T) {
	store, _ := newTestRedisDeskStore(t, time.Hour)

	desk, err := store.Load(context.Background(), "provider-1")

	require.NoError(t, err)
	assert.Nil(t, desk)
}

func TestRedisDeskStore_SaveAndLoad(t *testing.T) {
	// Подготовка
	store, mr := newTestRedisDeskStore(t, time.Hour)
	ctx := context.Background()
	saved := flow.Desk{ProviderID: "provider-1", SelectedRequestID: "3", ETAMinutes: 12}

	// Действие
	require.NoError(t, store.Save(ctx, saved))
	loaded, err := store.Load(ctx, "provider-1")

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved, *loaded)
	assert.Equal(t, time.Hour, mr.TTL(deskKey("provider-1")))

	// После TTL рабочее место начинается заново
	mr.FastForward(time.Hour + time.Second)
	loaded, err = store.Load(ctx, "provider-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisDeskStore_CorruptedValue(t *testing.T) {
	store, mr := newTestRedisDeskStore(t, time.Hour)
	require.NoError(t, mr.Set(deskKey("provider-1"), "{not json"))

	desk, err := store.Load(context.Background(), "provider-1")

	assert.Nil(t, desk)
	assert.ErrorContains(t, err, "failed to unmarshal desk")
}

func TestRedisDeskStore_Unavailable(t *testing.T) {
	store, mr := newTestRedisDeskStore(t, time.Hour)
	mr.Close()

	_, err := store.Load(context.Background(), "provider-1")
	assert.ErrorContains(t, err, "failed to get desk from Redis")

	err = store.Save(context.Background(), flow.Desk{ProviderID: "provider-1", ETAMinutes: 5})
	assert.ErrorContains(t, err, "failed to save desk to Redis")
}
