package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuesioner/models"
)

// fakeRedis answers GET and SET from a map; every other command panics
// through the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable
	values map[string]string
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.values[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func TestRedisStorageMissingKeyIsNotFound(t *testing.T) {
	s := NewRedisStorage(newFakeRedis(), "kuesioner:")

	v, found, err := s.Get(context.Background(), DefaultKey)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, v)
}

func TestRedisStoragePrefixesKeys(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	s := NewRedisStorage(client, "kuesioner:")

	require.NoError(t, s.Set(ctx, "slot", "[]"))
	assert.Equal(t, map[string]string{"kuesioner:slot": "[]"}, client.values)

	v, found, err := s.Get(ctx, "slot")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", v)
}

func TestRedisStorageGetError(t *testing.T) {
	client := newFakeRedis()
	client.getErr = errors.New("connection refused")
	s := NewRedisStorage(client, "")

	_, found, err := s.Get(context.Background(), "slot")
	require.Error(t, err)
	assert.False(t, found)
}

func TestRecordStoreOverRedis(t *testing.T) {
	ctx := context.Background()
	records := NewRecordStore(NewRedisStorage(newFakeRedis(), "kuesioner:"))

	assert.Empty(t, records.ReadAll(ctx))

	_, err := records.Append(ctx, models.ResponseRecord{"A1": "Ya"})
	require.NoError(t, err)

	all := records.ReadAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "Ya", all[0]["A1"])
}
