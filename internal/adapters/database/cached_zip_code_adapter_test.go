package database

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
	"github.com/zatekoja/costnavigator/internal/domain/providers"
	"github.com/zatekoja/costnavigator/tests/mocks"
)

func TestCachedZipCodeAdapter_Hit(t *testing.T) {
	lat, lon := 42.35, -71.13
	data, err := json.Marshal(entities.ZipCode{Zip: "02134", Latitude: &lat, Longitude: &lon})
	require.NoError(t, err)

	store := mocks.NewMockZipCodeRepository(t)
	cache := mocks.NewMockCacheProvider(t)
	cache.EXPECT().Get(mock.Anything, "zip:v1:02134").Return(data, nil)

	z, err := NewCachedZipCodeAdapter(store, cache, time.Hour, zerolog.Nop()).GetByZip(context.Background(), "02134")

	require.NoError(t, err)
	assert.Equal(t, 42.35, *z.Latitude)
}

func TestCachedZipCodeAdapter_MissPopulatesCache(t *testing.T) {
	lat, lon := 40.0, -75.0
	store := mocks.NewMockZipCodeRepository(t)
	store.EXPECT().GetByZip(mock.Anything, "19104").Return(&entities.ZipCode{Zip: "19104", Latitude: &lat, Longitude: &lon}, nil)

	written := make(chan int, 1)
	cache := mocks.NewMockCacheProvider(t)
	cache.EXPECT().Get(mock.Anything, "zip:v1:19104").Return(nil, providers.ErrCacheMiss)
	cache.EXPECT().Set(mock.Anything, "zip:v1:19104", mock.Anything, 3600).
		Run(func(_ context.Context, _ string, _ []byte, ttl int) { written <- ttl }).
		Return(nil)

	z, err := NewCachedZipCodeAdapter(store, cache, time.Hour, zerolog.Nop()).GetByZip(context.Background(), "19104")

	require.NoError(t, err)
	assert.Equal(t, "19104", z.Zip)
	select {
	case ttl := <-written:
		assert.Equal(t, 3600, ttl)
	case <-time.After(time.Second):
		t.Fatal("cache was not populated")
	}
}

func TestCachedZipCodeAdapter_CacheDownFallsThrough(t *testing.T) {
	store := mocks.NewMockZipCodeRepository(t)
	store.EXPECT().GetByZip(mock.Anything, "10001").Return(nil, errors.New("store down"))

	cache := mocks.NewMockCacheProvider(t)
	cache.EXPECT().Get(mock.Anything, "zip:v1:10001").Return(nil, errors.New("dial tcp: connection refused"))

	_, err := NewCachedZipCodeAdapter(store, cache, time.Hour, zerolog.Nop()).GetByZip(context.Background(), "10001")

	assert.EqualError(t, err, "store down")
}
