package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-service/internal/repository"
)

const rateFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<RateList>
	<Rate code="MCLR">
		<Value>9.10</Value>
	</Rate>
	<Rate code="REPO">
		<Value>6,50</Value>
	</Rate>
</RateList>`

func newRateService(feedURL string, cache *mockRateCacheRepo) *RateSvc {
	deps := testDeps(&repository.Repository{RateCache: cache})
	deps.Config.Rates.FeedURL = feedURL
	deps.Config.Rates.RateCode = "REPO"

	return NewRateService(deps)
}

func TestGetBenchmarkRate_CacheHit(t *testing.T) {
	cache := &mockRateCacheRepo{cached: 7.25, hasCached: true}
	svc := newRateService("http://unused.invalid", cache)

	rate, err := svc.GetBenchmarkRate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7.25, rate)
}

func TestGetBenchmarkRate_FetchesAndCaches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rateFeedXML))
	}))
	defer server.Close()

	cache := &mockRateCacheRepo{}
	svc := newRateService(server.URL, cache)

	rate, err := svc.GetBenchmarkRate(context.Background())

	require.NoError(t, err)

	// The feed uses a comma decimal separator
	assert.Equal(t, 6.5, rate)
	assert.Equal(t, 6.5, cache.setRate)
	assert.Equal(t, 60*time.Minute, cache.setTTL)
}

func TestGetBenchmarkRate_FeedDownUsesDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := newRateService(server.URL, &mockRateCacheRepo{})

	rate, err := svc.GetBenchmarkRate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 8.5, rate)
}

func TestRefresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rateFeedXML))
	}))
	defer server.Close()

	cache := &mockRateCacheRepo{cached: 7.25, hasCached: true}
	svc := newRateService(server.URL, cache)

	err := svc.Refresh(context.Background())

	require.NoError(t, err)

	// Refresh bypasses the cache and overwrites it
	assert.Equal(t, 6.5, cache.setRate)
}

func TestRefresh_UnknownRateCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<RateList><Rate code="OTHER"><Value>5</Value></Rate></RateList>`))
	}))
	defer server.Close()

	svc := newRateService(server.URL, &mockRateCacheRepo{})

	err := svc.Refresh(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in feed")
}
