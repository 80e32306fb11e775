package usage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"studio-admin/internal/common/apperr"
	"studio-admin/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

type fakeHash struct {
	values map[string]string
	err    error
}

func (f fakeHash) HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd {
	return redis.NewMapStringStringResult(f.values, f.err)
}

func TestRedisProvider(t *testing.T) {
	p := newRedisProviderFromClient(fakeHash{values: map[string]string{
		"m1": "120",
		"m2": "30.5",
		"m3": "garbage",
		"m4": "-5",
		"m5": "NaN",
		"m6": "+Inf",
		"m7": "-Inf",
	}}, "member_usage_seconds")

	usage, err := p.UsageSeconds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"m1": 120, "m2": 30.5}, usage)
	assert.NoError(t, p.Close())
}

func TestRedisProviderFailure(t *testing.T) {
	p := newRedisProviderFromClient(fakeHash{err: errors.New("dial tcp: connection refused")}, "k")

	_, err := p.UsageSeconds(context.Background())
	assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
}

func TestHTTPProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"userId":"m1","seconds":90},{"userId":"m2","seconds":30},{"userId":"m1","seconds":30},{"userId":"","seconds":5}]`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, time.Second, zap.NewNop())
	usage, err := p.UsageSeconds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"m1": 120, "m2": 30}, usage)
}

func TestHTTPProviderDropsOverflowingSums(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"userId":"m1","seconds":1.5e308},{"userId":"m1","seconds":1.5e308},{"userId":"m2","seconds":-1}]`))
	}))
	defer srv.Close()

	usage, err := NewHTTPProvider(srv.URL, time.Second, zap.NewNop()).UsageSeconds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"m1": 1.5e308}, usage)
}

func TestHTTPProviderBreakerOpens(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, time.Second, zap.NewNop())
	for i := 0; i < 4; i++ {
		_, err := p.UsageSeconds(context.Background())
		assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
	}

	_, err := p.UsageSeconds(context.Background())
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
	assert.EqualValues(t, 4, hits.Load())
}

func TestHTTPProviderRejectsBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPProvider(srv.URL, time.Second, zap.NewNop()).UsageSeconds(context.Background())
	assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{source: "none", want: "none"},
		{source: "redis", want: "redis"},
		{source: "http", want: "http"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			cfg := &config.Config{
				UsageSource:   tt.source,
				RedisAddr:     "localhost:6379",
				UsageRedisKey: "member_usage_seconds",
				UsageURL:      "http://usage.local/all",
				UsageTimeout:  time.Second,
			}

			p, err := NewProvider(lc, cfg, zap.NewNop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Name())
			lc.RequireStart().RequireStop()
		})
	}

	_, err := NewProvider(fxtest.NewLifecycle(t), &config.Config{UsageSource: "kafka"}, zap.NewNop())
	assert.Error(t, err)
}

func TestNoneProvider(t *testing.T) {
	usage, err := NoneProvider{}.UsageSeconds(context.Background())
	require.NoError(t, err)
	assert.Empty(t, usage)
}
