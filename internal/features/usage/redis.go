package usage

import (
	"context"
	"strconv"

	"studio-admin/internal/common/apperr"
	"studio-admin/internal/config"

	"github.com/redis/go-redis/v9"
)

// hashReader is the part of the redis client the provider needs
type hashReader interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// RedisProvider reads a hash of member id -> seconds
type RedisProvider struct {
	client hashReader
	closer func() error
	key    string
}

// NewRedisProvider connects lazily to REDIS_ADDR
func NewRedisProvider(cfg *config.Config) *RedisProvider {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return &RedisProvider{client: client, closer: client.Close, key: cfg.UsageRedisKey}
}

func newRedisProviderFromClient(client hashReader, key string) *RedisProvider {
	return &RedisProvider{client: client, key: key}
}

func (p *RedisProvider) Name() string { return "redis" }

// UsageSeconds skips fields whose value is not a finite, non-negative number
func (p *RedisProvider) UsageSeconds(ctx context.Context) (map[string]float64, error) {
	values, err := p.client.HGetAll(ctx, p.key).Result()
	if err != nil {
		return nil, apperr.Upstream(err)
	}

	usage := make(map[string]float64, len(values))
	for memberID, raw := range values {
		seconds, err := strconv.ParseFloat(raw, 64)
		if err != nil || !validSeconds(seconds) {
			continue
		}
		usage[memberID] = seconds
	}
	return usage, nil
}

// Close releases the connection pool
func (p *RedisProvider) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}
