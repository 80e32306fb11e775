// Package usage reads per-member usage time from the tracking collaborator.
// Providers are read-only and report cumulative seconds keyed by member id.
package usage

import (
	"context"
	"fmt"
	"math"

	"studio-admin/internal/config"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Provider returns cumulative usage seconds keyed by member id
type Provider interface {
	Name() string
	UsageSeconds(ctx context.Context) (map[string]float64, error)
}

// NewProvider picks the provider configured by USAGE_SOURCE
func NewProvider(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (Provider, error) {
	switch cfg.UsageSource {
	case "redis":
		p := NewRedisProvider(cfg)
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return p.Close()
			},
		})
		logger.Info("Usage provider: redis", zap.String("addr", cfg.RedisAddr), zap.String("key", cfg.UsageRedisKey))
		return p, nil
	case "http":
		logger.Info("Usage provider: http", zap.String("url", cfg.UsageURL))
		return NewHTTPProvider(cfg.UsageURL, cfg.UsageTimeout, logger), nil
	case "none", "":
		logger.Info("Usage provider: none")
		return NoneProvider{}, nil
	}
	return nil, fmt.Errorf("unknown usage source %q", cfg.UsageSource)
}

// NoneProvider reports no usage for anyone
type NoneProvider struct{}

func (NoneProvider) Name() string { return "none" }

func (NoneProvider) UsageSeconds(ctx context.Context) (map[string]float64, error) {
	return map[string]float64{}, nil
}

// validSeconds rejects negative and non-finite readings
func validSeconds(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
