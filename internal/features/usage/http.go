package usage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"studio-admin/internal/common/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Record is one entry of the usage endpoint response
type Record struct {
	UserID  string  `json:"userId"`
	Seconds float64 `json:"seconds"`
}

// HTTPProvider fetches usage from an external endpoint behind a circuit breaker
type HTTPProvider struct {
	url     string
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker
}

// NewHTTPProvider creates the provider; requests are never retried
func NewHTTPProvider(url string, timeout time.Duration, logger *zap.Logger) *HTTPProvider {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "usage-cb",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &HTTPProvider{url: url, timeout: timeout, breaker: breaker}
}

func (p *HTTPProvider) Name() string { return "http" }

func (p *HTTPProvider) UsageSeconds(ctx context.Context) (map[string]float64, error) {
	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.fetch(ctx)
	})
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	return result.(map[string]float64), nil
}

func (p *HTTPProvider) fetch(ctx context.Context) (map[string]float64, error) {
	timeout := p.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout || timeout <= 0 {
			timeout = left
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agent := fiber.Get(p.url)
	if timeout > 0 {
		agent.Timeout(timeout)
	}
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, errs[0]
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("usage endpoint returned %d", code)
	}

	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode usage response: %w", err)
	}

	usage := make(map[string]float64, len(records))
	for _, r := range records {
		if r.UserID == "" || !validSeconds(r.Seconds) {
			continue
		}
		if total := usage[r.UserID] + r.Seconds; validSeconds(total) {
			usage[r.UserID] = total
		}
	}
	return usage, nil
}
