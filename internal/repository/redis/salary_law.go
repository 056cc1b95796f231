package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/salarylaw"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const DefaultSalaryLawTTL = time.Hour

// SalaryLawKey is the cache key of the active configuration of year
func SalaryLawKey(year int) string {
	return fmt.Sprintf("salary_law:%d", year)
}

type salaryLawCache struct {
	next salarylaw.SalaryLawRepository
	rdb  redis.Cmdable
	ttl  time.Duration
	sf   singleflight.Group
}

// NewSalaryLawCache wraps next with a read-through cache keyed by year.
// Redis failures degrade to reading next directly.
func NewSalaryLawCache(next salarylaw.SalaryLawRepository, rdb redis.Cmdable, ttl time.Duration) salarylaw.SalaryLawRepository {
	if ttl <= 0 {
		ttl = DefaultSalaryLawTTL
	}
	return &salaryLawCache{next: next, rdb: rdb, ttl: ttl}
}

// GetByYear implements salarylaw.SalaryLawRepository.
func (c *salaryLawCache) GetByYear(ctx context.Context, year int) (salarylaw.SalaryLaw, error) {
	key := SalaryLawKey(year)

	cached, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		var law salarylaw.SalaryLaw
		if jsonErr := json.Unmarshal([]byte(cached), &law); jsonErr == nil {
			return law, nil
		}
		slog.Warn("discarding undecodable salary law cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		slog.Warn("salary law cache read failed", "key", key, "error", err)
	}

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		law, err := c.next.GetByYear(ctx, year)
		if err != nil {
			return salarylaw.SalaryLaw{}, err
		}

		payload, err := json.Marshal(law)
		if err == nil {
			if err := c.rdb.Set(ctx, key, string(payload), c.ttl).Err(); err != nil {
				slog.Warn("salary law cache write failed", "key", key, "error", err)
			}
		}
		return law, nil
	})
	if err != nil {
		return salarylaw.SalaryLaw{}, err
	}
	return v.(salarylaw.SalaryLaw), nil
}

// List implements salarylaw.SalaryLawRepository. It is not cached.
func (c *salaryLawCache) List(ctx context.Context) ([]salarylaw.SalaryLaw, error) {
	return c.next.List(ctx)
}

// Upsert implements salarylaw.SalaryLawRepository.
func (c *salaryLawCache) Upsert(ctx context.Context, law salarylaw.SalaryLaw) (salarylaw.SalaryLaw, error) {
	saved, err := c.next.Upsert(ctx, law)
	if err != nil {
		return salarylaw.SalaryLaw{}, err
	}

	key := SalaryLawKey(saved.Year)
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		slog.Error("failed to invalidate salary law cache", "key", key, "error", err)
	}
	return saved, nil
}
