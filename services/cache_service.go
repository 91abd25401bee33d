package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"foodmenu_server/structs"
	"foodmenu_server/structs/tables"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

const cacheMaxRetries = 3

// CacheService wraps redis with retries. A disabled service has no client and every call is a no-op miss.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	if !cfg.Cache.Enabled {
		logger.Warn("Cache disabled, catalog lookups and rate limiting go without redis")
		return &CacheService{logger: logger, config: cfg}
	}
	return NewCacheServiceWithClient(logger, cfg, getRedisClient(cfg.Cache))
}

// NewCacheServiceWithClient uses the given client instead of the process wide pool
func NewCacheServiceWithClient(logger *gecho.Logger, cfg *structs.Config, client *redis.Client) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: client,
	}
}

// getRedisClient returns the process wide client, created on first use
func getRedisClient(cfg *structs.CacheConfig) *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Address,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,

			PoolSize:        cfg.PoolSize,
			MinIdleConns:    cfg.MinIdleConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			PoolTimeout:     cfg.PoolTimeout,
			ConnMaxIdleTime: cfg.IdleTimeout,

			DialTimeout:  cfg.DialTimeout,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,

			MaxRetries:      cfg.MaxRetries,
			MinRetryBackoff: cfg.MinRetryBackoff,
			MaxRetryBackoff: cfg.MaxRetryBackoff,
		})
	})
	return redisClient
}

func (cs *CacheService) Enabled() bool {
	return cs.client != nil
}

func (cs *CacheService) Close() error {
	if cs.client == nil {
		return nil
	}
	return cs.client.Close()
}

// withRetry runs a redis operation with exponential backoff and jitter on connection errors
func (cs *CacheService) withRetry(ctx context.Context, operation func() error) error {
	var lastErr error

	for attempt := 0; attempt <= cacheMaxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == cacheMaxRetries || !isRetryableCacheError(err) {
			break
		}

		backoff := min(100*(1<<attempt), 2000) // ms
		wait := time.Duration(backoff/2+rand.IntN(backoff/2+1)) * time.Millisecond

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return fmt.Errorf("redis operation failed: %w", lastErr)
}

func isRetryableCacheError(err error) bool {
	if err == nil || errors.Is(err, redis.Nil) {
		return false
	}

	errStr := err.Error()
	for _, retryable := range []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
	} {
		if strings.Contains(errStr, retryable) {
			return true
		}
	}
	return false
}

func (cs *CacheService) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if cs.client == nil {
		return nil
	}
	return cs.withRetry(ctx, func() error {
		return cs.client.Set(ctx, key, value, ttl).Err()
	})
}

// Get returns "" without error when the key does not exist
func (cs *CacheService) Get(ctx context.Context, key string) (string, error) {
	if cs.client == nil {
		return "", nil
	}

	var result string
	err := cs.withRetry(ctx, func() error {
		val, err := cs.client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			result = ""
			return nil
		}
		if err != nil {
			return err
		}
		result = val
		return nil
	})
	return result, err
}

func (cs *CacheService) Delete(ctx context.Context, keys ...string) error {
	if cs.client == nil || len(keys) == 0 {
		return nil
	}
	return cs.withRetry(ctx, func() error {
		return cs.client.Del(ctx, keys...).Err()
	})
}

// DeletePattern removes all keys matching a pattern using SCAN
func (cs *CacheService) DeletePattern(ctx context.Context, pattern string) error {
	if cs.client == nil {
		return nil
	}
	return cs.withRetry(ctx, func() error {
		var cursor uint64
		for {
			keys, next, err := cs.client.Scan(ctx, cursor, pattern, 100).Result()
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}
			if len(keys) > 0 {
				if err := cs.client.Del(ctx, keys...).Err(); err != nil {
					return fmt.Errorf("delete failed: %w", err)
				}
			}
			cursor = next
			if cursor == 0 {
				return nil
			}
		}
	})
}

// IncrementRateLimit bumps the counter of a client for a bucket, starting the window on first hit
func (cs *CacheService) IncrementRateLimit(ctx context.Context, ip, bucket string, window time.Duration) (int, error) {
	if cs.client == nil {
		return 0, nil
	}

	key := fmt.Sprintf("ratelimit:%s:%s", bucket, ip)

	var count int64
	err := cs.withRetry(ctx, func() error {
		val, err := cs.client.Incr(ctx, key).Result()
		if err != nil {
			return err
		}
		count = val

		if val == 1 {
			return cs.client.Expire(ctx, key, window).Err()
		}
		return nil
	})
	return int(count), err
}

func (cs *CacheService) Ping(ctx context.Context) error {
	if cs.client == nil {
		return errors.New("cache disabled")
	}
	return cs.client.Ping(ctx).Err()
}

func (cs *CacheService) GetConnectionStats() map[string]any {
	if cs.client == nil {
		return map[string]any{"enabled": false}
	}

	stats := cs.client.PoolStats()
	return map[string]any{
		"enabled":     true,
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}

// ============================================================================
// Catalog lookups
// ============================================================================

func productKey(id uuid.UUID) string { return "catalog:product:" + id.String() }

func itemKey(id uuid.UUID) string { return "catalog:item:" + id.String() }

func (cs *CacheService) GetProduct(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	return getJSON[tables.Product](ctx, cs, productKey(id))
}

func (cs *CacheService) SetProduct(ctx context.Context, product *tables.Product) error {
	return setJSON(ctx, cs, productKey(product.ID), product, cs.catalogTTL())
}

func (cs *CacheService) InvalidateProduct(ctx context.Context, id uuid.UUID) error {
	return cs.Delete(ctx, productKey(id))
}

func (cs *CacheService) GetItem(ctx context.Context, id uuid.UUID) (*tables.Item, error) {
	return getJSON[tables.Item](ctx, cs, itemKey(id))
}

func (cs *CacheService) SetItem(ctx context.Context, item *tables.Item) error {
	return setJSON(ctx, cs, itemKey(item.ID), item, cs.catalogTTL())
}

func (cs *CacheService) InvalidateItem(ctx context.Context, id uuid.UUID) error {
	return cs.Delete(ctx, itemKey(id))
}

// InvalidateCatalog drops every cached product and item
func (cs *CacheService) InvalidateCatalog(ctx context.Context) error {
	cs.logger.Info("Invalidating catalog cache")
	return cs.DeletePattern(ctx, "catalog:*")
}

func (cs *CacheService) catalogTTL() time.Duration {
	if cs.config.Cache.CatalogTTL > 0 {
		return cs.config.Cache.CatalogTTL
	}
	return 5 * time.Minute
}

func setJSON[T any](ctx context.Context, cs *CacheService, key string, value T, ttl time.Duration) error {
	if cs.client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cs.Set(ctx, key, data, ttl)
}

func getJSON[T any](ctx context.Context, cs *CacheService, key string) (*T, error) {
	val, err := cs.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if val == "" {
		return nil, nil
	}

	var result T
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
