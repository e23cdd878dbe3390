package waypoint

import (
	"context"
	"errors"
	"fmt"
	"time"

	"halorun-backend/internal/components/assert"
	"halorun-backend/internal/components/telemetry"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

const (
	report_cache_get_auth           = "cache.get-auth"
	report_cache_get_stats_response = "cache.get-stats-response"
)

type CacheOptions struct {
	Capacity int
	Ttl      time.Duration
}

type CachedClientOptions struct {
	Session CacheOptions
	Stats   CacheOptions
}

// DefaultCachedClientOptions keeps sessions for hours and statistics for minutes.
func DefaultCachedClientOptions() CachedClientOptions {
	return CachedClientOptions{
		Session: CacheOptions{Capacity: 10, Ttl: time.Hour * 4},
		Stats:   CacheOptions{Capacity: 1000, Ttl: time.Minute * 10},
	}
}

// result is what gets cached, errors are cached just like values so a failing
// request is replayed until it expires.
type result[T any] struct {
	value T
	err   error
}

// CachedClient wraps an API with two independent caches, one for sessions and one for statistics.
//
// Concurrent misses on the same key share a single underlying call.
type CachedClient struct {
	inner    API
	sessions *expirable.LRU[Credentials, result[SessionToken]]
	stats    *expirable.LRU[StatsRequest, result[StatsResponse]]
	flights  *singleflight.Group
	tel      telemetry.API
}

func NewCachedClient(inner API, opts CachedClientOptions, tel telemetry.API) CachedClient {
	assert.NotNil(inner)
	assert.NotNil(tel)
	assert.Positive(opts.Session.Capacity)
	assert.Positive(opts.Stats.Capacity)

	return CachedClient{
		inner:    inner,
		sessions: expirable.NewLRU[Credentials, result[SessionToken]](opts.Session.Capacity, nil, opts.Session.Ttl),
		stats:    expirable.NewLRU[StatsRequest, result[StatsResponse]](opts.Stats.Capacity, nil, opts.Stats.Ttl),
		flights:  &singleflight.Group{},
		tel:      telemetry.NewScopedAPI("waypoint_scraper", tel),
	}
}

func (c CachedClient) GetAuth(ctx context.Context, credentials Credentials) (SessionToken, error) {
	flightKey := fmt.Sprintf("auth:%q:%q", credentials.Login, credentials.Password)
	return getCached(ctx, c, report_cache_get_auth, c.sessions, credentials, flightKey, func(ctx context.Context) (SessionToken, error) {
		return c.inner.GetAuth(ctx, credentials)
	})
}

func (c CachedClient) GetStatsResponse(ctx context.Context, token SessionToken, req StatsRequest) (StatsResponse, error) {
	flightKey := fmt.Sprintf("stats:%q:%d:%d", req.Player, req.Game, req.CampaignMode)
	return getCached(ctx, c, report_cache_get_stats_response, c.stats, req, flightKey, func(ctx context.Context) (StatsResponse, error) {
		return c.inner.GetStatsResponse(ctx, token, req)
	})
}

// interrupted is true for errors caused by a caller giving up rather than by waypoint.
func interrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// getCached returns the cached result of key or runs fetch once for all concurrent callers.
//
// fetch runs detached from the cancellation of whichever caller started it, each caller
// still stops waiting when its own ctx is done.
func getCached[K comparable, T any](
	ctx context.Context,
	c CachedClient,
	reportId string,
	cache *expirable.LRU[K, result[T]],
	key K,
	flightKey string,
	fetch func(ctx context.Context) (T, error),
) (T, error) {
	cached, hit := cache.Get(key)
	if hit {
		c.tel.ReportDebug(reportId, "hit", cached.err != nil)
		return cached.value, cached.err
	}

	c.tel.ReportDebug(reportId, "miss")
	shared := context.WithoutCancel(ctx)
	// the error is always carried inside the result, never returned by singleflight itself
	flight := c.flights.DoChan(flightKey, func() (any, error) {
		cached, hit := cache.Get(key)
		if hit {
			return cached, nil
		}
		value, err := fetch(shared)
		res := result[T]{value: value, err: err}
		if interrupted(err) {
			c.tel.ReportWarning(reportId, "not caching interrupted request", err)
			return res, nil
		}
		cache.Add(key, res)
		return res, nil
	})

	select {
	case out := <-flight:
		res := out.Val.(result[T])
		c.tel.ReportCount(reportId, int64(cache.Len()))
		return res.value, res.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
