package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/programmerrush/api-bills/internal/provider"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter is a distributed token-bucket limiter. The bucket state
// lives in a Redis hash and is refilled and drained inside one Lua script so
// concurrent API replicas never race on the same bucket.
type RedisRateLimiter struct {
	redisClient   *redis.Client
	namespace     provider.RedisNamespace
	rate          float64       // tokens added per second
	bucketSize    float64       // bucket capacity
	keyExpiration time.Duration // idle buckets expire and refill from full
	luaScript     *redis.Script
}

// NewRedisRateLimiter creates a new Redis-based rate limiter.
func NewRedisRateLimiter(redisClient *redis.Client, ns provider.RedisNamespace, rate float64, size float64, expiration time.Duration) *RedisRateLimiter {
	const script = `
		local tokens_key = KEYS[1]
		local rate = tonumber(ARGV[1])
		local capacity = tonumber(ARGV[2])
		local now = tonumber(ARGV[3])
		local requested = tonumber(ARGV[4])
		local expire_seconds = math.ceil(tonumber(ARGV[5]))

		local bucket = redis.call("HGETALL", tokens_key)
		local tokens
		local last_refill

		if #bucket == 0 then
			tokens = capacity
			last_refill = now
		else
			for i = 1, #bucket, 2 do
				if bucket[i] == "tokens" then
					tokens = tonumber(bucket[i+1])
				elseif bucket[i] == "last_refill" then
					last_refill = tonumber(bucket[i+1])
				end
			end

			local elapsed = now - last_refill
			tokens = tokens + elapsed * rate
			last_refill = now
			if tokens > capacity then
				tokens = capacity
			end
		end

		if tokens >= requested then
			tokens = tokens - requested
			redis.call("HSET", tokens_key, "tokens", tokens, "last_refill", last_refill)
			redis.call("EXPIRE", tokens_key, expire_seconds)
			return 1
		else
			return 0
		end
	`

	return &RedisRateLimiter{
		redisClient:   redisClient,
		namespace:     ns,
		rate:          rate,
		bucketSize:    size,
		keyExpiration: expiration,
		luaScript:     redis.NewScript(script),
	}
}

// Allow checks if a request from the given identifier is allowed.
func (l *RedisRateLimiter) Allow(ctx context.Context, identifier string) (bool, error) {
	key := fmt.Sprintf("%sratelimit:%s", l.namespace, identifier)

	now := float64(time.Now().UnixNano()) / 1e9

	result, err := l.luaScript.Run(ctx, l.redisClient, []string{key}, l.rate, l.bucketSize, now, 1.0, l.keyExpiration.Seconds()).Result()
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit script: %w", err)
	}

	return result == int64(1), nil
}
