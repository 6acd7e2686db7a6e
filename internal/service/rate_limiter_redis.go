package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisProfileAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisProfileRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// NewRedisProfileRateLimiter crea un rate limiter respaldado en Redis,
// para despliegues con más de una instancia del servicio.
func NewRedisProfileRateLimiter(client *redis.Client, window time.Duration, max int) RateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisProfileRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "profile:rl:",
	}
}

func (l *redisProfileRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	redisKey := l.prefix + normalizedKey
	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 1
	}

	res, err := l.client.Eval(ctx, redisProfileAllowScript, []string{redisKey}, seconds).Result()
	if err != nil {
		// Ante Redis caído preferimos dejar pasar antes que bloquear
		// la generación de perfiles.
		return true
	}
	count, ok := res.(int64)
	if !ok {
		return true
	}
	return count <= int64(l.max)
}
