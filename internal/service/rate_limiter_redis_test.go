package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockRedisEvaler struct {
	lastKeys []string
	lastArgs []interface{}
	result   int64
	err      error
}

func (m *mockRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	m.lastKeys = keys
	m.lastArgs = args
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	cmd.SetVal(m.result)
	return cmd
}

func TestRedisProfileRateLimiterAllow(t *testing.T) {
	t.Run("nil receiver fail-open", func(t *testing.T) {
		var l *redisProfileRateLimiter
		if !l.Allow("10.0.0.1") {
			t.Fatalf("expected fail-open for nil limiter")
		}
	})

	t.Run("empty key rejected", func(t *testing.T) {
		l := &redisProfileRateLimiter{
			client: &mockRedisEvaler{result: 1},
			window: time.Minute,
			max:    3,
			prefix: "profile:rl:",
		}
		if l.Allow("   ") {
			t.Fatalf("expected empty key to be rejected")
		}
	})

	t.Run("allow when count within max", func(t *testing.T) {
		mock := &mockRedisEvaler{result: 2}
		l := &redisProfileRateLimiter{
			client: mock,
			window: time.Minute,
			max:    3,
			prefix: "profile:rl:",
		}
		if !l.Allow("10.0.0.1") {
			t.Fatalf("expected count 2 of 3 to pass")
		}
		if len(mock.lastKeys) != 1 || mock.lastKeys[0] != "profile:rl:10.0.0.1" {
			t.Fatalf("unexpected redis key: %v", mock.lastKeys)
		}
	})

	t.Run("reject when count over max", func(t *testing.T) {
		l := &redisProfileRateLimiter{
			client: &mockRedisEvaler{result: 4},
			window: time.Minute,
			max:    3,
			prefix: "profile:rl:",
		}
		if l.Allow("10.0.0.1") {
			t.Fatalf("expected count 4 of 3 to be rejected")
		}
	})

	t.Run("fail-open on redis error", func(t *testing.T) {
		l := &redisProfileRateLimiter{
			client: &mockRedisEvaler{err: errors.New("redis down")},
			window: time.Minute,
			max:    1,
			prefix: "profile:rl:",
		}
		if !l.Allow("10.0.0.1") {
			t.Fatalf("expected redis failure to fail open")
		}
	})
}

func TestNewRedisProfileRateLimiterNilClient(t *testing.T) {
	if l := NewRedisProfileRateLimiter(nil, time.Minute, 3); l != nil {
		t.Fatalf("expected nil limiter for nil client")
	}
}
