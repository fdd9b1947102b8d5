package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"loyaltybot/internal/pkg/clock"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore backs session state with a networked cache so several bot
// instances can share one conversation. The TTL is enforced server-side on
// top of the LastUpdated check, so a stale replica entry still reads as
// absent.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	clock  clock.Clock
}

func NewRedisStore(client *redis.Client, ttl time.Duration, clk clock.Clock) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		clock:  clk,
	}
}

func redisKey(identity int64) string {
	return redisKeyPrefix + strconv.FormatInt(identity, 10)
}

func (s *RedisStore) Get(ctx context.Context, identity int64) (State, bool) {
	raw, err := s.client.Get(ctx, redisKey(identity)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("session read failed", "identity", identity, "error", err)
		}
		return State{}, false
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		// Corrupt record: treat as expired.
		s.Clear(ctx, identity)
		return State{}, false
	}

	if s.clock.Now().Sub(state.LastUpdated) > s.ttl {
		s.Clear(ctx, identity)
		return State{}, false
	}
	return state, true
}

func (s *RedisStore) Put(ctx context.Context, identity int64, state State) {
	state.LastUpdated = s.clock.Now()

	raw, err := json.Marshal(state)
	if err != nil {
		slog.Error("session marshal failed", "identity", identity, "error", err)
		return
	}
	if err := s.client.Set(ctx, redisKey(identity), raw, s.ttl).Err(); err != nil {
		slog.Warn("session write failed", "identity", identity, "error", err)
	}
}

func (s *RedisStore) Clear(ctx context.Context, identity int64) {
	if err := s.client.Del(ctx, redisKey(identity)).Err(); err != nil {
		slog.Warn("session clear failed", "identity", identity, "error", err)
	}
}
