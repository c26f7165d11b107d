package sortedstorage

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-robot/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const defaultCapacity = 100

// RedisLeaderboard keeps a bounded sorted set per key in Redis with TTL
// support. Lower scores rank first.
type RedisLeaderboard struct {
	client   *redis.Client
	locker   *redsync.Redsync
	ttl      time.Duration
	capacity int64
}

// NewRedisLeaderboard initializes a RedisLeaderboard. Each key keeps at most
// capacity members and expires ttl after its last write; a zero ttl never
// expires and a non-positive capacity uses the default.
func NewRedisLeaderboard(client *redis.Client, ttl time.Duration, capacity int64) *RedisLeaderboard {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	pool := goredis.NewPool(client)
	return &RedisLeaderboard{
		client:   client,
		locker:   redsync.New(pool),
		ttl:      ttl,
		capacity: capacity,
	}
}

// Record adds a member with the given score and trims the set back to its
// capacity. The add and the trim run under a distributed lock so concurrent
// writers never trim away each other's fresh entries.
func (rl *RedisLeaderboard) Record(ctx context.Context, key string, score float64, member string) error {
	mutex := rl.locker.NewMutex(key + ":trim_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("locking %s: %w", key, err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	if err := rl.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return err
	}
	if err := rl.client.ZRemRangeByRank(ctx, key, rl.capacity, -1).Err(); err != nil {
		return err
	}
	if rl.ttl > 0 {
		_ = rl.client.Expire(ctx, key, rl.ttl).Err()
	}
	return nil
}

// Top retrieves up to n members with the lowest scores.
func (rl *RedisLeaderboard) Top(ctx context.Context, key string, n int64) ([]i.ScoredMember, error) {
	if n <= 0 {
		return nil, nil
	}
	zs, err := rl.client.ZRangeWithScores(ctx, key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	members := make([]i.ScoredMember, 0, len(zs))
	for _, z := range zs {
		member, _ := z.Member.(string)
		members = append(members, i.ScoredMember{Member: member, Score: z.Score})
	}
	return members, nil
}

// Count returns the number of members stored under key.
func (rl *RedisLeaderboard) Count(ctx context.Context, key string) int64 {
	return rl.client.ZCard(ctx, key).Val()
}
