package sortedstorage

import (
	"context"
	"time"

	"github.com/codeprimate/webmaze-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisSortedBoard maintains a score-ranked member board in Redis with TTL support.
type RedisSortedBoard struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisSortedBoard initializes a RedisSortedBoard with the provided Redis client and TTL.
func NewRedisSortedBoard(client *redis.Client, ttlSeconds int) (i.SortedBoard, error) {
	board := &RedisSortedBoard{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// Rank adds a member to the board with a given score and sets expiration if necessary.
func (rsb *RedisSortedBoard) Rank(ctx context.Context, boardKey string, score float64, member string) error {
	_, err := rsb.client.ZAdd(ctx, boardKey, redis.Z{Score: score, Member: member}).Result()
	if err != nil {
		return err
	}

	// Set expiration only if it's not already set
	ttl, err := rsb.client.TTL(ctx, boardKey).Result()
	if err == nil && ttl == -1 {
		_ = rsb.client.Expire(ctx, boardKey, rsb.ttl).Err()
	}

	return nil
}

// Tops retrieves up to amount members with the highest scores, best first,
// without removing them.
func (rsb *RedisSortedBoard) Tops(ctx context.Context, boardKey string, amount int64) ([]i.ScoredMember, error) {
	if amount <= 0 {
		return nil, nil
	}

	entries, err := rsb.client.ZRevRangeWithScores(ctx, boardKey, 0, amount-1).Result()
	if err != nil {
		return nil, err
	}

	members := make([]i.ScoredMember, 0, len(entries))
	for _, entry := range entries {
		member, ok := entry.Member.(string)
		if !ok {
			continue
		}
		members = append(members, i.ScoredMember{Member: member, Score: entry.Score})
	}
	return members, nil
}

// Prune drops everything but the keep highest-scored members, returning
// how many were removed.
func (rsb *RedisSortedBoard) Prune(ctx context.Context, boardKey string, keep int64) (int64, error) {
	mutex := rsb.locker.NewMutex(boardKey + ":prune_lock")
	if err := mutex.Lock(); err != nil {
		return 0, err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	if rsb.client.ZCard(ctx, boardKey).Val() <= keep {
		return 0, nil
	}

	// Ranks ascend by score, so the survivors occupy the last keep slots.
	removed, err := rsb.client.ZRemRangeByRank(ctx, boardKey, 0, -(keep + 1)).Result()
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// Count returns the number of members on the board.
func (rsb *RedisSortedBoard) Count(ctx context.Context, boardKey string) int64 {
	return rsb.client.ZCard(ctx, boardKey).Val()
}
