package eventlock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// releaseScript deletes the lock only if the caller still owns it, so a
// slow holder cannot release a lock re-acquired after TTL expiry.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
    return redis.call("del", KEYS[1])
end
return 0
`)

// Redis is the distributed locker for multi-instance deployments.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

func (r *Redis) Acquire(ctx context.Context, challengeID int, marketKey string) (func(), error) {
	key := lockKey(challengeID, marketKey)
	token := uuid.NewString()

	ok, err := r.rdb.SetNX(ctx, key, token, r.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAlreadyLocked
	}

	return func() {
		if err := releaseScript.Run(context.Background(), r.rdb, []string{key}, token).Err(); err != nil && err != redis.Nil {
			zap.L().Warn("failed to release event lock", zap.String("key", key), zap.Error(err))
		}
	}, nil
}
