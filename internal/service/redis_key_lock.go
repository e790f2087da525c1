package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Timeout for the release call, which runs on a fresh context
	redisLockReleaseTimeout = 5 * time.Second

	defaultLockTTL        = 10 * time.Second
	defaultLockRetryDelay = 25 * time.Millisecond
)

// releaseLockScript deletes the key only while it still holds our token,
// so an expired lock taken over by another instance is left alone.
var releaseLockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// RedisKeyLock is a KeyLock shared by every instance talking to the same
// Redis. A holder that dies keeps the key for at most ttl.
type RedisKeyLock struct {
	client     *redis.Client
	log        *logrus.Logger
	ttl        time.Duration
	retryDelay time.Duration
}

func NewRedisKeyLock(client *redis.Client, log *logrus.Logger, ttl time.Duration) *RedisKeyLock {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RedisKeyLock{
		client:     client,
		log:        log,
		ttl:        ttl,
		retryDelay: defaultLockRetryDelay,
	}
}

func (l *RedisKeyLock) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			l.log.Warnf("Failed to acquire redis lock %s: %+v", key, err)
			return nil, fmt.Errorf("acquire redis lock %s: %w", key, err)
		}
		if ok {
			break
		}

		timer := time.NewTimer(l.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// The request context may already be cancelled here.
			releaseCtx, cancel := context.WithTimeout(context.Background(), redisLockReleaseTimeout)
			defer cancel()

			if err := releaseLockScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
				l.log.Warnf("Failed to release redis lock %s: %+v", key, err)
			}
		})
	}, nil
}

var _ KeyLock = (*RedisKeyLock)(nil)
