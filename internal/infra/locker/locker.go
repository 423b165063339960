package locker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// unlockScript удаляет ключ, только если значение совпадает с токеном владельца
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

const pollInterval = 25 * time.Millisecond

// Locker распределенная блокировка на Redis (SET NX + токен владельца)
type Locker struct {
	client redis.UniversalClient
	prefix string
}

// New создает Locker; prefix добавляется ко всем ключам
func New(client redis.UniversalClient, prefix string) *Locker {
	return &Locker{client: client, prefix: prefix}
}

// TryLock пытается взять блокировку один раз
// Возвращает токен владельца, если блокировка получена
func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, string, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, l.prefix+key, token, ttl).Result()
	if err != nil {
		return false, "", fmt.Errorf("%w: setnx %s: %v", ErrRedis, key, err)
	}
	if !ok {
		return false, "", nil
	}
	return true, token, nil
}

// Lock ждет блокировку не дольше wait
func (l *Locker) Lock(ctx context.Context, key string, ttl, wait time.Duration) (string, error) {
	deadline := time.Now().Add(wait)

	for {
		ok, token, err := l.TryLock(ctx, key, ttl)
		if err != nil {
			return "", err
		}
		if ok {
			return token, nil
		}
		if !time.Now().Before(deadline) {
			return "", fmt.Errorf("%w: %s", ErrLockTimeout, key)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

// Unlock снимает блокировку, если она принадлежит token
func (l *Locker) Unlock(ctx context.Context, key, token string) error {
	deleted, err := unlockScript.Run(ctx, l.client, []string{l.prefix + key}, token).Int()
	if err != nil {
		return fmt.Errorf("%w: unlock %s: %v", ErrRedis, key, err)
	}
	if deleted == 0 {
		return fmt.Errorf("%w: %s", ErrLockNotOwned, key)
	}
	return nil
}
