package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockNotAcquired is returned by TryLock when another holder owns the key.
var ErrLockNotAcquired = errors.New("lock is held by another client")

// ErrLockNotHeld is returned when releasing or refreshing a lock this client no longer owns.
var ErrLockNotHeld = errors.New("lock was not held by this client")

var unlockScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`)

var refreshScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("PEXPIRE", KEYS[1], ARGV[2])
	else
		return 0
	end
`)

// LockOptions represents options for distributed locking
type LockOptions struct {
	// TTL is the lock expiration time
	TTL time.Duration
	// LockNamespace prefixes the key as namespace::key
	LockNamespace string
}

// Lock represents a distributed lock
type Lock struct {
	client *Client
	key    string
	value  string
	opts   LockOptions
}

// NewLock creates a new distributed lock
func NewLock(client *Client, key string, opts LockOptions) *Lock {
	if opts.TTL <= 0 {
		opts.TTL = 30 * time.Second
	}
	return &Lock{
		client: client,
		key:    key,
		value:  uuid.NewString(),
		opts:   opts,
	}
}

// Key returns the full Redis key of the lock.
func (l *Lock) Key() string {
	if l.opts.LockNamespace != "" {
		return l.opts.LockNamespace + "::" + l.key
	}
	return l.key
}

// TryLock makes a single attempt to acquire the lock
func (l *Lock) TryLock(ctx context.Context) error {
	acquired, err := l.client.GetClient().SetNX(ctx, l.Key(), l.value, l.opts.TTL).Result()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !acquired {
		return ErrLockNotAcquired
	}
	return nil
}

// Unlock releases the lock if this client still holds it
func (l *Lock) Unlock(ctx context.Context) error {
	result, err := unlockScript.Run(ctx, l.client.GetClient(), []string{l.Key()}, l.value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// Refresh extends the lock's TTL
func (l *Lock) Refresh(ctx context.Context) error {
	result, err := refreshScript.Run(ctx, l.client.GetClient(), []string{l.Key()}, l.value, l.opts.TTL.Milliseconds()).Int64()
	if err != nil {
		return fmt.Errorf("failed to refresh lock: %w", err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}
