package service

import (
	"context"
	"errors"
)

// ErrLockHeld is returned by TryLock when another holder owns the key.
var ErrLockHeld = errors.New("lock is held by another owner")

// Locker provides short-lived mutual exclusion across API replicas.
type Locker interface {
	// TryLock acquires key without waiting. The returned release func is safe to call once.
	TryLock(ctx context.Context, key string) (release func(context.Context) error, err error)
}
