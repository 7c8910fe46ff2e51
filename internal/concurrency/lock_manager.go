package concurrency

import (
	"sync"
)

// Shared lock keys. Every read-modify-write of the user document takes
// KeyUserState for its whole load, mutate, save section, so concurrent
// writers (HTTP handlers, worker jobs) cannot lose each other's updates.
// KeyMinigameProgress guards the minigame document the same way.
const (
	KeyUserState        = "user_state"
	KeyMinigameProgress = "minigame_progress"
)

// LockManager handles named locks
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// TryAcquire attempts to take the lock for key without blocking.
// Returns false when another caller currently holds it. Callers that get
// true must call Release(key) on every exit path.
func (lm *LockManager) TryAcquire(key string) bool {
	return lm.GetLock(key).TryLock()
}

// Release unlocks the lock for key. Must only be called after a successful
// TryAcquire.
func (lm *LockManager) Release(key string) {
	lm.GetLock(key).Unlock()
}
