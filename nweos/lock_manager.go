package nweos

import "sync"

// operationType distinguishes read operations, which may run concurrently,
// from write operations, which are exclusive.
type operationType int

const (
	readOperation operationType = iota
	writeOperation
)

// lockManager centralizes the in-process locking strategy so every store
// operation takes the right kind of lock and never re-locks. Cross-process
// safety is handled separately by the folder's flock file.
type lockManager struct {
	mu *sync.RWMutex
}

func newLockManager() *lockManager {
	return &lockManager{mu: &sync.RWMutex{}}
}

// execute runs fn under the lock appropriate for the operation type. The
// lock is released via defer, so fn panicking cannot leak it.
func (lm *lockManager) execute(opType operationType, fn func() error) error {
	switch opType {
	case readOperation:
		lm.mu.RLock()
		defer lm.mu.RUnlock()
	case writeOperation:
		lm.mu.Lock()
		defer lm.mu.Unlock()
	}
	return fn()
}

// executeWithResult is execute for functions that also return a value.
// Callers type-assert the result.
func (lm *lockManager) executeWithResult(opType operationType, fn func() (interface{}, error)) (interface{}, error) {
	switch opType {
	case readOperation:
		lm.mu.RLock()
		defer lm.mu.RUnlock()
	case writeOperation:
		lm.mu.Lock()
		defer lm.mu.Unlock()
	}
	return fn()
}
