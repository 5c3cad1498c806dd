package services

import "sync"

// OperatorLocks serialises shift writes per operator inside one process.
type OperatorLocks struct {
	mu    sync.Mutex
	locks map[string]*operatorLock
}

type operatorLock struct {
	mu   sync.Mutex
	refs int
}

// NewOperatorLocks creates an empty lock table.
func NewOperatorLocks() *OperatorLocks {
	return &OperatorLocks{locks: make(map[string]*operatorLock)}
}

// Lock blocks until the operator's lock is held and returns its release function.
func (l *OperatorLocks) Lock(operatorID string) (unlock func()) {
	l.mu.Lock()
	lk, ok := l.locks[operatorID]
	if !ok {
		lk = &operatorLock{}
		l.locks[operatorID] = lk
	}
	lk.refs++
	l.mu.Unlock()

	lk.mu.Lock()
	return func() {
		lk.mu.Unlock()
		l.mu.Lock()
		lk.refs--
		if lk.refs == 0 {
			delete(l.locks, operatorID)
		}
		l.mu.Unlock()
	}
}

func (l *OperatorLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
