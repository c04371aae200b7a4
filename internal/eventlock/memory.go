package eventlock

import (
	"context"
	"sync"
	"time"
)

// Memory is the in-process locker, used when no Redis address is
// configured and in tests. Expired entries are reaped lazily on acquire.
type Memory struct {
	mu    sync.Mutex
	ttl   time.Duration
	locks map[string]time.Time
	now   func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:   ttl,
		locks: make(map[string]time.Time),
		now:   time.Now,
	}
}

func (m *Memory) Acquire(_ context.Context, challengeID int, marketKey string) (func(), error) {
	key := lockKey(challengeID, marketKey)

	m.mu.Lock()
	defer m.mu.Unlock()

	if exp, ok := m.locks[key]; ok && m.now().Before(exp) {
		return nil, ErrAlreadyLocked
	}
	m.locks[key] = m.now().Add(m.ttl)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.locks, key)
	}, nil
}
