package syncutil

import "sync"

// KeyedMutex serializes work per string key. Locks are never evicted; the
// key space here (user IDs, room IDs) is small enough that this does not
// matter in practice.
type KeyedMutex struct {
	locks sync.Map
}

func (m *KeyedMutex) Lock(key string) {
	mu, _ := m.locks.LoadOrStore(key, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
}

func (m *KeyedMutex) Unlock(key string) {
	mu, ok := m.locks.Load(key)
	if !ok {
		return
	}
	mu.(*sync.Mutex).Unlock()
}
