package usecase

import (
	"context"
	"sync"
)

// keyLock hands out one lock per campaign id. Entries are dropped once no
// caller holds or waits for them.
type keyLock struct {
	mu      sync.Mutex
	entries map[int64]*keyEntry
}

type keyEntry struct {
	sem  chan struct{}
	refs int
}

func newKeyLock() *keyLock {
	return &keyLock{entries: make(map[int64]*keyEntry)}
}

// Lock blocks until the lock for id is held or ctx is done. The returned
// func releases it.
func (k *keyLock) Lock(ctx context.Context, id int64) (func(), error) {
	k.mu.Lock()
	e, ok := k.entries[id]
	if !ok {
		e = &keyEntry{sem: make(chan struct{}, 1)}
		k.entries[id] = e
	}
	e.refs++
	k.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
		return func() {
			<-e.sem
			k.release(id, e)
		}, nil
	case <-ctx.Done():
		k.release(id, e)
		return nil, ctx.Err()
	}
}

func (k *keyLock) release(id int64, e *keyEntry) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(k.entries, id)
	}
}
