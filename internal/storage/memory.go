package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory snapshot store for tests.
type MemoryStore struct {
	mu   sync.Mutex
	blob []byte
	set  bool

	// Saves counts Save calls, for asserting persist-after-mutation.
	Saves int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (r *MemoryStore) Load(ctx context.Context) ([]byte, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.set {
		return nil, false, nil
	}
	out := make([]byte, len(r.blob))
	copy(out, r.blob)
	return out, true, nil
}

func (r *MemoryStore) Save(ctx context.Context, blob []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blob = make([]byte, len(blob))
	copy(r.blob, blob)
	r.set = true
	r.Saves++
	return nil
}
