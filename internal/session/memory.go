package session

import (
	"context"
	"sync"
	"time"

	"github.com/sadpe/extractor/internal/console"
)

type memoryEntry struct {
	state   *console.Console
	expires time.Time
}

// MemoryStore mantém os consoles em memória do processo.
type MemoryStore struct {
	mu    sync.Mutex
	store map[string]memoryEntry
	now   func() time.Time
}

// NewMemoryStore cria store vazio.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{store: make(map[string]memoryEntry), now: time.Now}
}

// Load devolve uma cópia do estado salvo.
func (m *MemoryStore) Load(ctx context.Context, id string) (*console.Console, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	if m.now().After(entry.expires) {
		delete(m.store, id)
		return nil, ErrNotFound
	}
	return entry.state.Clone(), nil
}

// Save grava uma cópia do estado e remove entradas expiradas.
func (m *MemoryStore) Save(ctx context.Context, id string, state *console.Console, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.store[id] = memoryEntry{state: state.Clone(), expires: now.Add(ttl)}

	for k, entry := range m.store {
		if now.After(entry.expires) {
			delete(m.store, k)
		}
	}
	return nil
}

// Delete remove o estado.
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, id)
	return nil
}

// Ping sempre responde disponível.
func (m *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Len informa quantos consoles estão guardados.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.store)
}
