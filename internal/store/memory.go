package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Storage implementation used in tests and in
// server mode when no database path is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	deals map[uuid.UUID]SavedDeal
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{deals: make(map[uuid.UUID]SavedDeal)}
}

func (m *MemoryStore) CreateDeal(deal *SavedDeal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if deal.ID == uuid.Nil {
		deal.ID = uuid.New()
	}
	now := time.Now().UTC()
	if deal.CreatedAt.IsZero() {
		deal.CreatedAt = now
	}
	deal.UpdatedAt = now
	m.deals[deal.ID] = *deal
	return nil
}

func (m *MemoryStore) GetDeal(id uuid.UUID) (*SavedDeal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	deal, ok := m.deals[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &deal, nil
}

func (m *MemoryStore) UpdateDeal(deal *SavedDeal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.deals[deal.ID]; !ok {
		return ErrNotFound
	}
	deal.UpdatedAt = time.Now().UTC()
	m.deals[deal.ID] = *deal
	return nil
}

func (m *MemoryStore) DeleteDeal(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.deals[id]; !ok {
		return ErrNotFound
	}
	delete(m.deals, id)
	return nil
}

func (m *MemoryStore) ListDeals() ([]*SavedDeal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	deals := make([]*SavedDeal, 0, len(m.deals))
	for id := range m.deals {
		deal := m.deals[id]
		deals = append(deals, &deal)
	}
	return deals, nil
}

func (m *MemoryStore) Close() error {
	return nil
}
