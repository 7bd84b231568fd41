package receipt

import (
	"sync"

	"github.com/google/uuid"
)

// InMemoryRepository keeps accepted receipts for the lifetime of the
// process. Safe for concurrent use.
type InMemoryRepository struct {
	mu       sync.RWMutex
	receipts map[string]*StoredReceipt
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		receipts: make(map[string]*StoredReceipt),
	}
}

func (s *InMemoryRepository) Save(r Receipt, points int) (string, error) {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.receipts[id] = &StoredReceipt{
		ID:      id,
		Receipt: r,
		Points:  points,
	}
	return id, nil
}

func (s *InMemoryRepository) Find(id string) (*StoredReceipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.receipts[id]
	if !ok {
		return nil, ErrReceiptNotFound
	}
	return stored, nil
}
