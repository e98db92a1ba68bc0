package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ayush/bemestar-report/internal/models"
)

// MemoryStore keeps reports in process memory. Contents are lost on exit.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string]models.Report
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]models.Report), now: time.Now}
}

func (s *MemoryStore) Save(_ context.Context, r *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.reports[r.ID]; exists {
		return fmt.Errorf("report %s already exists", r.ID)
	}
	r.CreatedAt = s.now()
	s.reports[r.ID] = *r
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (*models.Report, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reports[id]
	if !ok {
		return nil, false, nil
	}
	return &r, true, nil
}
