package repository

import (
	"context"
	"sync"

	"solareco/domain"
)

// MemoryBookingRepository is an in-memory implementation of
// BookingRepository for tests.
type MemoryBookingRepository struct {
	mu      sync.Mutex
	Records []domain.BookingRecord
}

// NewMemoryBookingRepository creates an empty in-memory booking repository.
func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{}
}

// Save stores the record in memory.
func (r *MemoryBookingRepository) Save(ctx context.Context, record domain.BookingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Records = append(r.Records, record)
	return nil
}
