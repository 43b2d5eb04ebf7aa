package repository

import (
	"context"

	"solareco/domain"
)

// BookingRepository is an append-only sink for confirmed bookings. Records
// are never mutated or deleted.
type BookingRepository interface {
	Save(ctx context.Context, record domain.BookingRecord) error
}
