package repository

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/rotisserie/eris"

	"solareco/domain"
)

// FileBookingRepository appends one line per booking to a text file. The
// mutex gives each append exclusive access so concurrent bookings never
// interleave partial lines.
type FileBookingRepository struct {
	mu   sync.Mutex
	path string
}

// NewFileBookingRepository creates a repository writing to path. The file is
// created on first append.
func NewFileBookingRepository(path string) *FileBookingRepository {
	return &FileBookingRepository{path: path}
}

// Save appends the record in the fixed booking-log layout.
func (r *FileBookingRepository) Save(ctx context.Context, record domain.BookingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return eris.Wrap(err, "booking repository: open log")
	}
	defer f.Close()

	line := fmt.Sprintf("Name: %s, Phone: %s, Email: %s, Panel: %s, Company: %s\n",
		record.Name, record.Phone, record.Email, record.PanelName, record.CompanyName)
	if _, err := f.WriteString(line); err != nil {
		return eris.Wrap(err, "booking repository: append")
	}
	return nil
}
