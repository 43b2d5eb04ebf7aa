package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solareco/domain"
)

func TestFileBookingRepositoryLineLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booking.txt")
	repo := NewFileBookingRepository(path)

	err := repo.Save(context.Background(), domain.BookingRecord{
		Name:        "Asha",
		Phone:       "+919876543210",
		Email:       "asha@example.com",
		PanelName:   "Waaree",
		CompanyName: "SolarEco",
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Name: Asha, Phone: +919876543210, Email: asha@example.com, Panel: Waaree, Company: SolarEco\n",
		string(raw))
}

func TestFileBookingRepositoryAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booking.txt")
	repo := NewFileBookingRepository(path)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.BookingRecord{Name: "A", Phone: "+1", Email: "a@x", PanelName: "P", CompanyName: "C"}))
	require.NoError(t, repo.Save(ctx, domain.BookingRecord{Name: "B", Phone: "+2", Email: "b@x", PanelName: "P", CompanyName: "C"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Name: A,"))
	assert.True(t, strings.HasPrefix(lines[1], "Name: B,"))
}

func TestFileBookingRepositoryConcurrentAppendsDoNotInterleave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booking.txt")
	repo := NewFileBookingRepository(path)
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Save(ctx, domain.BookingRecord{
				Name: "Writer", Phone: "+911234567890", Email: "w@x",
				PanelName: "Panel", CompanyName: "Co",
			})
		}()
	}
	wg.Wait()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
	require.Len(t, lines, writers)
	for _, line := range lines {
		assert.Equal(t, "Name: Writer, Phone: +911234567890, Email: w@x, Panel: Panel, Company: Co", line)
	}
}
