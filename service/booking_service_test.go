package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solareco/domain"
	"solareco/repository"
)

type mockEmailSender struct {
	Sent       []string // recipient addresses
	ForceError bool
}

func (m *mockEmailSender) Send(to, subject, body string) error {
	if m.ForceError {
		return errors.New("smtp unreachable")
	}
	m.Sent = append(m.Sent, to)
	return nil
}

type mockDialer struct {
	Dialed     []string
	ForceError bool
}

func (m *mockDialer) Dial(toPhone, message string) (string, error) {
	if m.ForceError {
		return "", errors.New("telephony unavailable")
	}
	m.Dialed = append(m.Dialed, toPhone)
	return "CA0000", nil
}

type failingBookingRepo struct{}

func (failingBookingRepo) Save(ctx context.Context, record domain.BookingRecord) error {
	return errors.New("disk full")
}

func validBooking() domain.BookingRecord {
	return domain.BookingRecord{
		Name:        "Asha",
		Phone:       "+919876543210",
		Email:       "asha@example.com",
		PanelName:   "Waaree",
		CompanyName: "SolarEco",
	}
}

func TestBookHappyPath(t *testing.T) {
	repo := repository.NewMemoryBookingRepository()
	email := &mockEmailSender{}
	dialer := &mockDialer{}
	svc := NewBookingService(repo, email, dialer)

	result, err := svc.Book(context.Background(), validBooking())
	require.NoError(t, err)

	assert.True(t, result.Saved)
	assert.True(t, result.EmailSent)
	assert.Equal(t, domain.CallSuccess, result.CallStatus)
	assert.Equal(t, "CA0000", result.CallSID)
	require.Len(t, repo.Records, 1)
	assert.Equal(t, []string{"asha@example.com"}, email.Sent)
	assert.Equal(t, []string{"+919876543210"}, dialer.Dialed)
}

func TestBookMissingFieldRejected(t *testing.T) {
	repo := repository.NewMemoryBookingRepository()
	svc := NewBookingService(repo, &mockEmailSender{}, &mockDialer{})

	record := validBooking()
	record.Email = ""

	_, err := svc.Book(context.Background(), record)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, repo.Records)
}

func TestBookMalformedPhoneSkipsDial(t *testing.T) {
	repo := repository.NewMemoryBookingRepository()
	dialer := &mockDialer{}
	svc := NewBookingService(repo, &mockEmailSender{}, dialer)

	record := validBooking()
	record.Phone = "9198765" // no leading '+', too short

	result, err := svc.Book(context.Background(), record)
	require.NoError(t, err)

	assert.True(t, result.Saved)
	assert.Equal(t, domain.CallFailed, result.CallStatus)
	assert.Empty(t, dialer.Dialed, "no transport call for malformed numbers")
}

func TestBookEmailFailureDoesNotFailBooking(t *testing.T) {
	repo := repository.NewMemoryBookingRepository()
	dialer := &mockDialer{}
	svc := NewBookingService(repo, &mockEmailSender{ForceError: true}, dialer)

	result, err := svc.Book(context.Background(), validBooking())
	require.NoError(t, err)

	assert.True(t, result.Saved)
	assert.False(t, result.EmailSent)
	assert.Equal(t, domain.CallSuccess, result.CallStatus, "call still attempted")
}

func TestBookCallFailureReported(t *testing.T) {
	repo := repository.NewMemoryBookingRepository()
	svc := NewBookingService(repo, &mockEmailSender{}, &mockDialer{ForceError: true})

	result, err := svc.Book(context.Background(), validBooking())
	require.NoError(t, err)

	assert.True(t, result.Saved)
	assert.True(t, result.EmailSent)
	assert.Equal(t, domain.CallFailed, result.CallStatus)
}

func TestBookSaveFailureStillNotifies(t *testing.T) {
	email := &mockEmailSender{}
	dialer := &mockDialer{}
	svc := NewBookingService(failingBookingRepo{}, email, dialer)

	result, err := svc.Book(context.Background(), validBooking())
	require.NoError(t, err)

	assert.False(t, result.Saved)
	assert.True(t, result.EmailSent)
	assert.Equal(t, domain.CallSuccess, result.CallStatus)
}
