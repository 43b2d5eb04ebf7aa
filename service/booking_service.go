package service

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"solareco/domain"
	"solareco/notify"
	"solareco/repository"
)

// BookingService persists bookings and triggers confirmation email and
// phone notifications. Persistence is the critical step; notification
// failures are reported in the result, never escalated.
type BookingService struct {
	repo   repository.BookingRepository
	email  notify.EmailSender
	dialer notify.CallDialer
}

// NewBookingService creates a BookingService with the given collaborators.
func NewBookingService(
	repo repository.BookingRepository,
	email notify.EmailSender,
	dialer notify.CallDialer,
) *BookingService {
	return &BookingService{repo: repo, email: email, dialer: dialer}
}

// Book validates the record, appends it to the booking log and reports the
// independent outcomes of the email and call attempts. Once triggered, the
// notification side effects cannot be aborted.
func (s *BookingService) Book(
	ctx context.Context,
	record domain.BookingRecord,
) (domain.BookingResult, error) {

	if record.Name == "" || record.Phone == "" || record.Email == "" ||
		record.PanelName == "" || record.CompanyName == "" {
		return domain.BookingResult{}, eris.Wrap(domain.ErrInvalidInput, "all booking fields are required")
	}

	result := domain.BookingResult{CallStatus: domain.CallFailed}

	if err := s.repo.Save(ctx, record); err != nil {
		zap.L().Error("booking save failed",
			zap.String("email", record.Email),
			zap.String("panel", record.PanelName),
			zap.Error(err),
		)
	} else {
		result.Saved = true
		zap.L().Info("booking saved",
			zap.String("email", record.Email),
			zap.String("panel", record.PanelName),
		)
	}

	if err := s.email.Send(record.Email, "Solar Panel Booking Confirmation", confirmationBody(record)); err != nil {
		zap.L().Error("booking confirmation email failed",
			zap.String("email", record.Email),
			zap.Error(err),
		)
	} else {
		result.EmailSent = true
	}

	// Malformed numbers are rejected here; no transport call is made.
	if err := notify.ValidateE164(record.Phone); err != nil {
		zap.L().Error("booking call skipped",
			zap.String("phone", record.Phone),
			zap.Error(err),
		)
		return result, nil
	}

	sid, err := s.dialer.Dial(record.Phone, callMessage(record))
	if err != nil {
		zap.L().Error("booking call failed",
			zap.String("phone", record.Phone),
			zap.Error(err),
		)
		return result, nil
	}
	result.CallStatus = domain.CallSuccess
	result.CallSID = sid
	return result, nil
}

func confirmationBody(record domain.BookingRecord) string {
	return fmt.Sprintf(`Hello %s,

Thank you for booking a %s solar panel from %s.
Your request has been received, and our team will contact you soon.

Regards,
SolarEco Team
`, record.Name, record.PanelName, record.CompanyName)
}

func callMessage(record domain.BookingRecord) string {
	return fmt.Sprintf("Hello %s, thank you for booking a %s solar panel from %s. Our team will contact you soon.",
		record.Name, record.PanelName, record.CompanyName)
}
