package service

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"math/big"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"solareco/domain"
	"solareco/notify"
	"solareco/repository"
)

// OTPService issues and verifies email one-time passwords backed by the
// TTL'd session store. At most one live challenge exists per session+email;
// a new request overwrites the prior one.
type OTPService struct {
	store repository.SessionStore
	email notify.EmailSender

	// GenerateCode produces one verification code. Defaults to a uniform
	// 6-digit code from crypto/rand; tests may override it.
	GenerateCode func() string
}

// NewOTPService creates an OTPService over the given store and mailer.
func NewOTPService(store repository.SessionStore, email notify.EmailSender) *OTPService {
	return &OTPService{
		store:        store,
		email:        email,
		GenerateCode: generateCode,
	}
}

// generateCode draws 6 uniformly random digits. Codes are secret material,
// so crypto/rand rather than the injected sampling source.
func generateCode() string {
	limit := big.NewInt(1)
	for i := 0; i < OTPLength; i++ {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := crand.Int(crand.Reader, limit)
	if err != nil {
		panic(fmt.Sprintf("otp: entropy source failed: %v", err))
	}
	return fmt.Sprintf("%0*d", OTPLength, n)
}

func otpKey(sessionID, email string) string {
	return fmt.Sprintf("otp:%s:%s", sessionID, email)
}

func verifiedKey(sessionID, email string) string {
	return fmt.Sprintf("verified:%s:%s", sessionID, email)
}

// RequestOTP generates a fresh challenge, stores it with the fixed TTL and
// emails it to the address being verified.
func (s *OTPService) RequestOTP(ctx context.Context, sessionID, email, displayName string) error {
	if email == "" {
		return eris.Wrap(domain.ErrInvalidInput, "email is required")
	}
	if displayName == "" {
		displayName = "User"
	}

	code := s.GenerateCode()
	if err := s.store.Set(ctx, otpKey(sessionID, email), code, OTPTTL); err != nil {
		return eris.Wrap(err, "otp: store challenge")
	}
	zap.L().Info("otp challenge created", zap.String("email", email))

	if err := s.email.Send(email, "SolarEco - Your Verification Code", otpBody(displayName, code)); err != nil {
		zap.L().Error("otp email failed", zap.String("email", email), zap.Error(err))
		return err
	}
	return nil
}

// VerifyOTP checks the submitted code against the live challenge. On
// success the challenge is consumed and the email is flagged verified for
// this session; a second verification with the same code fails.
func (s *OTPService) VerifyOTP(ctx context.Context, sessionID, email, code string) error {
	if email == "" || code == "" {
		return eris.Wrap(domain.ErrInvalidInput, "email and otp are required")
	}

	stored, ok := s.store.Get(ctx, otpKey(sessionID, email))
	if !ok {
		return eris.Wrap(domain.ErrOTP, "otp expired or not found")
	}
	if stored != code {
		zap.L().Warn("otp mismatch", zap.String("email", email))
		return eris.Wrap(domain.ErrOTP, "invalid verification code")
	}

	if err := s.store.Delete(ctx, otpKey(sessionID, email)); err != nil {
		return eris.Wrap(err, "otp: consume challenge")
	}
	if err := s.store.Set(ctx, verifiedKey(sessionID, email), "true", OTPTTL); err != nil {
		return eris.Wrap(err, "otp: flag verified")
	}
	zap.L().Info("otp verified", zap.String("email", email))
	return nil
}

// IsVerified reports whether the email was verified in this session.
func (s *OTPService) IsVerified(ctx context.Context, sessionID, email string) bool {
	_, ok := s.store.Get(ctx, verifiedKey(sessionID, email))
	return ok
}

func otpBody(displayName, code string) string {
	return fmt.Sprintf(`Hello %s,

Your verification code for SolarEco account registration is: %s

This code will expire in 10 minutes.

If you didn't request this code, please ignore this email.

Regards,
SolarEco Team
`, displayName, code)
}
