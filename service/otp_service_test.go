package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solareco/domain"
	"solareco/repository"
)

func newOTPFixture() (*OTPService, *repository.MemorySessionStore, *mockEmailSender) {
	store := repository.NewMemorySessionStore()
	email := &mockEmailSender{}
	svc := NewOTPService(store, email)
	return svc, store, email
}

func TestOTPRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _, email := newOTPFixture()
	svc.GenerateCode = func() string { return "123456" }

	require.NoError(t, svc.RequestOTP(ctx, "sess-1", "a@b.com", "Asha"))
	assert.Equal(t, []string{"a@b.com"}, email.Sent)

	require.NoError(t, svc.VerifyOTP(ctx, "sess-1", "a@b.com", "123456"))
	assert.True(t, svc.IsVerified(ctx, "sess-1", "a@b.com"))

	// The challenge is consumed: the same code fails a second time.
	err := svc.VerifyOTP(ctx, "sess-1", "a@b.com", "123456")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOTP))
}

func TestOTPMismatchedCode(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newOTPFixture()
	svc.GenerateCode = func() string { return "123456" }

	require.NoError(t, svc.RequestOTP(ctx, "sess-1", "a@b.com", ""))

	err := svc.VerifyOTP(ctx, "sess-1", "a@b.com", "654321")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOTP))
	assert.False(t, svc.IsVerified(ctx, "sess-1", "a@b.com"))
}

func TestOTPExpiredChallenge(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newOTPFixture()
	svc.GenerateCode = func() string { return "123456" }

	require.NoError(t, svc.RequestOTP(ctx, "sess-1", "a@b.com", ""))

	store.Now = func() time.Time { return time.Now().Add(OTPTTL + time.Second) }

	err := svc.VerifyOTP(ctx, "sess-1", "a@b.com", "123456")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOTP))
}

func TestOTPNewRequestOverwritesChallenge(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newOTPFixture()

	svc.GenerateCode = func() string { return "111111" }
	require.NoError(t, svc.RequestOTP(ctx, "sess-1", "a@b.com", ""))

	svc.GenerateCode = func() string { return "222222" }
	require.NoError(t, svc.RequestOTP(ctx, "sess-1", "a@b.com", ""))

	err := svc.VerifyOTP(ctx, "sess-1", "a@b.com", "111111")
	require.Error(t, err, "overwritten challenge must not verify")

	require.NoError(t, svc.VerifyOTP(ctx, "sess-1", "a@b.com", "222222"))
}

func TestOTPScopedToSession(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newOTPFixture()
	svc.GenerateCode = func() string { return "123456" }

	require.NoError(t, svc.RequestOTP(ctx, "sess-1", "a@b.com", ""))

	err := svc.VerifyOTP(ctx, "sess-2", "a@b.com", "123456")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOTP))
}

func TestOTPEmailRequired(t *testing.T) {
	svc, _, _ := newOTPFixture()

	err := svc.RequestOTP(context.Background(), "sess-1", "", "Asha")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestGenerateCodeShape(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, generateCode())
	}
}
