package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"solareco/domain"
	"solareco/service"
)

type OTPHandler struct {
	service *service.OTPService
}

func NewOTPHandler(service *service.OTPService) *OTPHandler {
	return &OTPHandler{service: service}
}

type otpStatus struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendOTP handles POST /send-otp.
func (h *OTPHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, otpStatus{Message: "invalid request body"})
		return
	}
	if req.Email == "" {
		writeJSON(w, http.StatusBadRequest, otpStatus{Message: "Email is required"})
		return
	}

	if err := h.service.RequestOTP(r.Context(), SessionID(r), req.Email, req.FirstName); err != nil {
		zap.L().Error("otp request failed", zap.String("email", req.Email), zap.Error(err))
		status := http.StatusInternalServerError
		message := "Failed to send verification code. Please try again."
		if errors.Is(err, domain.ErrInvalidInput) {
			status = http.StatusBadRequest
			message = err.Error()
		}
		writeJSON(w, status, otpStatus{Message: message})
		return
	}

	writeJSON(w, http.StatusOK, otpStatus{
		Success: true,
		Message: "Verification code sent to your email",
	})
}

// VerifyOTP handles POST /verify-otp.
func (h *OTPHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, otpStatus{Message: "invalid request body"})
		return
	}
	if req.Email == "" || req.OTP == "" {
		writeJSON(w, http.StatusBadRequest, otpStatus{Message: "Email and OTP are required"})
		return
	}

	if err := h.service.VerifyOTP(r.Context(), SessionID(r), req.Email, req.OTP); err != nil {
		zap.L().Warn("otp verification failed", zap.String("email", req.Email), zap.Error(err))
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrOTP) || errors.Is(err, domain.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, otpStatus{Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, otpStatus{
		Success: true,
		Message: "OTP verified successfully",
	})
}
