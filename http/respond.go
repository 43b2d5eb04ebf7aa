package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"solareco/domain"
)

// writeJSON encodes v into a buffer first so no header is written if
// encoding fails.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		zap.L().Error("error encoding response", zap.Error(err))
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		zap.L().Error("error writing response", zap.Error(err))
	}
}

// writeError maps an error class to a status and logs it with request
// context before converting it to a response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrOTP):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrScoring):
		status = http.StatusInternalServerError
	}

	zap.L().Error("request failed",
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
