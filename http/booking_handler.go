package http

import (
	"encoding/json"
	"net/http"

	"github.com/rotisserie/eris"

	"solareco/domain"
	"solareco/service"
)

type BookingHandler struct {
	service *service.BookingService
}

func NewBookingHandler(service *service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type bookingResponse struct {
	Message    string `json:"message"`
	Saved      bool   `json:"booking_saved"`
	EmailSent  bool   `json:"email_sent"`
	CallStatus string `json:"call_status"`
}

// Book handles POST /book.
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var record domain.BookingRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeError(w, r, eris.Wrap(domain.ErrInvalidInput, "invalid request body"))
		return
	}

	result, err := h.service.Book(r.Context(), record)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, bookingResponse{
		Message:    "Booking processed",
		Saved:      result.Saved,
		EmailSent:  result.EmailSent,
		CallStatus: result.CallStatus,
	})
}
