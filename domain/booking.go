package domain

// BookingRecord is one confirmed booking, appended to the booking log.
type BookingRecord struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"` // E.164
	Email       string `json:"email"`
	PanelName   string `json:"panelName"`
	CompanyName string `json:"brandName"`
}

// Call outcome values reported in a booking response.
const (
	CallSuccess = "success"
	CallFailed  = "failed"
)

// BookingResult reports the independent outcomes of a booking: persistence
// is decoupled from notification delivery.
type BookingResult struct {
	Saved      bool   `json:"booking_saved"`
	EmailSent  bool   `json:"email_sent"`
	CallStatus string `json:"call_status"`
	CallSID    string `json:"call_sid,omitempty"`
}
