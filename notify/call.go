package notify

import (
	"fmt"
	"html"

	"github.com/rotisserie/eris"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"solareco/domain"
)

// minE164Length counts the leading '+': e.g. +917017336936.
const minE164Length = 12

// CallDialer places an automated voice call and returns the provider's call
// identifier.
type CallDialer interface {
	Dial(toPhone, message string) (string, error)
}

// ValidateE164 rejects phone numbers that are not in E.164 format. Callers
// must validate before dialing so malformed numbers never reach the
// transport.
func ValidateE164(phone string) error {
	if len(phone) < minE164Length || phone[0] != '+' {
		return eris.Wrapf(domain.ErrInvalidInput,
			"phone %q is not E.164 (expected leading '+' and at least %d characters)", phone, minE164Length)
	}
	return nil
}

// TwilioDialer places calls through the Twilio voice API.
type TwilioDialer struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioDialer creates a dialer authenticated with the given account.
// Credentials come from configuration, never literals.
func NewTwilioDialer(accountSID, authToken, from string) *TwilioDialer {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioDialer{client: client, from: from}
}

// Dial speaks message to toPhone via a TwiML <Say> call. toPhone must
// already be E.164-validated.
func (d *TwilioDialer) Dial(toPhone, message string) (string, error) {
	if err := ValidateE164(toPhone); err != nil {
		return "", err
	}

	params := &twilioapi.CreateCallParams{}
	params.SetTo(toPhone)
	params.SetFrom(d.from)
	params.SetTwiml(fmt.Sprintf("<Response><Say>%s</Say></Response>", html.EscapeString(message)))

	call, err := d.client.Api.CreateCall(params)
	if err != nil {
		zap.L().Error("telephony call failed",
			zap.String("to", toPhone),
			zap.Error(err),
		)
		return "", eris.Wrap(domain.ErrTransport, err.Error())
	}

	sid := ""
	if call.Sid != nil {
		sid = *call.Sid
	}
	zap.L().Info("telephony call initiated",
		zap.String("to", toPhone),
		zap.String("sid", sid),
	)
	return sid, nil
}
