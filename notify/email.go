package notify

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"solareco/domain"
)

// EmailSender delivers a plain-text message to one recipient.
type EmailSender interface {
	Send(to, subject, body string) error
}

// SMTPEmailSender sends mail through an authenticated SMTP relay with
// STARTTLS. Credentials come from configuration, never literals.
type SMTPEmailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPEmailSender creates a sender for the given relay. The dialer
// connects lazily on each Send.
func NewSMTPEmailSender(host string, port int, username, password, from string) *SMTPEmailSender {
	return &SMTPEmailSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers one message. The call blocks for the full SMTP exchange.
func (s *SMTPEmailSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		zap.L().Error("email send failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return eris.Wrap(domain.ErrTransport, err.Error())
	}
	zap.L().Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
