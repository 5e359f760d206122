package mailservice

import (
	"log/slog"
)

func NewMailService(host, username, password, sender, recipient string, port int, logger *slog.Logger) *MailService {
	return &MailService{
		m:         NewMailer(host, port, username, password, sender, NewTemplate()),
		recipient: recipient,
		logger:    logger,
	}
}

// SendContactMessage relays a contact-form submission to the operator inbox.
// The send is synchronous and fire-and-forget: no retry, no queue, and
// success means the relay accepted the message, not that it was delivered.
func (s *MailService) SendContactMessage(msg *ContactMessage) error {
	err := s.m.send(s.recipient, msg, "contact_message.html")
	if err != nil {
		s.logger.Error("could not send contact message", slog.String("error", err.Error()))
		return err
	}

	s.logger.Info("contact message sent", slog.String("from", msg.Email))
	return nil
}
