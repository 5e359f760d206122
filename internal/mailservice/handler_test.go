package mailservice

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendContactMessage(t *testing.T) {
	mailer := &MockMailer{}
	s := &MailService{
		m:         mailer,
		recipient: "admin@example.com",
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	err := s.SendContactMessage(&ContactMessage{
		Name:    "Bob",
		Email:   "bob@example.com",
		Phone:   "555-0100",
		Message: "Hello there",
	})
	assert.NoError(t, err)
	assert.True(t, mailer.Called)
	assert.Equal(t, "admin@example.com", mailer.Email)
}

func TestSendContactMessageError(t *testing.T) {
	mailer := &MockMailer{Err: errors.New("relay unreachable")}
	s := &MailService{
		m:         mailer,
		recipient: "admin@example.com",
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	err := s.SendContactMessage(&ContactMessage{Email: "bob@example.com"})
	assert.EqualError(t, err, "relay unreachable")
}
