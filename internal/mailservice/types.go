package mailservice

import (
	"bytes"
	"sync"

	"github.com/go-mail/mail/v2"
)

type MailService struct {
	m         Mailer
	recipient string
	logger    MailLogger
}

type MailLogger interface {
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

type Mail struct {
	mu     sync.Mutex
	dialer Dialer
	parser TemplateParser
	sender string
}

type Mailer interface {
	send(recipient string, data any, templateFile string) error
}

type Template struct{}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type TemplateParser interface {
	ParseTemplate(name string, data any) (*bytes.Buffer, *bytes.Buffer, *bytes.Buffer, error)
}

// ContactMessage is a contact-form submission relayed to the operator inbox.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Message string
}
