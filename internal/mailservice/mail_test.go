package mailservice

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSend(t *testing.T) {
	dialer := new(MockDialer)
	parser := new(MockTemplate)

	m := &Mail{
		dialer: dialer,
		parser: parser,
		sender: "blog@example.com",
	}

	data := &ContactMessage{
		Name:    "Bob",
		Email:   "bob@example.com",
		Phone:   "555-0100",
		Message: "Hello there",
	}

	parser.On("ParseTemplate", "contact_message.html", data).Return(
		bytes.NewBufferString("New Message"),
		bytes.NewBufferString("plain body"),
		bytes.NewBufferString("<p>html body</p>"),
		nil,
	)
	dialer.On("DialAndSend", mock.Anything).Return(nil)

	err := m.send("admin@example.com", data, "contact_message.html")
	assert.NoError(t, err)

	parser.AssertExpectations(t)
	dialer.AssertExpectations(t)
}

func TestSendDialerError(t *testing.T) {
	dialer := new(MockDialer)
	parser := new(MockTemplate)

	m := &Mail{
		dialer: dialer,
		parser: parser,
		sender: "blog@example.com",
	}

	parser.On("ParseTemplate", mock.Anything, mock.Anything).Return(
		bytes.NewBufferString("New Message"),
		bytes.NewBufferString("plain body"),
		bytes.NewBufferString("<p>html body</p>"),
		nil,
	)
	dialer.On("DialAndSend", mock.Anything).Return(errors.New("connection refused"))

	err := m.send("admin@example.com", &ContactMessage{}, "contact_message.html")
	assert.EqualError(t, err, "connection refused")
}
