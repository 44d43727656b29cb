package notify

import (
	"log"

	gomail "gopkg.in/gomail.v2"
)

// SMSSender delivers a short text message to one recipient.
type SMSSender interface {
	Send(body, recipient string) error
}

// EmailSender delivers a plain-text email.
type EmailSender interface {
	Send(subject, body, from string, to []string) error
}

// LogSMSSender writes messages to the process log instead of a gateway.
// A deployment with a real SMS/WhatsApp provider plugs its client in here.
type LogSMSSender struct{}

func (LogSMSSender) Send(body, recipient string) error {
	log.Printf("SMS to %s:\n%s", recipient, body)
	return nil
}

// SMTPEmailSender sends through an SMTP relay via gomail.
type SMTPEmailSender struct {
	dialer *gomail.Dialer
}

func NewSMTPEmailSender(host string, port int, username, password string) *SMTPEmailSender {
	return &SMTPEmailSender{dialer: gomail.NewDialer(host, port, username, password)}
}

func (s *SMTPEmailSender) Send(subject, body, from string, to []string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}
