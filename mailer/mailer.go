package mailer

import (
	"bytes"
	"fmt"
	"net/smtp"
	"os"
	"text/template"
)

// Template identifiers
const (
	TemplateReminder      = "appointment-reminder"
	TemplatePasswordReset = "password-reset"
)

// Sender delivers a templated message to one recipient. Params fill the
// template body; failures are returned to the caller.
type Sender interface {
	Send(templateID, to string, params map[string]string) error
}

var templates = map[string]struct {
	subject string
	body    *template.Template
}{
	TemplateReminder: {
		subject: "Your upcoming appointments at the salon",
		body: template.Must(template.New(TemplateReminder).Parse(
			"Hello {{.Name}},\n\nA friendly reminder about your upcoming appointments:\n\n{{.Appointments}}\nSee you soon!\nThe Bridal Salon\n")),
	},
	TemplatePasswordReset: {
		subject: "Password reset code",
		body: template.Must(template.New(TemplatePasswordReset).Parse(
			"Hello,\n\nYour password reset code is: {{.Code}}\n\nThe code expires in 10 minutes. If you did not request a reset, ignore this message.\n")),
	},
}

// RenderBody fills the template body for templateID with params.
func RenderBody(templateID string, params map[string]string) (string, error) {
	tpl, ok := templates[templateID]
	if !ok {
		return "", fmt.Errorf("unknown mail template %q", templateID)
	}
	var buf bytes.Buffer
	if err := tpl.body.Execute(&buf, params); err != nil {
		return "", fmt.Errorf("render template %s: %w", templateID, err)
	}
	return buf.String(), nil
}

// SMTPSender sends mail through a plain SMTP relay.
type SMTPSender struct {
	Host string
	Port string
	From string
	Pass string
}

func NewSMTPSenderFromEnv() *SMTPSender {
	s := &SMTPSender{
		Host: os.Getenv("SMTP_HOST"),
		Port: os.Getenv("SMTP_PORT"),
		From: os.Getenv("SMTP_FROM"),
		Pass: os.Getenv("SMTP_PASS"),
	}
	if s.Host == "" {
		s.Host = "localhost"
	}
	if s.Port == "" {
		s.Port = "587"
	}
	if s.From == "" {
		s.From = "no-reply@bridal-salon.local"
	}
	return s
}

func (s *SMTPSender) Send(templateID, to string, params map[string]string) error {
	tpl, ok := templates[templateID]
	if !ok {
		return fmt.Errorf("unknown mail template %q", templateID)
	}
	body, err := RenderBody(templateID, params)
	if err != nil {
		return err
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		s.From, to, tpl.subject, body))

	var auth smtp.Auth
	if s.Pass != "" {
		auth = smtp.PlainAuth("", s.From, s.Pass, s.Host)
	}
	return smtp.SendMail(s.Host+":"+s.Port, auth, s.From, []string{to}, msg)
}
