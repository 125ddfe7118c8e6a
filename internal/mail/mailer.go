// Package mail sends best-effort notifications. The transport is resolved
// once at startup into an immutable Mailer; there is no mutable module-level
// state to flip between modes at runtime.
package mail

import (
	"io"

	"github.com/go-gomail/gomail"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/smartque/smartque-api/internal/config"
)

const (
	ModeSMTP    = "smtp"
	ModeConsole = "console"
)

type Mailer interface {
	Send(to, subject, htmlBody string) error
	SendWithAttachment(to, subject, htmlBody, filename string, data []byte) error
	Mode() string
}

// New picks SMTP when the config carries full credentials, otherwise a
// console mailer that only logs. Callers treat every send as best-effort:
// a failed notification never aborts the operation that triggered it.
func New(cfg *config.Config, log *logrus.Logger) Mailer {
	if cfg.SMTPHost != "" && cfg.SMTPUser != "" && cfg.SMTPPass != "" {
		log.WithFields(logrus.Fields{
			"host": cfg.SMTPHost,
			"port": cfg.SMTPPort,
		}).Info("email transport: smtp")

		return &smtpMailer{
			dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
			from:     cfg.EmailFrom,
			fromName: cfg.EmailFromName,
			log:      log,
		}
	}

	log.Info("email transport: console only, bodies are logged")
	return &consoleMailer{log: log}
}

// --------------------------------------------------
// SMTP
// --------------------------------------------------

type smtpMailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	log      *logrus.Logger
}

func (m *smtpMailer) Mode() string { return ModeSMTP }

func (m *smtpMailer) Send(to, subject, htmlBody string) error {
	return m.send(to, subject, htmlBody, "", nil)
}

func (m *smtpMailer) SendWithAttachment(to, subject, htmlBody, filename string, data []byte) error {
	return m.send(to, subject, htmlBody, filename, data)
}

func (m *smtpMailer) send(to, subject, htmlBody, filename string, data []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.from, m.fromName))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetHeader("X-Message-ID", uuid.NewString())
	msg.SetHeader("X-Application", "SmarTQue")
	msg.SetBody("text/html", htmlBody)

	if filename != "" {
		msg.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.WithError(err).WithField("to", to).Warn("email send failed")
		return err
	}

	m.log.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	}).Info("email sent")
	return nil
}

// --------------------------------------------------
// Console
// --------------------------------------------------

type consoleMailer struct {
	log *logrus.Logger
}

func (m *consoleMailer) Mode() string { return ModeConsole }

func (m *consoleMailer) Send(to, subject, htmlBody string) error {
	m.log.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
		"body":    htmlBody,
	}).Info("console mail")
	return nil
}

func (m *consoleMailer) SendWithAttachment(to, subject, htmlBody, filename string, data []byte) error {
	m.log.WithFields(logrus.Fields{
		"to":         to,
		"subject":    subject,
		"attachment": filename,
		"bytes":      len(data),
	}).Info("console mail with attachment")
	return nil
}
