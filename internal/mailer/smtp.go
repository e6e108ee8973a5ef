package mailer

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/model"
)

// Ensure SMTPSender implements model.DigestSender.
var _ model.DigestSender = (*SMTPSender)(nil)

// SMTPSender delivers digests over SMTP: HTML body plus the CSV as an
// attachment. A delivery failure is fatal for the run; there is no retry.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
	timeout  time.Duration
	logger   *slog.Logger
}

// NewSMTPSender returns a sender that emails each digest to a single
// recipient. Port 465 uses implicit TLS, anything else STARTTLS.
func NewSMTPSender(host string, port int, username, password, from, to string, timeout time.Duration, logger *slog.Logger) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
		timeout:  timeout,
		logger:   logger,
	}
}

// Send delivers exactly one message for the digest, empty digests included.
func (s *SMTPSender) Send(d model.Digest) error {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("set sender %q: %w", s.from, err)
	}
	if err := msg.To(s.to); err != nil {
		return fmt.Errorf("set recipient %q: %w", s.to, err)
	}
	msg.Subject(d.Subject)
	msg.SetBodyString(mail.TypeTextHTML, d.HTML)
	if err := msg.AttachReader(d.AttachmentName, bytes.NewReader(d.CSV)); err != nil {
		return fmt.Errorf("attach %s: %w", d.AttachmentName, err)
	}

	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.username),
		mail.WithPassword(s.password),
		mail.WithTimeout(s.timeout),
	}
	if s.port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client for %s: %w", s.host, err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}

	s.logger.Info("digest emailed", "to", s.to, "subject", d.Subject, "rows", d.Count)
	return nil
}
