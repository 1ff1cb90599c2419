// Package mail delivers transactional email. SMTP settings come from
// config; without a configured host the mailer degrades to logging the
// message, which keeps local development free of an SMTP dependency.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/smtp"
	"strings"

	"gazette/config"
	"gazette/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the mailer, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New selects the SMTP mailer when a host is configured, the log mailer
// otherwise.
func New(params Params) service.Mailer {
	if params.Config.Mail == nil || params.Config.Mail.Host == "" {
		params.Logger.Warn("No SMTP host configured, outgoing mail will only be logged")

		return &logMailer{logger: params.Logger}
	}

	return &smtpMailer{
		addr:     fmt.Sprintf("%s:%d", params.Config.Mail.Host, params.Config.Mail.Port),
		host:     params.Config.Mail.Host,
		username: params.Config.Mail.Username,
		password: params.Config.Mail.Password,
		from:     params.Config.Mail.From,
		logger:   params.Logger,
	}
}

// smtpMailer sends mail over authenticated SMTP.
type smtpMailer struct {
	addr     string
	host     string
	username string
	password string
	from     string
	logger   *slog.Logger
}

// Send delivers a single message. When both bodies are present the message
// goes out as multipart/alternative with the HTML part preferred.
func (m *smtpMailer) Send(_ context.Context, to, subject, text, html string) error {
	msg := buildMessage(m.from, to, subject, text, html)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(m.addr, auth, m.from, []string{to}, msg); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	m.logger.Debug("Sent mail", slog.String("to", to), slog.String("subject", subject))

	return nil
}

// logMailer records outgoing mail instead of delivering it.
type logMailer struct {
	logger *slog.Logger
}

func (m *logMailer) Send(_ context.Context, to, subject, text, _ string) error {
	m.logger.Info("Outgoing mail (log only)",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("text", text))

	return nil
}

const boundary = "gazette-alt-boundary"

func buildMessage(from, to, subject, text, html string) []byte {
	var b strings.Builder

	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")

	switch {
	case html != "" && text != "":
		b.WriteString("Content-Type: multipart/alternative; boundary=" + boundary + "\r\n\r\n")
		b.WriteString("--" + boundary + "\r\n")
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		b.WriteString(text + "\r\n")
		b.WriteString("--" + boundary + "\r\n")
		b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
		b.WriteString(html + "\r\n")
		b.WriteString("--" + boundary + "--\r\n")
	case html != "":
		b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
		b.WriteString(html + "\r\n")
	default:
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		b.WriteString(text + "\r\n")
	}

	return []byte(b.String())
}
