package invite

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type smtpSender struct {
	cfg    SMTPConfig
	logger *zap.Logger
}

// NewSMTPSender delivers mail through a plain SMTP relay. No mail library
// is used; message bodies here are short plain-text notifications.
func NewSMTPSender(cfg SMTPConfig, logger *zap.Logger) Sender {
	return &smtpSender{cfg: cfg, logger: logger.Named("invite.smtp_sender")}
}

func (s *smtpSender) SendInvitation(ctx context.Context, to, name, code string) error {
	subject := "You have been invited to DocTrack"
	body := fmt.Sprintf(
		"Hello %s,\r\n\r\n"+
			"You have been registered as staff. Use the verification code below to activate your account. "+
			"The code expires in 24 hours.\r\n\r\n"+
			"Verification code: %s\r\n",
		name, code,
	)
	return s.send(ctx, to, subject, body)
}

func (s *smtpSender) SendStatusNotification(ctx context.Context, to, documentTitle, status string) error {
	subject := fmt.Sprintf("Document %q status update", documentTitle)
	body := fmt.Sprintf(
		"Hello,\r\n\r\nYour document %q is now marked as %s.\r\n",
		documentTitle, status,
	)
	return s.send(ctx, to, subject, body)
}

func (s *smtpSender) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		s.cfg.From, to, subject, body,
	))

	addr := s.cfg.Host + ":" + s.cfg.Port

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		s.logger.Error("smtp send failed", zap.String("to", to), zap.Error(err))
		return err
	}

	return nil
}
