package invite

import (
	"context"

	"go.uber.org/zap"
)

//go:generate mockgen -source=sender.go -destination=mock/sender_mock.go -package=mock

// Sender delivers invitation and notification mail. The invitation send is
// a step inside the staff provisioning flow, so a failure here must surface
// as an error (the flow compensates on it).
type Sender interface {
	SendInvitation(ctx context.Context, to, name, code string) error
	SendStatusNotification(ctx context.Context, to, documentTitle, status string) error
}

// NewLogSender returns a Sender that only logs, for local development and
// environments without an SMTP relay.
func NewLogSender(logger *zap.Logger) Sender {
	return &logSender{logger: logger.Named("invite.log_sender")}
}

type logSender struct {
	logger *zap.Logger
}

func (s *logSender) SendInvitation(_ context.Context, to, name, code string) error {
	s.logger.Info("invitation (not sent, log sender)",
		zap.String("to", to),
		zap.String("name", name),
		zap.String("code", code),
	)
	return nil
}

func (s *logSender) SendStatusNotification(_ context.Context, to, documentTitle, status string) error {
	s.logger.Info("status notification (not sent, log sender)",
		zap.String("to", to),
		zap.String("document", documentTitle),
		zap.String("status", status),
	)
	return nil
}
