package mailer

import (
	"log/slog"

	"github.com/PS-gitpro/myblog/internal/logger"
)

// NoopMailer discards messages. Wired when no SMTP host is configured,
// so development setups run without a relay.
type NoopMailer struct{}

// NewNoopMailer creates a NoopMailer.
func NewNoopMailer() *NoopMailer {
	return &NoopMailer{}
}

// Send logs the message instead of delivering it.
func (n *NoopMailer) Send(m Message) error {
	logger.Debug("mail dispatch skipped, no SMTP host configured",
		slog.String("to", m.To),
		slog.String("subject", m.Subject))
	return nil
}
