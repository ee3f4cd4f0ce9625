package mailer

import (
	"context"

	"go.uber.org/zap"
)

// LogSender пишет письма в лог вместо отправки. Используется, когда почта не настроена.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("mail delivery disabled, message not sent",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	// Тело содержит токен, поэтому только на debug
	s.logger.Debug("mail body",
		zap.String("to", msg.To),
		zap.String("html", msg.HTML),
	)
	return nil
}
