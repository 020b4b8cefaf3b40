package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging creates middleware that logs every handled update and keeps handler
// errors from reaching the poller.
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			var chatID int64
			if c.Chat() != nil {
				chatID = c.Chat().ID
			}

			logger.Debug("Handling update",
				zap.Int("update_id", c.Update().ID),
				zap.Int64("chat_id", chatID),
				zap.String("text", c.Text()),
			)

			if err := next(c); err != nil {
				logger.Error("Handler failed",
					zap.Int("update_id", c.Update().ID),
					zap.Int64("chat_id", chatID),
					zap.Error(err),
				)
			}
			return nil
		}
	}
}
