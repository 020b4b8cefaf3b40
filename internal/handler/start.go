package handler

import (
	"context"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/Roodewald/MemeGiverBot/internal/wallet"
)

// handleStart handles /start and the return-to-menu button
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Chat().ID

	h.logger.Info("User started bot",
		zap.Int64("chat_id", chatID),
		zap.String("username", c.Sender().Username),
	)

	return h.runStart(context.Background(), c, h.registry.Get(chatID))
}

// runStart shows the paired menu or the wallet list, depending on whether a
// previous session can be restored.
func (h *Handler) runStart(ctx context.Context, r replier, connector wallet.Connector) error {
	connected, err := connector.RestoreConnection(ctx)
	if err != nil {
		// A dead bridge session means the user simply is not connected.
		h.logger.Warn("Failed to restore connection", zap.Error(err))
	}

	if connected {
		return r.Send("Вы успешно подключены", connectedMarkup())
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, app := range connector.Wallets() {
		rows = append(rows, markup.Row(markup.Data(app.Name, "connect", app.Name)))
	}
	markup.Inline(rows...)

	return r.Send("Выберите предпочитаемый кошелёк", markup)
}
