package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/Roodewald/MemeGiverBot/internal/domain"
)

// handleCallback routes callbacks that did not match a registered button,
// including the dynamic wallet-selection buttons. Data is parsed into a typed
// action once, here; unknown actions are acknowledged and ignored so newer
// keyboards do not break older processes.
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	unique := cleanCallbackData(callback.Unique)
	data := cleanCallbackData(callback.Data)

	action, ok := domain.ParseAction(unique, data)
	if !ok {
		h.logger.Debug("Ignoring unknown callback",
			zap.String("unique", unique),
			zap.String("data", data),
			zap.Int64("chat_id", c.Chat().ID),
		)
		return c.Respond()
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	switch action.Kind {
	case domain.ActionStart:
		return h.handleStart(c)
	case domain.ActionClaim:
		return h.handleClaim(c)
	case domain.ActionDisconnect:
		return h.handleDisconnect(c)
	case domain.ActionConnectWallet:
		return h.handleConnectWallet(c, action.WalletName)
	}
	return nil
}
