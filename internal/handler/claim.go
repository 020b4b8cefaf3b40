package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/Roodewald/MemeGiverBot/internal/domain"
	"github.com/Roodewald/MemeGiverBot/internal/wallet"
)

// handleClaim handles /transaction and the claim button
func (h *Handler) handleClaim(c tele.Context) error {
	chatID := c.Chat().ID

	lock := h.claimLock(chatID)
	if !lock.TryLock() {
		return c.Send("Запрос уже обрабатывается")
	}
	defer lock.Unlock()

	return h.runClaim(context.Background(), c, h.registry.Get(chatID), chatID)
}

// runClaim is the transaction claim workflow: precondition, key allocation
// and pre-check, submission bounded by claimTimeout, ledger record on
// approval. Only the pre-check and the record touch the ledger.
func (h *Handler) runClaim(ctx context.Context, r replier, connector wallet.Connector, chatID int64) error {
	connected, err := connector.RestoreConnection(ctx)
	if err != nil {
		h.logger.Warn("Failed to restore connection", zap.Error(err))
	}
	if !connected {
		return r.Send("Сначала подключите кошелёк!")
	}
	walletAddress, ok := connector.Account()
	if !ok {
		return r.Send("Сначала подключите кошелёк!")
	}

	userID := strconv.FormatInt(chatID, 10)

	claim, err := h.claims.Prepare(userID, walletAddress)
	if errors.Is(err, domain.ErrDuplicateClaim) {
		return r.Send("Лимит ваших наград исчерпан :(")
	}
	if err != nil {
		h.logger.Error("Failed to prepare claim", zap.Error(err))
		return r.Send("Произошла ошибка. Попробуйте позже.")
	}

	if err := r.Send(fmt.Sprintf("Вы получаете награду с ключом: %d", claim.Key)); err != nil {
		return err
	}
	if err := r.Send("Подтвердите сообщение в своём кошельке!"); err != nil {
		return err
	}

	txCtx, cancel := context.WithTimeout(ctx, claimTimeout)
	defer cancel()

	err = connector.SendTransaction(txCtx, claim.Transaction)
	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, domain.ErrTransactionTimeout):
		return r.Send("Кошелёк не был подключен")
	case errors.Is(err, domain.ErrUserRejected):
		return r.Send("Вы отменили транзакцию!")
	default:
		h.logger.Error("Transaction submission failed",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return r.Send("Ошибка: " + err.Error())
	}

	if err := h.claims.Record(userID, walletAddress, claim.Key); err != nil {
		if errors.Is(err, domain.ErrDuplicateClaim) {
			// The transaction is already on its way; the losing side of the
			// race only gets told about the existing record.
			return r.Send("Ошибка: пользователь или кошелёк уже существует в базе данных.")
		}
		h.logger.Error("Failed to record claim", zap.Error(err))
		return r.Send("Произошла ошибка. Попробуйте позже.")
	}

	return r.Send("Поздравляем! Вы получили свою награду!\nЛимит ваших наград исчерпан")
}
