package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/Roodewald/MemeGiverBot/internal/domain"
	"github.com/Roodewald/MemeGiverBot/internal/ton"
	"github.com/Roodewald/MemeGiverBot/internal/wallet"
)

// handleConnectWallet drives the pairing flow for a selected wallet
func (h *Handler) handleConnectWallet(c tele.Context, walletName string) error {
	chatID := c.Chat().ID
	connector := h.registry.Get(chatID)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	return h.runConnect(ctx, c, connector, walletName, pollInterval)
}

// runConnect requests a pairing URI, shows it as a QR code and waits for the
// wallet to approve within ctx's deadline. The connector is left as-is on
// timeout; a later /start picks up whatever state the bridge holds.
func (h *Handler) runConnect(ctx context.Context, r replier, connector wallet.Connector, walletName string, interval time.Duration) error {
	var chosen *domain.WalletApp
	for _, app := range connector.Wallets() {
		if app.Name == walletName {
			app := app
			chosen = &app
			break
		}
	}
	if chosen == nil {
		err := fmt.Errorf("%w: %s", domain.ErrUnknownWallet, walletName)
		h.logger.Warn("Wallet selection rejected", zap.Error(err))
		return r.Send("Неизвестный кошелёк: " + walletName)
	}

	uri, err := connector.Connect(ctx, *chosen)
	if err != nil {
		h.logger.Error("Failed to open pairing session", zap.Error(err))
		return r.Send("Ошибка: " + err.Error())
	}

	png, err := qrcode.Encode(uri, qrcode.Medium, 256)
	if err != nil {
		h.logger.Error("Failed to render pairing QR code", zap.Error(err))
		return r.Send("Ошибка: " + err.Error())
	}

	photo := &tele.Photo{
		File:    tele.FromReader(bytes.NewReader(png)),
		Caption: "Подключите кошелёк в течение 3 минут",
	}
	linkMarkup := &tele.ReplyMarkup{}
	linkMarkup.Inline(linkMarkup.Row(linkMarkup.URL("Connect", uri)))

	if err := r.Send(photo, linkMarkup); err != nil {
		return err
	}

	address, err := awaitConnection(ctx, connector, interval)
	if err != nil {
		h.logger.Info("Pairing not approved in time", zap.Error(err))
		return r.Send("Время ожидания истекло!", startMarkup())
	}

	display := address
	if parsed, err := ton.Parse(address); err == nil {
		display = parsed.ToNonBounceable()
	} else {
		h.logger.Warn("Failed to normalize wallet address",
			zap.String("address", address),
			zap.Error(err),
		)
	}

	h.logger.Info("Wallet connected", zap.String("address", display))
	return r.Send(fmt.Sprintf("Вы подключены с кошелька: %s", display), startMarkup())
}

// awaitConnection polls the connector until it reports an approved pairing
// with a non-empty account address, or until ctx expires. Polling stops on the
// first successful observation; approval is one-way in the bridge protocol.
func awaitConnection(ctx context.Context, connector wallet.Connector, interval time.Duration) (string, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", domain.ErrConnectionTimeout
		case <-ticker.C:
			if !connector.Connected() {
				continue
			}
			if address, ok := connector.Account(); ok {
				return address, nil
			}
		}
	}
}

// handleDisconnect tears down the chat's wallet session
func (h *Handler) handleDisconnect(c tele.Context) error {
	chatID := c.Chat().ID
	connector := h.registry.Get(chatID)
	ctx := context.Background()

	if _, err := connector.RestoreConnection(ctx); err != nil {
		h.logger.Warn("Failed to restore connection before disconnect", zap.Error(err))
	}
	if err := connector.Disconnect(ctx); err != nil && !errors.Is(err, domain.ErrNotConnected) {
		h.logger.Warn("Failed to disconnect wallet", zap.Error(err))
	}

	return c.Send("Вы отключены!")
}
