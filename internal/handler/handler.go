package handler

import (
	"strings"
	"sync"
	"time"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/Roodewald/MemeGiverBot/internal/service"
)

// Workflow deadlines. Pairing approval gets 3 minutes, transaction approval 5.
const (
	connectTimeout = 180 * time.Second
	pollInterval   = time.Second
	claimTimeout   = 300 * time.Second
)

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	registry *service.ConnectorRegistry
	claims   *service.ClaimService
	logger   *zap.Logger

	// Per-chat claim locks: a second press while a claim is in flight is
	// answered instead of racing the connector.
	claimMux   sync.Mutex
	claimLocks map[int64]*sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	registry *service.ConnectorRegistry,
	claims *service.ClaimService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		registry:   registry,
		claims:     claims,
		logger:     logger,
		claimLocks: make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/transaction", h.handleClaim)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnClaim, h.handleClaim)
	h.bot.Handle(&btnDisconnect, h.handleDisconnect)
	h.bot.Handle(&btnStart, h.handleStart)

	// Generic callback handler for dynamic data (wallet selection)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// claimLock returns the chat's claim workflow lock
func (h *Handler) claimLock(chatID int64) *sync.Mutex {
	h.claimMux.Lock()
	defer h.claimMux.Unlock()

	lock, exists := h.claimLocks[chatID]
	if !exists {
		lock = &sync.Mutex{}
		h.claimLocks[chatID] = lock
	}
	return lock
}

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// Inline keyboard buttons
var (
	btnClaim = tele.Btn{
		Unique: "send_tr",
		Text:   "Получить токены",
	}
	btnDisconnect = tele.Btn{
		Unique: "disconnect",
		Text:   "Отключиться",
	}
	btnStart = tele.Btn{
		Unique: "start",
		Text:   "Start",
	}
)

// connectedMarkup is the menu shown to a paired user
func connectedMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnClaim),
		menu.Row(btnDisconnect),
	)
	return menu
}

// startMarkup is a single return-to-menu button
func startMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnStart))
	return menu
}

// replier is the slice of tele.Context the workflows need to answer the user.
// Keeping it narrow lets flow tests run without a live bot.
type replier interface {
	Send(what interface{}, opts ...interface{}) error
}
