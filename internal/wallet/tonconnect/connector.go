package tonconnect

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/Roodewald/MemeGiverBot/internal/domain"
)

// codeUserRejected is the bridge error code for an explicit wallet decline.
const codeUserRejected = 300

// Config holds bridge client settings shared by all connectors.
type Config struct {
	BridgeURL   string
	ManifestURL string
}

// Connector implements wallet.Connector over a websocket bridge session.
// One connector serves one chat; its session id is minted on Connect and
// survives until Disconnect.
type Connector struct {
	chatID int64
	cfg    Config
	logger *zap.Logger

	connected *atomic.Bool
	account   *atomic.String

	mu        sync.Mutex
	conn      *websocket.Conn
	sessionID string
	nextID    *atomic.Int64
	pending   map[int64]chan *envelope
}

type envelope struct {
	ID     int64           `json:"id,omitempty"`
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *bridgeError    `json:"error,omitempty"`
}

type bridgeError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// New creates a connector bound to one chat.
func New(chatID int64, cfg Config, logger *zap.Logger) *Connector {
	return &Connector{
		chatID:    chatID,
		cfg:       cfg,
		logger:    logger,
		connected: atomic.NewBool(false),
		account:   atomic.NewString(""),
		nextID:    atomic.NewInt64(1),
		pending:   make(map[int64]chan *envelope),
	}
}

// Wallets returns the supported wallet applications.
func (c *Connector) Wallets() []domain.WalletApp {
	return append([]domain.WalletApp(nil), defaultWallets...)
}

// RestoreConnection revives the session from a previous Connect in this
// process. With no stored session it reports not connected without error.
func (c *Connector) RestoreConnection(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return c.connected.Load(), nil
	}
	if c.sessionID == "" {
		return false, nil
	}
	if err := c.dial(ctx); err != nil {
		return false, fmt.Errorf("restore bridge session: %w", err)
	}
	return c.connected.Load(), nil
}

// Connect opens a fresh pairing session and returns the pairing URI.
func (c *Connector) Connect(ctx context.Context, app domain.WalletApp) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.connected.Store(false)
	c.account.Store("")
	c.sessionID = uuid.NewString()

	if err := c.dial(ctx); err != nil {
		return "", fmt.Errorf("dial bridge: %w", err)
	}

	return c.pairingURI(app), nil
}

// Connected reports whether the wallet approved the pairing.
func (c *Connector) Connected() bool {
	return c.connected.Load()
}

// Account returns the connected account address, if any.
func (c *Connector) Account() (string, bool) {
	addr := c.account.Load()
	return addr, addr != ""
}

// SendTransaction submits the transaction and waits for the wallet to
// resolve it or for ctx to expire.
func (c *Connector) SendTransaction(ctx context.Context, tx *domain.PendingTransaction) error {
	if !c.connected.Load() {
		return domain.ErrNotConnected
	}

	params, err := json.Marshal(newTxRequest(tx))
	if err != nil {
		return fmt.Errorf("marshal transaction: %w", err)
	}

	id := c.nextID.Inc()
	ch := make(chan *envelope, 1)

	c.mu.Lock()
	conn := c.conn
	if conn == nil {
		c.mu.Unlock()
		return domain.ErrNotConnected
	}
	c.pending[id] = ch
	err = conn.WriteJSON(&envelope{ID: id, Method: "sendTransaction", Params: params})
	c.mu.Unlock()
	if err != nil {
		c.dropPending(id)
		return fmt.Errorf("send transaction request: %w", err)
	}

	select {
	case env := <-ch:
		if env.Error != nil {
			if env.Error.Code == codeUserRejected {
				return domain.ErrUserRejected
			}
			return fmt.Errorf("bridge: %s", env.Error.Message)
		}
		return nil
	case <-ctx.Done():
		c.dropPending(id)
		return ctx.Err()
	}
}

// Disconnect tears the session down and forgets the account.
func (c *Connector) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		// Best effort: the session dies with the socket anyway.
		if err := c.conn.WriteJSON(&envelope{Method: "disconnect"}); err != nil {
			c.logger.Debug("disconnect notice failed",
				zap.Int64("chat_id", c.chatID),
				zap.Error(err),
			)
		}
		c.conn.Close()
		c.conn = nil
	}
	c.sessionID = ""
	c.connected.Store(false)
	c.account.Store("")
	return nil
}

// dial opens the websocket and subscribes to the session topic. c.mu held.
func (c *Connector) dial(ctx context.Context) error {
	wsURL, err := websocketURL(c.cfg.BridgeURL)
	if err != nil {
		return err
	}

	dialer := websocket.Dialer{}
	conn, _, err := dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return err
	}

	sub, _ := json.Marshal(map[string]string{"topic": c.sessionID})
	if err := conn.WriteJSON(&envelope{Method: "subscribe", Params: sub}); err != nil {
		conn.Close()
		return err
	}

	c.conn = conn
	go c.readLoop(conn)
	return nil
}

func (c *Connector) readLoop(conn *websocket.Conn) {
	for {
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			c.logger.Debug("bridge session closed",
				zap.Int64("chat_id", c.chatID),
				zap.Error(err),
			)
			return
		}
		c.handleEnvelope(&env)
	}
}

func (c *Connector) handleEnvelope(env *envelope) {
	switch env.Method {
	case "connect_event":
		var p struct {
			Address string `json:"address"`
		}
		if err := json.Unmarshal(env.Params, &p); err != nil {
			c.logger.Warn("malformed connect_event",
				zap.Int64("chat_id", c.chatID),
				zap.Error(err),
			)
			return
		}
		c.account.Store(p.Address)
		c.connected.Store(true)
		c.logger.Info("wallet approved pairing", zap.Int64("chat_id", c.chatID))
	case "disconnect_event":
		c.connected.Store(false)
		c.account.Store("")
	default:
		c.mu.Lock()
		ch, ok := c.pending[env.ID]
		if ok {
			delete(c.pending, env.ID)
		}
		c.mu.Unlock()
		if ok {
			ch <- env
		} else {
			c.logger.Debug("unhandled bridge message",
				zap.Int64("chat_id", c.chatID),
				zap.String("method", env.Method),
				zap.Int64("id", env.ID),
			)
		}
	}
}

func (c *Connector) dropPending(id int64) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

// pairingURI assembles the link a wallet application consumes. Wallets with a
// universal link get it as the base, others fall back to the tc:// scheme.
func (c *Connector) pairingURI(app domain.WalletApp) string {
	q := url.Values{}
	q.Set("v", "2")
	q.Set("id", c.sessionID)
	q.Set("r", c.cfg.ManifestURL)

	base := app.UniversalURL
	if base == "" {
		base = "tc://"
	}
	return base + "?" + q.Encode()
}

// websocketURL converts the bridge http(s) URL to its ws(s) counterpart.
func websocketURL(bridge string) (string, error) {
	u, err := url.Parse(bridge)
	if err != nil {
		return "", fmt.Errorf("invalid bridge url: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported bridge scheme %q", u.Scheme)
	}
	return u.String(), nil
}

type txRequest struct {
	ValidUntil int64       `json:"valid_until"`
	Messages   []txMessage `json:"messages"`
}

type txMessage struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
	Payload string `json:"payload,omitempty"`
}

func newTxRequest(tx *domain.PendingTransaction) *txRequest {
	req := &txRequest{ValidUntil: tx.ValidUntil}
	for _, m := range tx.Messages {
		req.Messages = append(req.Messages, txMessage{
			Address: m.Address,
			Amount:  m.Amount,
			Payload: m.Payload,
		})
	}
	return req
}
