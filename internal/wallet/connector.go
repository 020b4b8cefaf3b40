package wallet

import (
	"context"

	"github.com/Roodewald/MemeGiverBot/internal/domain"
)

// Connector is a handle to one chat's wallet pairing session.
// Implementations own the bridge transport; callers only observe
// {disconnected, pending, connected} through Connected and Account.
type Connector interface {
	// RestoreConnection revives a previously approved session if one exists.
	RestoreConnection(ctx context.Context) (bool, error)
	// Wallets lists wallet applications the user may pair with.
	Wallets() []domain.WalletApp
	// Connect opens a fresh pairing session and returns the pairing URI
	// the wallet application consumes.
	Connect(ctx context.Context, app domain.WalletApp) (string, error)
	// Connected reports whether the wallet approved the pairing.
	Connected() bool
	// Account returns the connected account address, if any.
	Account() (string, bool)
	// SendTransaction submits a transaction and blocks until the wallet
	// resolves it or ctx expires. Returns domain.ErrUserRejected when the
	// wallet declines.
	SendTransaction(ctx context.Context, tx *domain.PendingTransaction) error
	// Disconnect tears the session down.
	Disconnect(ctx context.Context) error
}

// Factory builds a connector bound to one chat session.
type Factory func(chatID int64) Connector
