package domain

import "time"

// ClaimRecord is one persisted reward claim.
// Records are append-only: once a claim is written it is never changed or removed.
type ClaimRecord struct {
	UserID        string
	WalletAddress string
	AssignedKey   int64
	CreatedAt     time.Time
}

// TransferMessage is a single transfer inside a transaction request.
// Amount is in nanotons, Payload is a plain-text comment.
type TransferMessage struct {
	Address string
	Amount  string
	Payload string
}

// PendingTransaction is the payload submitted to the wallet for approval.
// It is built per claim attempt and discarded after submission.
type PendingTransaction struct {
	ValidUntil int64 // unix seconds
	Messages   []TransferMessage
}

// PendingClaim couples an allocated claim key with the transaction carrying it.
type PendingClaim struct {
	Key         int64
	Transaction *PendingTransaction
}
