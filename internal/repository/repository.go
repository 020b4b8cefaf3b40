package repository

// ClaimRepository defines claim ledger operations.
// The ledger is the sole source of the at-most-once reward guarantee.
type ClaimRepository interface {
	// Exists reports whether a claim is recorded for the user OR the wallet.
	Exists(userID, walletAddress string) (bool, error)
	// Insert records a claim atomically. Returns false when a record for the
	// user or the wallet already exists.
	Insert(userID, walletAddress string, assignedKey int64) (bool, error)
	// NextSequenceValue returns the next free claim key.
	NextSequenceValue() (int64, error)
}
