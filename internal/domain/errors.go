package domain

import "errors"

// Workflow errors surfaced to the user. All of them leave the ledger untouched
// except ErrDuplicateClaim reported by the atomic insert, where the transaction
// has already been sent.
var (
	ErrUnknownWallet      = errors.New("unknown wallet")
	ErrConnectionTimeout  = errors.New("wallet pairing not approved in time")
	ErrTransactionTimeout = errors.New("transaction not approved in time")
	ErrUserRejected       = errors.New("transaction rejected by user")
	ErrDuplicateClaim     = errors.New("claim already recorded")
	ErrNotConnected       = errors.New("wallet not connected")
)
