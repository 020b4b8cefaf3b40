package service

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Roodewald/MemeGiverBot/internal/domain"
	"github.com/Roodewald/MemeGiverBot/internal/repository"
)

// transactionTTL bounds how long a built transaction stays valid for signing.
const transactionTTL = time.Hour

// ClaimService handles reward claim business logic
type ClaimService struct {
	claims    repository.ClaimRepository
	allocator *KeyAllocator
	reward    domain.TransferMessage
	logger    *zap.Logger
}

// NewClaimService creates a new claim service. destination and amount define
// the reward transfer; the claim key is embedded as its comment.
func NewClaimService(
	claims repository.ClaimRepository,
	allocator *KeyAllocator,
	destination string,
	amount string,
	logger *zap.Logger,
) *ClaimService {
	return &ClaimService{
		claims:    claims,
		allocator: allocator,
		reward:    domain.TransferMessage{Address: destination, Amount: amount},
		logger:    logger,
	}
}

// Prepare allocates (or reuses) the user's claim key, builds the reward
// transaction carrying it and runs the ledger pre-check. Returns
// domain.ErrDuplicateClaim when the user or the wallet was already rewarded;
// nothing is submitted in that case.
func (s *ClaimService) Prepare(userID, walletAddress string) (*domain.PendingClaim, error) {
	key := s.allocator.Allocate(userID)

	exists, err := s.claims.Exists(userID, walletAddress)
	if err != nil {
		return nil, fmt.Errorf("claim pre-check: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateClaim
	}

	msg := s.reward
	msg.Payload = strconv.FormatInt(key, 10)

	return &domain.PendingClaim{
		Key: key,
		Transaction: &domain.PendingTransaction{
			ValidUntil: time.Now().Add(transactionTTL).Unix(),
			Messages:   []domain.TransferMessage{msg},
		},
	}, nil
}

// Record persists the claim after the wallet approved the transaction.
// Returns domain.ErrDuplicateClaim when a concurrent claim won the insert.
func (s *ClaimService) Record(userID, walletAddress string, key int64) error {
	inserted, err := s.claims.Insert(userID, walletAddress, key)
	if err != nil {
		return fmt.Errorf("record claim: %w", err)
	}
	if !inserted {
		return domain.ErrDuplicateClaim
	}

	s.logger.Info("claim recorded",
		zap.String("user_id", userID),
		zap.String("wallet_address", walletAddress),
		zap.Int64("assigned_key", key),
	)
	return nil
}
