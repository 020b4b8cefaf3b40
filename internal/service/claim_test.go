package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Roodewald/MemeGiverBot/internal/domain"
	"github.com/Roodewald/MemeGiverBot/internal/testutil"
)

const (
	testDestination = "0:1111111111111111111111111111111111111111111111111111111111111111"
	testAmount      = "1000000"
)

func newTestClaimService(repo *testutil.MockClaimRepository, seed int64) *ClaimService {
	return NewClaimService(repo, NewKeyAllocator(seed), testDestination, testAmount, testutil.NewTestLogger())
}

func TestClaimService_Prepare(t *testing.T) {
	mockRepo := new(testutil.MockClaimRepository)
	mockRepo.On("Exists", "123", "0:aa").Return(false, nil)

	svc := newTestClaimService(mockRepo, 7)

	claim, err := svc.Prepare("123", "0:aa")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), claim.Key)

	tx := claim.Transaction
	assert.Len(t, tx.Messages, 1)
	assert.Equal(t, testDestination, tx.Messages[0].Address)
	assert.Equal(t, testAmount, tx.Messages[0].Amount)
	assert.Equal(t, "7", tx.Messages[0].Payload)

	// valid_until is one hour out
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), tx.ValidUntil, 5)

	mockRepo.AssertExpectations(t)
}

func TestClaimService_Prepare_SameKeyOnRetry(t *testing.T) {
	mockRepo := new(testutil.MockClaimRepository)
	mockRepo.On("Exists", "123", "0:aa").Return(false, nil)

	svc := newTestClaimService(mockRepo, 7)

	first, err := svc.Prepare("123", "0:aa")
	assert.NoError(t, err)
	second, err := svc.Prepare("123", "0:aa")
	assert.NoError(t, err)

	assert.Equal(t, first.Key, second.Key)
}

func TestClaimService_Prepare_DuplicateClaim(t *testing.T) {
	mockRepo := new(testutil.MockClaimRepository)
	mockRepo.On("Exists", "123", "0:aa").Return(true, nil)

	svc := newTestClaimService(mockRepo, 7)

	claim, err := svc.Prepare("123", "0:aa")

	assert.ErrorIs(t, err, domain.ErrDuplicateClaim)
	assert.Nil(t, claim)
}

func TestClaimService_Prepare_RepositoryError(t *testing.T) {
	mockRepo := new(testutil.MockClaimRepository)
	mockRepo.On("Exists", "123", "0:aa").Return(false, fmt.Errorf("connection refused"))

	svc := newTestClaimService(mockRepo, 7)

	claim, err := svc.Prepare("123", "0:aa")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDuplicateClaim)
	assert.Nil(t, claim)
}

func TestClaimService_Record(t *testing.T) {
	tests := []struct {
		name          string
		inserted      bool
		insertErr     error
		expectedError error
	}{
		{
			name:     "recorded",
			inserted: true,
		},
		{
			name:          "lost race reports duplicate",
			inserted:      false,
			expectedError: domain.ErrDuplicateClaim,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockClaimRepository)
			mockRepo.On("Insert", "123", "0:aa", int64(7)).Return(tt.inserted, tt.insertErr)

			svc := newTestClaimService(mockRepo, 7)

			err := svc.Record("123", "0:aa", 7)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
