package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Roodewald/MemeGiverBot/internal/domain"
)

// MockClaimRepository is a mock for repository.ClaimRepository
type MockClaimRepository struct {
	mock.Mock
}

func (m *MockClaimRepository) Exists(userID, walletAddress string) (bool, error) {
	args := m.Called(userID, walletAddress)
	return args.Bool(0), args.Error(1)
}

func (m *MockClaimRepository) Insert(userID, walletAddress string, assignedKey int64) (bool, error) {
	args := m.Called(userID, walletAddress, assignedKey)
	return args.Bool(0), args.Error(1)
}

func (m *MockClaimRepository) NextSequenceValue() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockConnector is a mock for wallet.Connector
type MockConnector struct {
	mock.Mock
}

func (m *MockConnector) RestoreConnection(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockConnector) Wallets() []domain.WalletApp {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.WalletApp)
}

func (m *MockConnector) Connect(ctx context.Context, app domain.WalletApp) (string, error) {
	args := m.Called(ctx, app)
	return args.String(0), args.Error(1)
}

func (m *MockConnector) Connected() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockConnector) Account() (string, bool) {
	args := m.Called()
	return args.String(0), args.Bool(1)
}

func (m *MockConnector) SendTransaction(ctx context.Context, tx *domain.PendingTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockConnector) Disconnect(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
