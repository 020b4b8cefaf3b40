package testutil

import (
	"go.uber.org/zap"

	"github.com/Roodewald/MemeGiverBot/internal/domain"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWalletApp creates a test wallet application entry
func NewTestWalletApp(name string) domain.WalletApp {
	return domain.WalletApp{
		Name:         name,
		UniversalURL: "https://wallet.example/ton-connect",
		BridgeURL:    "https://bridge.example/bridge",
	}
}
