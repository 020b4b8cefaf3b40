package domain

// WalletApp describes one wallet application supported by the pairing bridge.
type WalletApp struct {
	Name         string
	ImageURL     string
	AboutURL     string
	UniversalURL string
	BridgeURL    string
}
