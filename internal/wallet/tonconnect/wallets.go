package tonconnect

import "github.com/Roodewald/MemeGiverBot/internal/domain"

// defaultWallets is the built-in fallback list of supported wallet apps,
// used when the wallets registry is unreachable.
var defaultWallets = []domain.WalletApp{
	{
		Name:         "Tonkeeper",
		ImageURL:     "https://tonkeeper.com/assets/tonconnect-icon.png",
		AboutURL:     "https://tonkeeper.com",
		UniversalURL: "https://app.tonkeeper.com/ton-connect",
		BridgeURL:    "https://bridge.tonapi.io/bridge",
	},
	{
		Name:         "Tonhub",
		ImageURL:     "https://tonhub.com/tonconnect_logo.png",
		AboutURL:     "https://tonhub.com",
		UniversalURL: "https://tonhub.com/ton-connect",
		BridgeURL:    "https://connect.tonhubapi.com/tonconnect",
	},
	{
		Name:         "MyTonWallet",
		ImageURL:     "https://mytonwallet.io/icon-256.png",
		AboutURL:     "https://mytonwallet.io",
		UniversalURL: "https://connect.mytonwallet.org",
		BridgeURL:    "https://tonconnectbridge.mytonwallet.org/bridge",
	},
}
