package domain

// ActionKind enumerates inline-button actions the bot understands.
type ActionKind string

const (
	ActionStart         ActionKind = "start"
	ActionClaim         ActionKind = "send_tr"
	ActionDisconnect    ActionKind = "disconnect"
	ActionConnectWallet ActionKind = "connect"
)

// Action is a callback action parsed once at the transport boundary.
type Action struct {
	Kind       ActionKind
	WalletName string // set for ActionConnectWallet
}

// ParseAction maps a callback's unique tag and payload to a typed action.
// Unknown tags return ok=false; callers acknowledge and ignore them.
func ParseAction(unique, payload string) (Action, bool) {
	switch ActionKind(unique) {
	case ActionStart:
		return Action{Kind: ActionStart}, true
	case ActionClaim:
		return Action{Kind: ActionClaim}, true
	case ActionDisconnect:
		return Action{Kind: ActionDisconnect}, true
	case ActionConnectWallet:
		if payload == "" {
			return Action{}, false
		}
		return Action{Kind: ActionConnectWallet, WalletName: payload}, true
	}
	return Action{}, false
}
