package service

import (
	"sync"

	"github.com/Roodewald/MemeGiverBot/internal/wallet"
)

// ConnectorRegistry hands out one connector per chat, constructing it lazily
// on first access. Entries live for the process lifetime.
type ConnectorRegistry struct {
	factory wallet.Factory

	mu         sync.Mutex
	connectors map[int64]wallet.Connector
}

// NewConnectorRegistry creates a registry with the given connector factory
func NewConnectorRegistry(factory wallet.Factory) *ConnectorRegistry {
	return &ConnectorRegistry{
		factory:    factory,
		connectors: make(map[int64]wallet.Connector),
	}
}

// Get returns the chat's connector, creating it on first access.
// Repeated calls with the same id return the same instance.
func (r *ConnectorRegistry) Get(chatID int64) wallet.Connector {
	r.mu.Lock()
	defer r.mu.Unlock()

	connector, exists := r.connectors[chatID]
	if !exists {
		connector = r.factory(chatID)
		r.connectors[chatID] = connector
	}
	return connector
}
