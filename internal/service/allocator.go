package service

import "sync"

// KeyAllocator assigns claim keys from a monotonic counter. A user keeps the
// key from their first claim attempt for the rest of the process lifetime;
// the memo is not persisted, so a restart reseeds from the ledger.
type KeyAllocator struct {
	mu       sync.Mutex
	next     int64
	assigned map[string]int64
}

// NewKeyAllocator creates an allocator whose counter starts at seed,
// the ledger's next sequence value at startup.
func NewKeyAllocator(seed int64) *KeyAllocator {
	return &KeyAllocator{
		next:     seed,
		assigned: make(map[string]int64),
	}
}

// Allocate returns the user's claim key, assigning the next counter value on
// first call and the same key on every call after.
func (a *KeyAllocator) Allocate(userID string) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	if key, ok := a.assigned[userID]; ok {
		return key
	}
	key := a.next
	a.next++
	a.assigned[userID] = key
	return key
}
