package webserver

import (
	"errors"
	"sync"
	"time"
)

var errNoNonce = errors.New("challenge expired")

type nonceEntry struct {
	value   string
	expires time.Time
}

// NonceStore keeps auth challenge nonces in memory with a TTL. A nonce is
// consumed on first take, so a challenge can be verified at most once.
type NonceStore struct {
	mu      sync.Mutex
	entries map[string]nonceEntry
	ttl     time.Duration
}

func NewNonceStore(ttl time.Duration) *NonceStore {
	ns := &NonceStore{
		entries: make(map[string]nonceEntry),
		ttl:     ttl,
	}

	// Cleanup expired entries periodically
	go func() {
		ticker := time.NewTicker(ttl)
		defer ticker.Stop()
		for range ticker.C {
			ns.cleanup()
		}
	}()

	return ns
}

func (ns *NonceStore) cleanup() {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	now := time.Now()
	for addr, e := range ns.entries {
		if now.After(e.expires) {
			delete(ns.entries, addr)
		}
	}
}

// Set stores the nonce for an address, replacing any outstanding challenge.
func (ns *NonceStore) Set(addr, nonce string) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.entries[addr] = nonceEntry{value: nonce, expires: time.Now().Add(ns.ttl)}
}

// Take returns and deletes the nonce for an address.
func (ns *NonceStore) Take(addr string) (string, error) {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	e, ok := ns.entries[addr]
	if !ok || time.Now().After(e.expires) {
		delete(ns.entries, addr)
		return "", errNoNonce
	}
	delete(ns.entries, addr)
	return e.value, nil
}
