// Package nft implements the cosmic string NFT registry: mint-once metadata
// plus a mutable owner field transferable only by the current owner.
package nft

import (
	"sync"
	"time"

	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts"
)

// Metadata is immutable after minting. Ownership lives in a separate map so
// transfers never touch the metadata record.
type Metadata struct {
	TokenID         uint64    `json:"tokenId"`
	Creator         string    `json:"creator"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	SegmentLength   uint64    `json:"segmentLength"`
	EnergyPotential uint64    `json:"energyPotential"`
	DiscoveryTime   time.Time `json:"discoveryTime"`
	ImageURL        string    `json:"imageUrl"`
}

type Registry struct {
	mu       sync.Mutex
	counter  contracts.Counter
	metadata map[uint64]*Metadata
	owners   map[uint64]string
}

func New() *Registry {
	return &Registry{
		metadata: make(map[uint64]*Metadata),
		owners:   make(map[uint64]string),
	}
}

// Mint creates a token owned by its creator and returns the token ID.
// Minting always succeeds.
func (r *Registry) Mint(name, description string, segmentLength, energyPotential uint64, imageURL, creator string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.counter.Next()
	r.metadata[id] = &Metadata{
		TokenID:         id,
		Creator:         creator,
		Name:            name,
		Description:     description,
		SegmentLength:   segmentLength,
		EnergyPotential: energyPotential,
		DiscoveryTime:   time.Now(),
		ImageURL:        imageURL,
	}
	r.owners[id] = creator
	return id
}

// Transfer reassigns ownership. Only the current owner may transfer.
func (r *Registry) Transfer(tokenID uint64, sender, recipient string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner, ok := r.owners[tokenID]
	if !ok {
		return contracts.ErrUnknownToken
	}
	if owner != sender {
		return contracts.ErrNotAuthorized
	}
	r.owners[tokenID] = recipient
	return nil
}

// Owner reports the current owner of a token.
func (r *Registry) Owner(tokenID uint64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner, ok := r.owners[tokenID]
	if !ok {
		return "", contracts.ErrUnknownToken
	}
	return owner, nil
}

// Get returns a copy of a token's metadata.
func (r *Registry) Get(tokenID uint64) (Metadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	md, ok := r.metadata[tokenID]
	if !ok {
		return Metadata{}, contracts.ErrUnknownToken
	}
	return *md, nil
}
