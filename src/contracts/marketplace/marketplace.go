// Package marketplace implements the energy extraction marketplace: a
// listing registry owned by sellers and the balance ledger that settles
// purchases.
package marketplace

import (
	"sync"
	"time"

	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts"
)

// Listing is a marketplace entry. The seller is the only principal allowed
// to remove it and is credited on every purchase.
type Listing struct {
	ID           uint64    `json:"id"`
	Seller       string    `json:"seller"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        uint64    `json:"price"`
	Efficiency   uint16    `json:"efficiency"`
	RiskFactor   uint16    `json:"riskFactor"`
	DataURL      string    `json:"dataUrl"`
	CreationTime time.Time `json:"creationTime"`
}

// Options configures market behavior.
type Options struct {
	// SingleSale removes a listing after its first successful purchase.
	// Off by default: a listing can then be bought repeatedly, matching the
	// original contract behavior.
	SingleSale bool
}

// Market owns the listing registry and the balance ledger. Purchases debit
// the buyer and credit the seller inside one critical section; a failing
// purchase leaves both balances untouched.
type Market struct {
	mu       sync.Mutex
	counter  contracts.Counter
	listings map[uint64]*Listing
	balances map[string]uint64
	opts     Options
}

func New(opts Options) *Market {
	return &Market{
		listings: make(map[uint64]*Listing),
		balances: make(map[string]uint64),
		opts:     opts,
	}
}

// CreateListing stores a new listing and returns its ID. IDs are 1..n in
// creation order and never reused, even after removal.
func (m *Market) CreateListing(title, description string, price uint64, efficiency, riskFactor uint16, dataURL, seller string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.counter.Next()
	m.listings[id] = &Listing{
		ID:           id,
		Seller:       seller,
		Title:        title,
		Description:  description,
		Price:        price,
		Efficiency:   efficiency,
		RiskFactor:   riskFactor,
		DataURL:      dataURL,
		CreationTime: time.Now(),
	}
	return id
}

// Purchase moves the listing price from the buyer to the seller. The total
// balance across all principals is conserved. A buyer whose balance equals
// the price exactly can still purchase.
func (m *Market) Purchase(listingID uint64, buyer string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.listings[listingID]
	if !ok {
		return contracts.ErrInvalidListing
	}
	if m.balances[buyer] < l.Price {
		return contracts.ErrInsufficientBalance
	}

	m.balances[buyer] -= l.Price
	m.balances[l.Seller] += l.Price

	if m.opts.SingleSale {
		delete(m.listings, listingID)
	}
	return nil
}

// Remove deletes a listing. Only its seller may remove it.
func (m *Market) Remove(listingID uint64, remover string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.listings[listingID]
	if !ok {
		return contracts.ErrInvalidListing
	}
	if l.Seller != remover {
		return contracts.ErrNotAuthorized
	}
	delete(m.listings, listingID)
	return nil
}

// Deposit credits a principal's balance. Funding is how test suites and the
// admin surface seed buyers; there is no corresponding withdraw.
func (m *Market) Deposit(principal string, amount uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[principal] += amount
}

// Balance reports a principal's spendable balance. An unknown principal has
// balance 0.
func (m *Market) Balance(principal string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[principal]
}

// Get returns a copy of the listing record.
func (m *Market) Get(listingID uint64) (Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.listings[listingID]
	if !ok {
		return Listing{}, contracts.ErrInvalidListing
	}
	return *l, nil
}

// List returns copies of all live listings ordered by ID.
func (m *Market) List() []Listing {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Listing, 0, len(m.listings))
	for id := uint64(1); id <= m.counter.Last(); id++ {
		if l, ok := m.listings[id]; ok {
			out = append(out, *l)
		}
	}
	return out
}
