package marketplace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts"
)

func newTestMarket() *Market {
	return New(Options{})
}

func createSample(m *Market, price uint64, seller string) uint64 {
	return m.CreateListing(
		"Cosmic String Resonance Harvester",
		"Efficient energy extraction using string resonance",
		price, 85, 3,
		"https://example.com/resonance-harvester.data",
		seller,
	)
}

// =============================================================================
// Listings
// =============================================================================

func TestCreateListing(t *testing.T) {
	m := newTestMarket()

	id := createSample(m, 1_000_000, "seller1")
	assert.Equal(t, uint64(1), id)

	l, err := m.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Cosmic String Resonance Harvester", l.Title)
	assert.Equal(t, uint64(1_000_000), l.Price)
	assert.Equal(t, uint16(85), l.Efficiency)
	assert.Equal(t, uint16(3), l.RiskFactor)
	assert.Equal(t, "seller1", l.Seller)
	assert.False(t, l.CreationTime.IsZero())
}

func TestListingIDsNeverReused(t *testing.T) {
	m := newTestMarket()
	first := createSample(m, 100, "seller1")
	require.NoError(t, m.Remove(first, "seller1"))

	second := createSample(m, 100, "seller1")
	assert.Equal(t, uint64(2), second)
	assert.Len(t, m.List(), 1)
}

func TestRemoveListing(t *testing.T) {
	m := newTestMarket()
	id := createSample(m, 750_000, "seller3")

	require.NoError(t, m.Remove(id, "seller3"))

	_, err := m.Get(id)
	assert.ErrorIs(t, err, contracts.ErrInvalidListing)
}

func TestRemoveRequiresSeller(t *testing.T) {
	m := newTestMarket()
	id := createSample(m, 1_500_000, "seller5")

	err := m.Remove(id, "unauthorized_user")
	assert.ErrorIs(t, err, contracts.ErrNotAuthorized)

	// listing untouched
	l, err := m.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "seller5", l.Seller)
}

func TestRemoveUnknownListing(t *testing.T) {
	m := newTestMarket()
	err := m.Remove(7, "seller1")
	assert.ErrorIs(t, err, contracts.ErrInvalidListing)
}

// =============================================================================
// Purchases
// =============================================================================

func TestPurchaseTransfersBalance(t *testing.T) {
	m := newTestMarket()
	id := createSample(m, 500_000, "seller2")
	m.Deposit("buyer1", 1_000_000)

	require.NoError(t, m.Purchase(id, "buyer1"))

	assert.Equal(t, uint64(500_000), m.Balance("buyer1"))
	assert.Equal(t, uint64(500_000), m.Balance("seller2"))
}

// TestPurchaseConservesTotalBalance checks sum-before == sum-after across a
// chain of purchases between several principals.
func TestPurchaseConservesTotalBalance(t *testing.T) {
	m := newTestMarket()
	a := createSample(m, 300, "seller1")
	b := createSample(m, 200, "seller2")

	m.Deposit("buyer1", 1_000)
	m.Deposit("buyer2", 500)

	principals := []string{"buyer1", "buyer2", "seller1", "seller2"}
	total := func() uint64 {
		var sum uint64
		for _, p := range principals {
			sum += m.Balance(p)
		}
		return sum
	}

	before := total()
	require.NoError(t, m.Purchase(a, "buyer1"))
	assert.Equal(t, before, total())
	require.NoError(t, m.Purchase(b, "buyer2"))
	assert.Equal(t, before, total())
	require.NoError(t, m.Purchase(b, "seller1")) // sellers can spend earnings
	assert.Equal(t, before, total())
}

func TestPurchaseInsufficientBalance(t *testing.T) {
	m := newTestMarket()
	id := createSample(m, 2_000_000, "seller4")
	m.Deposit("buyer2", 1_000_000)

	err := m.Purchase(id, "buyer2")
	assert.ErrorIs(t, err, contracts.ErrInsufficientBalance)

	// neither side mutated
	assert.Equal(t, uint64(1_000_000), m.Balance("buyer2"))
	assert.Equal(t, uint64(0), m.Balance("seller4"))
}

func TestPurchaseWithExactBalance(t *testing.T) {
	m := newTestMarket()
	id := createSample(m, 1_000, "seller1")
	m.Deposit("buyer1", 1_000)

	require.NoError(t, m.Purchase(id, "buyer1"))
	assert.Equal(t, uint64(0), m.Balance("buyer1"))
	assert.Equal(t, uint64(1_000), m.Balance("seller1"))
}

func TestPurchaseWithZeroBalance(t *testing.T) {
	m := newTestMarket()
	id := createSample(m, 1, "seller1")
	err := m.Purchase(id, "stranger")
	assert.ErrorIs(t, err, contracts.ErrInsufficientBalance)
}

func TestPurchaseUnknownListing(t *testing.T) {
	m := newTestMarket()
	m.Deposit("buyer1", 100)
	err := m.Purchase(3, "buyer1")
	assert.ErrorIs(t, err, contracts.ErrInvalidListing)
	assert.Equal(t, uint64(100), m.Balance("buyer1"))
}

func TestListingRemainsPurchasableByDefault(t *testing.T) {
	m := newTestMarket()
	id := createSample(m, 100, "seller1")
	m.Deposit("buyer1", 300)

	require.NoError(t, m.Purchase(id, "buyer1"))
	require.NoError(t, m.Purchase(id, "buyer1"))
	require.NoError(t, m.Purchase(id, "buyer1"))

	assert.Equal(t, uint64(0), m.Balance("buyer1"))
	assert.Equal(t, uint64(300), m.Balance("seller1"))

	_, err := m.Get(id)
	assert.NoError(t, err)
}

func TestSingleSaleRemovesListingAfterPurchase(t *testing.T) {
	m := New(Options{SingleSale: true})
	id := createSample(m, 100, "seller1")
	m.Deposit("buyer1", 200)

	require.NoError(t, m.Purchase(id, "buyer1"))

	_, err := m.Get(id)
	assert.ErrorIs(t, err, contracts.ErrInvalidListing)

	err = m.Purchase(id, "buyer1")
	assert.ErrorIs(t, err, contracts.ErrInvalidListing)
	assert.Equal(t, uint64(100), m.Balance("buyer1"))
}

// =============================================================================
// Balances
// =============================================================================

func TestAbsentPrincipalHasZeroBalance(t *testing.T) {
	m := newTestMarket()
	assert.Equal(t, uint64(0), m.Balance("nobody"))
}

func TestDepositAccumulates(t *testing.T) {
	m := newTestMarket()
	m.Deposit("buyer1", 250)
	m.Deposit("buyer1", 750)
	assert.Equal(t, uint64(1_000), m.Balance("buyer1"))
}
