package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts/marketplace"
)

type Marketplace struct {
	market    *marketplace.Market
	owner     string
	sanitizer *bluemonday.Policy
}

func NewMarketplace(market *marketplace.Market, owner string) Marketplace {
	return Marketplace{market: market, owner: owner, sanitizer: bluemonday.StrictPolicy()}
}

func (m Marketplace) Create(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required,max=255"`
		Description string `json:"description" binding:"required,max=10000"`
		Price       uint64 `json:"price"`
		Efficiency  uint16 `json:"efficiency"`
		RiskFactor  uint16 `json:"riskFactor"`
		DataURL     string `json:"dataUrl" binding:"omitempty,url,max=512"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	id := m.market.CreateListing(
		m.sanitizer.Sanitize(req.Title),
		m.sanitizer.Sanitize(req.Description),
		req.Price,
		req.Efficiency,
		req.RiskFactor,
		req.DataURL,
		c.GetString("addr"),
	)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (m Marketplace) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"listings": m.market.List()})
}

func (m Marketplace) Get(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	l, err := m.market.Get(id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listing": l})
}

func (m Marketplace) Purchase(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	buyer := c.GetString("addr")

	if err := m.market.Purchase(id, buyer); err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": m.market.Balance(buyer)})
}

func (m Marketplace) Remove(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := m.market.Remove(id, c.GetString("addr")); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (m Marketplace) MyBalance(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"balance": m.market.Balance(c.GetString("addr"))})
}

// AdminDeposit funds a principal. Only the contract owner may call it; the
// ledger itself has no faucet semantics.
func (m Marketplace) AdminDeposit(c *gin.Context) {
	if c.GetString("addr") != m.owner {
		c.JSON(http.StatusForbidden, gin.H{"err": "not authorized"})
		return
	}

	var req struct {
		Principal string `json:"principal" binding:"required,max=128"`
		Amount    uint64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	m.market.Deposit(req.Principal, req.Amount)
	c.JSON(http.StatusOK, gin.H{"balance": m.market.Balance(req.Principal)})
}
