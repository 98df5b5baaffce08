package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts/nft"
)

type Tokens struct {
	reg       *nft.Registry
	sanitizer *bluemonday.Policy
}

func NewTokens(reg *nft.Registry) Tokens {
	return Tokens{reg: reg, sanitizer: bluemonday.StrictPolicy()}
}

func (t Tokens) Mint(c *gin.Context) {
	var req struct {
		Name            string `json:"name" binding:"required,max=255"`
		Description     string `json:"description" binding:"max=10000"`
		SegmentLength   uint64 `json:"segmentLength"`
		EnergyPotential uint64 `json:"energyPotential"`
		ImageURL        string `json:"imageUrl" binding:"omitempty,url,max=512"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	id := t.reg.Mint(
		t.sanitizer.Sanitize(req.Name),
		t.sanitizer.Sanitize(req.Description),
		req.SegmentLength,
		req.EnergyPotential,
		req.ImageURL,
		c.GetString("addr"),
	)
	c.JSON(http.StatusCreated, gin.H{"tokenId": id})
}

func (t Tokens) Get(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	md, err := t.reg.Get(id)
	if err != nil {
		abortWith(c, err)
		return
	}
	owner, _ := t.reg.Owner(id)
	c.JSON(http.StatusOK, gin.H{"token": md, "owner": owner})
}

func (t Tokens) Transfer(c *gin.Context) {
	var req struct {
		Recipient string `json:"recipient" binding:"required,max=128"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := t.reg.Transfer(id, c.GetString("addr"), req.Recipient); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
