package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts/management"
)

type Proposals struct {
	reg       *management.Registry
	sanitizer *bluemonday.Policy
}

func NewProposals(reg *management.Registry) Proposals {
	// Free-form fields are stored as plain text; strip everything.
	return Proposals{reg: reg, sanitizer: bluemonday.StrictPolicy()}
}

func (p Proposals) Create(c *gin.Context) {
	var req struct {
		Title                 string `json:"title" binding:"required,max=255"`
		Description           string `json:"description" binding:"required,max=10000"`
		DetectionMethod       string `json:"detectionMethod" binding:"max=255"`
		ManipulationTechnique string `json:"manipulationTechnique" binding:"max=255"`
		EnergyEstimate        uint64 `json:"energyEstimate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	id := p.reg.Submit(
		p.sanitizer.Sanitize(req.Title),
		p.sanitizer.Sanitize(req.Description),
		p.sanitizer.Sanitize(req.DetectionMethod),
		p.sanitizer.Sanitize(req.ManipulationTechnique),
		req.EnergyEstimate,
		c.GetString("addr"),
	)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (p Proposals) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"proposals": p.reg.List()})
}

func (p Proposals) Get(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	prpsl, err := p.reg.Get(id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proposal": prpsl})
}

func (p Proposals) Vote(c *gin.Context) {
	var req struct {
		Vote *int64 `json:"vote" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := p.reg.Vote(id, *req.Vote, c.GetString("addr")); err != nil {
		abortWith(c, err)
		return
	}

	prpsl, _ := p.reg.Get(id)
	c.JSON(http.StatusCreated, gin.H{"votes": prpsl.Votes})
}

func (p Proposals) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required,max=32"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := p.reg.UpdateStatus(id, req.Status, c.GetString("addr")); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
