package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts/ethics"
)

type Ethics struct {
	log       *ethics.Log
	sanitizer *bluemonday.Policy
}

func NewEthics(log *ethics.Log) Ethics {
	return Ethics{log: log, sanitizer: bluemonday.StrictPolicy()}
}

func (e Ethics) Submit(c *gin.Context) {
	var req struct {
		ProposalID           uint64 `json:"proposalId" binding:"required"`
		EnvironmentalImpact  int    `json:"environmentalImpact"`
		SocietalImpact       int    `json:"societalImpact"`
		TechnologicalRisk    int    `json:"technologicalRisk"`
		LongTermConsequences int    `json:"longTermConsequences"`
		OverallRating        int    `json:"overallRating"`
		Justification        string `json:"justification" binding:"required,max=10000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	id, err := e.log.Submit(
		req.ProposalID,
		req.EnvironmentalImpact,
		req.SocietalImpact,
		req.TechnologicalRisk,
		req.LongTermConsequences,
		req.OverallRating,
		e.sanitizer.Sanitize(req.Justification),
		c.GetString("addr"),
	)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (e Ethics) ListForProposal(c *gin.Context) {
	proposalID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	c.JSON(http.StatusOK, gin.H{"assessments": e.log.ForProposal(proposalID)})
}
