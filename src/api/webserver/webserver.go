// Package webserver exposes the cosmic string registries over HTTP. Every
// route lives under /v1; apart from the auth challenge flow, all of them
// require a bearer JWT naming the caller's principal.
package webserver

import (
	"github.com/gin-gonic/gin"

	"github.com/chuckobi446/Cosmic-String-Manipulation/src/api/config"
	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts/ethics"
	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts/management"
	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts/marketplace"
	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts/nft"
)

// Registries bundles the four registry instances the server fronts. The
// server holds no state of its own beyond auth nonces and rate limiting.
type Registries struct {
	Proposals   *management.Registry
	Market      *marketplace.Market
	Assessments *ethics.Log
	Tokens      *nft.Registry
}

func New(cfg config.Config, regs Registries) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	attachRoutes(r, cfg, regs)
	return r
}
