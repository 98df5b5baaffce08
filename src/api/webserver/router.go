package webserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/chuckobi446/Cosmic-String-Manipulation/src/api/config"
	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts"
)

func attachRoutes(r *gin.Engine, cfg config.Config, regs Registries) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	authH := NewAuth(NewNonceStore(5*time.Minute), []byte(cfg.JWTSecret))
	proposalH := NewProposals(regs.Proposals)
	marketH := NewMarketplace(regs.Market, cfg.ContractOwner)
	ethicsH := NewEthics(regs.Assessments)
	nftH := NewTokens(regs.Tokens)

	limiter := NewRateLimiter(cfg.RateLimit, time.Minute)

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/challenge", authH.Challenge)
		v1.POST("/auth/verify", authH.Verify)

		secured := v1.Use(JWTMiddleware([]byte(cfg.JWTSecret)), RateLimitMiddleware(limiter))
		secured.POST("/proposals", proposalH.Create)
		secured.GET("/proposals", proposalH.List)
		secured.GET("/proposals/:id", proposalH.Get)
		secured.POST("/proposals/:id/votes", proposalH.Vote)
		secured.POST("/proposals/:id/status", proposalH.UpdateStatus)
		secured.GET("/proposals/:id/assessments", ethicsH.ListForProposal)

		secured.POST("/listings", marketH.Create)
		secured.GET("/listings", marketH.List)
		secured.GET("/listings/:id", marketH.Get)
		secured.POST("/listings/:id/purchase", marketH.Purchase)
		secured.DELETE("/listings/:id", marketH.Remove)
		secured.GET("/balances/me", marketH.MyBalance)

		secured.POST("/assessments", ethicsH.Submit)

		secured.POST("/nfts", nftH.Mint)
		secured.GET("/nfts/:id", nftH.Get)
		secured.POST("/nfts/:id/transfer", nftH.Transfer)
	}

	admin := v1.Group("/admin")
	admin.Use(JWTMiddleware([]byte(cfg.JWTSecret)))
	{
		admin.POST("/balances", marketH.AdminDeposit)
	}
}

// statusFor maps registry errors onto HTTP status codes. Handlers only ever
// surface sentinel errors from the contracts package.
func statusFor(err error) int {
	switch {
	case errors.Is(err, contracts.ErrInvalidProposal),
		errors.Is(err, contracts.ErrInvalidListing),
		errors.Is(err, contracts.ErrUnknownToken):
		return http.StatusNotFound
	case errors.Is(err, contracts.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, contracts.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	default:
		return http.StatusBadRequest
	}
}

func abortWith(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"err": err.Error()})
}
