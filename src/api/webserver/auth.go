package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Auth issues JWTs for claimed principals. Identities are opaque strings
// compared for equality only; there is deliberately no signature scheme
// behind them. The challenge round-trip exists so a token can only be minted
// by a client that actually received the nonce.
type Auth struct {
	nonces    *NonceStore
	jwtSecret []byte
}

func NewAuth(nonces *NonceStore, secret []byte) Auth {
	return Auth{nonces: nonces, jwtSecret: secret}
}

func (a Auth) Challenge(c *gin.Context) {
	var req struct {
		Address string `json:"address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	nonce := uuid.NewString()
	a.nonces.Set(req.Address, nonce)
	c.JSON(http.StatusOK, gin.H{"nonce": nonce})
}

func (a Auth) Verify(c *gin.Context) {
	var req struct {
		Address string `json:"address" binding:"required"`
		Nonce   string `json:"nonce" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	nonce, err := a.nonces.Take(req.Address)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"err": "challenge expired"})
		return
	}
	if nonce != req.Nonce {
		c.JSON(http.StatusUnauthorized, gin.H{"err": "bad nonce"})
		return
	}

	token, err := issueJWT(req.Address, a.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
