package api

import (
	"net/http" // HTTP status codes

	"bet_wallet/internal/domain"     // Error kinds
	"bet_wallet/internal/middleware" // Authenticated user id
	"bet_wallet/internal/settlement" // Bet settlement

	"github.com/gin-gonic/gin" // Gin web framework
)

// BetRequest represents one bet
type BetRequest struct {
	Stake int64  `json:"stake"` // Whole units, must be positive
	Game  string `json:"game"`  // slot, coin, anything else plays the default table
}

// BetHandler settles a bet for the authenticated user
func BetHandler(engine *settlement.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			respondError(c, domain.ErrUnauthorized)
			return
		}
		var req BetRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Stake <= 0 {
			respondError(c, domain.ErrInvalidStake)
			return
		}
		res, err := engine.PlaceBet(c.Request.Context(), userID, req.Stake, req.Game)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "payout": res.Payout, "balance": res.Balance})
	}
}

// GamesHandler lists the odds tables
func GamesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"games": settlement.Tables()})
	}
}
