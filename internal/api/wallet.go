package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Query parsing

	"bet_wallet/internal/domain"     // Error kinds
	"bet_wallet/internal/ledger"     // Account ledger
	"bet_wallet/internal/middleware" // Authenticated user id

	"github.com/gin-gonic/gin" // Gin web framework
)

// DepositRequest represents a sandbox deposit
type DepositRequest struct {
	Amount int64 `json:"amount"` // Whole units, must be positive
}

// DepositHandler credits virtual funds to the authenticated user's wallet
func DepositHandler(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			respondError(c, domain.ErrUnauthorized)
			return
		}
		var req DepositRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
			respondError(c, domain.ErrInvalidAmount)
			return
		}
		balance, err := l.Credit(c.Request.Context(), userID, req.Amount, domain.KindDeposit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "balance": balance})
	}
}

// BalanceHandler returns the committed balance of the authenticated user
func BalanceHandler(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			respondError(c, domain.ErrUnauthorized)
			return
		}
		balance, err := l.Read(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"balance": balance})
	}
}

// TransactionsHandler returns the authenticated user's transactions, newest first
func TransactionsHandler(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			respondError(c, domain.ErrUnauthorized)
			return
		}
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))           // Invalid values fall back to page 1
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20")) // and a page size of 20
		p, err := l.History(c.Request.Context(), userID, page, pageSize)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
