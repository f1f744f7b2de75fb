package api

import (
	"net/http" // HTTP status codes

	"bet_wallet/internal/account"    // Account service
	"bet_wallet/internal/domain"     // Error kinds
	"bet_wallet/internal/ledger"     // Balance reads
	"bet_wallet/internal/middleware" // Authenticated user id

	"github.com/gin-gonic/gin" // Gin web framework
)

// CredentialsRequest is the body of register and login
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// AuthResponse carries a freshly issued token
type AuthResponse struct {
	OK    bool   `json:"ok"`    // Always true on success
	Token string `json:"token"` // JWT token
}

// RegisterHandler creates a user with a funded wallet and returns a token
func RegisterHandler(accounts *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid"})
			return
		}
		_, token, err := accounts.Register(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, AuthResponse{OK: true, Token: token})
	}
}

// LoginHandler authenticates a user and returns a token
func LoginHandler(accounts *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid"})
			return
		}
		token, err := accounts.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, AuthResponse{OK: true, Token: token})
	}
}

// MeHandler returns the authenticated user and their balance
func MeHandler(accounts *account.Service, l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			respondError(c, domain.ErrUnauthorized)
			return
		}
		user, err := accounts.User(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		balance, err := l.Read(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user":    gin.H{"id": user.ID, "email": user.Email}, // Public user fields
			"balance": balance,                                   // Committed balance
		})
	}
}
