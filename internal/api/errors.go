package api

import (
	"errors"   // Error kinds
	"net/http" // HTTP status codes

	"bet_wallet/internal/domain" // Error kinds

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// respondError maps an error kind to the status code and error key the browser client understands
func respondError(c *gin.Context, err error) {
	status, key := http.StatusInternalServerError, "db_error"
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		status, key = http.StatusBadRequest, "invalid_amount"
	case errors.Is(err, domain.ErrInvalidStake):
		status, key = http.StatusBadRequest, "invalid_stake"
	case errors.Is(err, domain.ErrInsufficientFunds):
		status, key = http.StatusBadRequest, "insufficient"
	case errors.Is(err, domain.ErrBalanceLimit):
		status, key = http.StatusBadRequest, "balance_limit"
	case errors.Is(err, domain.ErrAlreadyExists):
		status, key = http.StatusBadRequest, "already_exists"
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, key = http.StatusBadRequest, "invalid"
	case errors.Is(err, domain.ErrUnauthorized):
		status, key = http.StatusUnauthorized, "unauth"
	case errors.Is(err, domain.ErrNotFound):
		status, key = http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrTransient):
		status = http.StatusServiceUnavailable // Rolled back, safe to retry
	}
	if status >= http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(), // Route pattern
			"error": err.Error(),  // Error message
		}).Error("Request failed")
	}
	c.JSON(status, gin.H{"error": key})
}
