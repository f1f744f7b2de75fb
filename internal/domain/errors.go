package domain

import "errors"

// Error kinds surfaced by the account, ledger and settlement layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidStake       = errors.New("invalid stake")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	// ErrBalanceLimit rejects a credit that would push a balance past math.MaxInt64.
	ErrBalanceLimit = errors.New("balance limit exceeded")
	// ErrTransient marks a storage failure; the unit was rolled back and the request may be retried.
	ErrTransient = errors.New("transient storage error")
)
