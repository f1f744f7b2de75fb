package domain

import "time"

// TransactionKind names a balance-affecting event.
type TransactionKind string

// Transaction kinds written by the ledger
const (
	KindDeposit TransactionKind = "deposit" // Sandbox deposit
	KindBet     TransactionKind = "bet"     // Stake debit
	KindPayout  TransactionKind = "payout"  // Winning credit
)

// Valid reports whether k is one of the known kinds.
func (k TransactionKind) Valid() bool {
	switch k {
	case KindDeposit, KindBet, KindPayout:
		return true
	}
	return false
}

// Transaction Model. Rows are append-only.
type Transaction struct {
	ID        uint            `gorm:"primaryKey" json:"id"`          // Primary key
	UserID    uint            `gorm:"index;not null" json:"user_id"` // Owning user
	Type      TransactionKind `gorm:"size:16;not null" json:"type"`  // deposit, bet or payout
	Amount    int64           `gorm:"not null" json:"amount"`        // Signed amount, negative for debits
	CreatedAt time.Time       `gorm:"index" json:"created_at"`       // Creation timestamp
}
