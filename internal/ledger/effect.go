package ledger

import (
	"fmt"

	"bet_wallet/internal/domain"
)

// Effect is one signed balance change. Every effect becomes exactly one transaction row.
type Effect struct {
	Kind   domain.TransactionKind
	Amount int64 // positive credits, negative debits
}

// Credit builds an effect adding amount to the balance.
func Credit(kind domain.TransactionKind, amount int64) Effect {
	return Effect{Kind: kind, Amount: amount}
}

// Debit builds an effect removing amount from the balance.
func Debit(kind domain.TransactionKind, amount int64) Effect {
	return Effect{Kind: kind, Amount: -amount}
}

func validate(effects []Effect) error {
	if len(effects) == 0 {
		return fmt.Errorf("%w: empty unit", domain.ErrInvalidAmount)
	}
	for _, e := range effects {
		if e.Amount == 0 {
			return fmt.Errorf("%w: zero %s effect", domain.ErrInvalidAmount, e.Kind)
		}
		if !e.Kind.Valid() {
			return fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidAmount, e.Kind)
		}
	}
	return nil
}
