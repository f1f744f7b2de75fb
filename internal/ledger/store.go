package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"

	"bet_wallet/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists wallets and their transaction history.
type Store interface {
	// Apply commits effects in order against the user's wallet as one unit and returns the final
	// balance. Nothing is written unless every effect succeeds.
	Apply(ctx context.Context, userID uint, effects []Effect) (int64, error)
	// Balance reads the committed balance without taking the row lock.
	Balance(ctx context.Context, userID uint) (int64, error)
	// History returns a page of transactions, newest first, and the total count.
	History(ctx context.Context, userID uint, offset, limit int) ([]domain.Transaction, int64, error)
}

// GormStore is the relational Store. The wallet row is locked with SELECT ... FOR UPDATE for the
// whole unit so balance check, mutation and transaction insert cannot interleave with another unit
// for the same user.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Apply implements Store.
func (s *GormStore) Apply(ctx context.Context, userID uint, effects []Effect) (int64, error) {
	var balance int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var wallet domain.Wallet
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&wallet).Error // SELECT ... FOR UPDATE on the wallet row
		if err != nil {
			return err
		}
		balance = wallet.Balance
		for _, e := range effects {
			if e.Amount > 0 && balance > math.MaxInt64-e.Amount {
				return domain.ErrBalanceLimit
			}
			next := balance + e.Amount
			if next < 0 {
				return domain.ErrInsufficientFunds
			}
			if err := tx.Model(&domain.Wallet{}).
				Where("user_id = ?", userID).
				Update("balance", next).Error; err != nil { // Update wallet balance
				return err
			}
			row := domain.Transaction{UserID: userID, Type: e.Kind, Amount: e.Amount}
			if err := tx.Create(&row).Error; err != nil { // Append transaction record
				return err
			}
			balance = next
		}
		return nil
	})
	if err != nil {
		return 0, classify(err)
	}
	return balance, nil
}

// Balance implements Store.
func (s *GormStore) Balance(ctx context.Context, userID uint) (int64, error) {
	var wallet domain.Wallet
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		return 0, classify(err)
	}
	return wallet.Balance, nil
}

// History implements Store.
func (s *GormStore) History(ctx context.Context, userID uint, offset, limit int) ([]domain.Transaction, int64, error) {
	scope := func() *gorm.DB {
		return s.db.WithContext(ctx).Model(&domain.Transaction{}).Where("user_id = ?", userID)
	}
	var total int64
	if err := scope().Count(&total).Error; err != nil { // Count all user's transactions
		return nil, 0, classify(err)
	}
	txs := make([]domain.Transaction, 0, limit)
	if err := scope().Order("created_at desc").Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&txs).Error; err != nil {
		return nil, 0, classify(err)
	}
	return txs, total, nil
}

// classify keeps domain errors and turns everything else into ErrTransient.
func classify(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrBalanceLimit),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInvalidAmount):
		return err
	default:
		return fmt.Errorf("%w: %w", domain.ErrTransient, err)
	}
}
