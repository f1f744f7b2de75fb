// Package ledger owns per-user balances and the append-only transaction history.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"bet_wallet/internal/domain"
	"bet_wallet/internal/metrics"
	"bet_wallet/internal/utils"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds one ledger unit when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// Page is one page of transaction history.
type Page struct {
	Transactions []domain.Transaction `json:"transactions"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
	Total        int64                `json:"total"`
	TotalPages   int                  `json:"total_pages"`
}

// Ledger validates and commits balance effects through a Store, keeping the read cache coherent.
type Ledger struct {
	store   Store
	cache   *utils.Cache
	timeout time.Duration
	log     logrus.FieldLogger
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithCache enables the Redis read cache for balances and history pages.
func WithCache(c *utils.Cache) Option {
	return func(l *Ledger) { l.cache = c }
}

// WithTimeout bounds every unit, lock wait included.
func WithTimeout(d time.Duration) Option {
	return func(l *Ledger) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithLogger replaces the standard logrus logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(l *Ledger) { l.log = log }
}

// New creates a Ledger over store.
func New(store Store, opts ...Option) *Ledger {
	l := &Ledger{store: store, timeout: DefaultTimeout, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Credit adds amount to the user's balance and appends one transaction of kind.
func (l *Ledger) Credit(ctx context.Context, userID uint, amount int64, kind domain.TransactionKind) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	return l.Apply(ctx, userID, []Effect{Credit(kind, amount)})
}

// Debit removes amount from the user's balance and appends one transaction of kind.
// It fails with ErrInsufficientFunds when the locked balance is below amount.
func (l *Ledger) Debit(ctx context.Context, userID uint, amount int64, kind domain.TransactionKind) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	return l.Apply(ctx, userID, []Effect{Debit(kind, amount)})
}

// Apply commits effects as one unit and returns the resulting balance.
func (l *Ledger) Apply(ctx context.Context, userID uint, effects []Effect) (int64, error) {
	if err := validate(effects); err != nil {
		metrics.ObserveLedgerUnit("invalid")
		return 0, err
	}
	unitCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	balance, err := l.store.Apply(unitCtx, userID, effects) // Locked unit
	if err != nil {
		metrics.ObserveLedgerUnit(outcome(err))
		entry := l.log.WithFields(logrus.Fields{
			"user_id": userID,
			"effects": len(effects),
			"error":   err.Error(),
		})
		if errors.Is(err, domain.ErrTransient) {
			entry.Error("Ledger unit rolled back")
		} else {
			entry.Info("Ledger unit rejected")
		}
		return 0, err
	}
	metrics.ObserveLedgerUnit("committed")

	for _, e := range effects {
		l.log.WithFields(logrus.Fields{
			"user_id": userID,
			"type":    e.Kind,
			"amount":  e.Amount,
		}).Info("Ledger transaction")
	}
	l.invalidate(context.WithoutCancel(ctx), userID)
	return balance, nil
}

// Read returns the committed balance. It never takes the wallet lock.
func (l *Ledger) Read(ctx context.Context, userID uint) (int64, error) {
	key := balanceKey(userID)
	var cached int64
	found, err := l.cache.Get(ctx, key, &cached)
	switch {
	case err != nil:
		metrics.ObserveCacheLookup("error")
		l.log.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Warn("Balance cache read failed")
	case found:
		metrics.ObserveCacheLookup("hit")
		return cached, nil
	case l.cache != nil:
		metrics.ObserveCacheLookup("miss")
	}

	gen, genErr := l.cache.Generation(ctx, generationKey(userID))
	balance, err := l.store.Balance(ctx, userID)
	if err != nil {
		return 0, err
	}
	if genErr == nil {
		_, _ = l.cache.SetAtGeneration(ctx, generationKey(userID), gen, key, balance)
	}
	return balance, nil
}

// History returns one page of the user's transactions, newest first.
func (l *Ledger) History(ctx context.Context, userID uint, page, pageSize int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	key := historyPrefix(userID) + ":page:" + strconv.Itoa(page) + ":size:" + strconv.Itoa(pageSize)
	var cached Page
	if found, err := l.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	gen, genErr := l.cache.Generation(ctx, generationKey(userID))
	txs, total, err := l.store.History(ctx, userID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	p := &Page{
		Transactions: txs,
		Page:         page,
		PageSize:     pageSize,
		Total:        total,
		TotalPages:   (int(total) + pageSize - 1) / pageSize,
	}
	if genErr == nil {
		_, _ = l.cache.SetAtGeneration(ctx, generationKey(userID), gen, key, p)
	}
	return p, nil
}

// invalidate drops cached reads for userID after a commit. The generation is bumped before the
// deletes so a read that loaded pre-commit state cannot refill the cache afterwards.
func (l *Ledger) invalidate(ctx context.Context, userID uint) {
	if l.cache == nil {
		return
	}
	if err := l.cache.Bump(ctx, generationKey(userID)); err != nil {
		l.log.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Warn("Cache generation bump failed")
	}
	if err := l.cache.Delete(ctx, balanceKey(userID)); err != nil {
		l.log.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Warn("Balance cache invalidation failed")
	}
	if err := l.cache.DeletePrefix(ctx, historyPrefix(userID)+":"); err != nil {
		l.log.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Warn("History cache invalidation failed")
	}
}

func balanceKey(userID uint) string {
	return fmt.Sprintf("wallet:user:%d", userID)
}

func generationKey(userID uint) string {
	return fmt.Sprintf("ledger:gen:user:%d", userID)
}

func historyPrefix(userID uint) string {
	return fmt.Sprintf("txhistory:user:%d", userID)
}

func outcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid"
	case errors.Is(err, domain.ErrBalanceLimit):
		return "balance_limit"
	default:
		return "transient"
	}
}
