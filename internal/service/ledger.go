package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"ledgerkeep/internal/domain"
)

// LedgerService owns the write path for accounts, categories, and
// transactions: validation first, then FK-safe dependency creation, then the
// insert itself.
type LedgerService struct {
	accounts     AccountStore
	categories   CategoryStore
	transactions TransactionStore
	log          zerolog.Logger
}

func NewLedgerService(accounts AccountStore, categories CategoryStore, transactions TransactionStore, log zerolog.Logger) *LedgerService {
	return &LedgerService{
		accounts:     accounts,
		categories:   categories,
		transactions: transactions,
		log:          log,
	}
}

// EnsureAccount returns the account with the given name, creating a default
// one when it does not exist. Safe to call concurrently: a losing racer's
// duplicate-key failure is swallowed and the winner's row fetched instead.
func (s *LedgerService) EnsureAccount(ctx context.Context, nameOwner string, accountType domain.AccountType) (*domain.Account, error) {
	account, err := s.accounts.FetchAccountByNameOwner(ctx, nameOwner)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	fresh := &domain.Account{
		AccountNameOwner: nameOwner,
		AccountType:      accountType,
		ActiveStatus:     true,
		Moniker:          "0000",
		Outstanding:      decimal.Zero,
		Future:           decimal.Zero,
		Cleared:          decimal.Zero,
	}
	if err := fresh.Validate(); err != nil {
		return nil, err
	}
	inserted, err := s.accounts.InsertAccount(ctx, fresh)
	if err == nil {
		return inserted, nil
	}
	if errors.Is(err, domain.ErrConflict) {
		// Benign race: someone else created it between our fetch and insert.
		s.log.Debug().Str("account", nameOwner).Msg("concurrent account creation, re-fetching")
		return s.accounts.FetchAccountByNameOwner(ctx, nameOwner)
	}
	return nil, err
}

// EnsureCategory mirrors EnsureAccount for categories.
func (s *LedgerService) EnsureCategory(ctx context.Context, name string) (*domain.Category, error) {
	category, err := s.categories.FetchCategoryByName(ctx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	fresh := &domain.Category{CategoryName: name, ActiveStatus: true}
	if err := fresh.Validate(); err != nil {
		return nil, err
	}
	inserted, err := s.categories.InsertCategory(ctx, fresh)
	if err == nil {
		return inserted, nil
	}
	if errors.Is(err, domain.ErrConflict) {
		s.log.Debug().Str("category", name).Msg("concurrent category creation, re-fetching")
		return s.categories.FetchCategoryByName(ctx, name)
	}
	return nil, err
}

// InsertTransaction validates the transaction, creates its account and
// category dependencies when missing, then persists it and refreshes the
// account's denormalized totals.
func (s *LedgerService) InsertTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	if tx.GUID == "" {
		tx.GUID = uuid.NewString()
	}
	if tx.ReoccurringType == "" {
		tx.ReoccurringType = domain.ReoccurringUndefined
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	var category *domain.Category
	if tx.Category != "" {
		var err error
		if category, err = s.EnsureCategory(ctx, tx.Category); err != nil {
			return nil, err
		}
	}
	account, err := s.EnsureAccount(ctx, tx.AccountNameOwner, tx.AccountType)
	if err != nil {
		return nil, err
	}
	tx.AccountID = account.AccountID
	tx.AccountType = account.AccountType

	inserted, err := s.transactions.InsertTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}
	if category != nil {
		if err := s.categories.LinkTransactionCategory(ctx, category.CategoryID, inserted.TransactionID); err != nil {
			s.log.Warn().Err(err).Str("category", category.CategoryName).Msg("category link failed")
		}
	}
	if err := s.accounts.RefreshAccountTotals(ctx, tx.AccountNameOwner); err != nil {
		s.log.Warn().Err(err).Str("account", tx.AccountNameOwner).Msg("totals refresh failed")
	}
	return inserted, nil
}

// UpdateTransactionState moves a transaction between states and keeps the
// account totals in step.
func (s *LedgerService) UpdateTransactionState(ctx context.Context, guid string, state domain.TransactionState) (*domain.Transaction, error) {
	if !state.Valid() {
		return nil, &domain.ValidationError{Field: "transactionState", Rule: "unknown state"}
	}
	updated, err := s.transactions.UpdateTransactionState(ctx, guid, state)
	if err != nil {
		return nil, err
	}
	if err := s.accounts.RefreshAccountTotals(ctx, updated.AccountNameOwner); err != nil {
		s.log.Warn().Err(err).Str("account", updated.AccountNameOwner).Msg("totals refresh failed")
	}
	return updated, nil
}

// DeleteTransaction removes a single transaction by GUID.
func (s *LedgerService) DeleteTransaction(ctx context.Context, guid string) error {
	tx, err := s.transactions.FetchTransactionByGUID(ctx, guid)
	if err != nil {
		return err
	}
	if err := s.transactions.DeleteTransactionByGUID(ctx, guid); err != nil {
		return err
	}
	if err := s.accounts.RefreshAccountTotals(ctx, tx.AccountNameOwner); err != nil {
		s.log.Warn().Err(err).Str("account", tx.AccountNameOwner).Msg("totals refresh failed")
	}
	return nil
}

// DeleteAccount removes an account; the database cascades the delete to every
// dependent transaction.
func (s *LedgerService) DeleteAccount(ctx context.Context, nameOwner string) error {
	return s.accounts.DeleteAccountByNameOwner(ctx, nameOwner)
}
