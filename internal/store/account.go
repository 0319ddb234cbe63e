package store

import (
	"context"

	"github.com/shopspring/decimal"

	"ledgerkeep/internal/domain"
)

const accountColumns = `account_id, account_name_owner, account_type, active_status, moniker,
	outstanding, future, cleared, date_closed, validation_date, date_added, date_updated`

func scanAccount(row interface{ Scan(...any) error }) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.AccountID, &a.AccountNameOwner, &a.AccountType, &a.ActiveStatus, &a.Moniker,
		&a.Outstanding, &a.Future, &a.Cleared, &a.DateClosed, &a.ValidationDate,
		&a.DateAdded, &a.DateUpdated,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &a, nil
}

// InsertAccount persists a new account. The returned row carries the
// database-assigned id and trigger-stamped timestamps.
func (s *Store) InsertAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO t_account (account_name_owner, account_type, active_status, moniker, outstanding, future, cleared)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+accountColumns,
		account.AccountNameOwner, account.AccountType, account.ActiveStatus,
		account.Moniker, account.Outstanding, account.Future, account.Cleared,
	)
	inserted, err := scanAccount(row)
	if err != nil {
		return nil, err
	}
	s.cache.set(inserted)
	return inserted, nil
}

// FetchAccountByNameOwner retrieves a single account, serving repeat lookups
// from the cache.
func (s *Store) FetchAccountByNameOwner(ctx context.Context, nameOwner string) (*domain.Account, error) {
	if account, ok := s.cache.get(nameOwner); ok {
		return account, nil
	}
	row := s.db.QueryRow(ctx,
		"SELECT "+accountColumns+" FROM t_account WHERE account_name_owner = $1",
		nameOwner,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, err
	}
	s.cache.set(account)
	return account, nil
}

func (s *Store) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	query := "SELECT " + accountColumns + " FROM t_account ORDER BY account_name_owner"
	if activeOnly {
		query = "SELECT " + accountColumns + " FROM t_account WHERE active_status = TRUE ORDER BY account_name_owner"
	}
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, mapError(rows.Err())
}

// UpdateAccount rewrites the mutable columns. date_updated is stamped by the
// trigger, not by the supplied struct.
func (s *Store) UpdateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE t_account
		SET account_type = $2, active_status = $3, moniker = $4,
		    outstanding = $5, future = $6, cleared = $7, date_closed = $8
		WHERE account_name_owner = $1
		RETURNING `+accountColumns,
		account.AccountNameOwner, account.AccountType, account.ActiveStatus, account.Moniker,
		account.Outstanding, account.Future, account.Cleared, account.DateClosed,
	)
	updated, err := scanAccount(row)
	if err != nil {
		return nil, err
	}
	s.cache.set(updated)
	return updated, nil
}

// DeleteAccountByNameOwner removes the account; dependent transactions go
// with it via ON DELETE CASCADE.
func (s *Store) DeleteAccountByNameOwner(ctx context.Context, nameOwner string) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM t_account WHERE account_name_owner = $1", nameOwner)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	s.cache.invalidate(nameOwner)
	return nil
}

// InvalidateAccount drops the cached entry for an account whose row was
// written outside the store's own methods, such as the in-transaction totals
// refresh during payment processing.
func (s *Store) InvalidateAccount(nameOwner string) {
	s.cache.invalidate(nameOwner)
}

// AccountTotals sums transaction amounts grouped by state across all active
// accounts.
func (s *Store) AccountTotals(ctx context.Context) (map[domain.TransactionState]decimal.Decimal, error) {
	rows, err := s.db.Query(ctx, `
		SELECT t.transaction_state, COALESCE(SUM(t.amount), 0)
		FROM t_transaction t
		JOIN t_account a ON a.account_name_owner = t.account_name_owner
		WHERE t.active_status = TRUE AND a.active_status = TRUE
		GROUP BY t.transaction_state`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	totals := make(map[domain.TransactionState]decimal.Decimal)
	for rows.Next() {
		var state domain.TransactionState
		var sum decimal.Decimal
		if err := rows.Scan(&state, &sum); err != nil {
			return nil, mapError(err)
		}
		totals[state] = sum
	}
	return totals, mapError(rows.Err())
}

// RefreshAccountTotals recomputes the denormalized cleared, outstanding, and
// future columns of one account from its transactions.
func (s *Store) RefreshAccountTotals(ctx context.Context, nameOwner string) error {
	_, err := s.db.Exec(ctx, `
		UPDATE t_account SET
		    cleared = COALESCE((SELECT SUM(amount) FROM t_transaction
		        WHERE account_name_owner = $1 AND transaction_state = 'cleared' AND active_status = TRUE), 0),
		    outstanding = COALESCE((SELECT SUM(amount) FROM t_transaction
		        WHERE account_name_owner = $1 AND transaction_state = 'outstanding' AND active_status = TRUE), 0),
		    future = COALESCE((SELECT SUM(amount) FROM t_transaction
		        WHERE account_name_owner = $1 AND transaction_state = 'future' AND active_status = TRUE), 0)
		WHERE account_name_owner = $1`, nameOwner)
	if err != nil {
		return mapError(err)
	}
	s.cache.invalidate(nameOwner)
	return nil
}
