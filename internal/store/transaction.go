package store

import (
	"context"
	"time"

	"ledgerkeep/internal/domain"
)

const transactionColumns = `transaction_id, guid, account_id, account_type, account_name_owner,
	transaction_date, description, category, amount, transaction_state, active_status,
	reoccurring, reoccurring_type, notes, date_added, date_updated`

func scanTransaction(row interface{ Scan(...any) error }) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.TransactionID, &t.GUID, &t.AccountID, &t.AccountType, &t.AccountNameOwner,
		&t.TransactionDate, &t.Description, &t.Category, &t.Amount, &t.TransactionState,
		&t.ActiveStatus, &t.Reoccurring, &t.ReoccurringType, &t.Notes,
		&t.DateAdded, &t.DateUpdated,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &t, nil
}

func (s *Store) InsertTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO t_transaction (guid, account_id, account_type, account_name_owner,
		    transaction_date, description, category, amount, transaction_state,
		    active_status, reoccurring, reoccurring_type, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+transactionColumns,
		tx.GUID, tx.AccountID, tx.AccountType, tx.AccountNameOwner,
		tx.TransactionDate, tx.Description, tx.Category, tx.Amount, tx.TransactionState,
		tx.ActiveStatus, tx.Reoccurring, tx.ReoccurringType, tx.Notes,
	)
	inserted, err := scanTransaction(row)
	if err != nil {
		return nil, err
	}
	// Denormalized account totals went stale.
	s.cache.invalidate(tx.AccountNameOwner)
	return inserted, nil
}

func (s *Store) FetchTransactionByGUID(ctx context.Context, guid string) (*domain.Transaction, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+transactionColumns+" FROM t_transaction WHERE guid = $1", guid)
	return scanTransaction(row)
}

func (s *Store) ListTransactionsByAccount(ctx context.Context, nameOwner string) ([]domain.Transaction, error) {
	rows, err := s.db.Query(ctx,
		"SELECT "+transactionColumns+` FROM t_transaction
		WHERE account_name_owner = $1
		ORDER BY transaction_date DESC, transaction_id DESC`, nameOwner)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (s *Store) ListTransactionsByCategory(ctx context.Context, category string) ([]domain.Transaction, error) {
	rows, err := s.db.Query(ctx,
		"SELECT "+transactionColumns+` FROM t_transaction
		WHERE category = $1
		ORDER BY transaction_date DESC, transaction_id DESC`, category)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (s *Store) ListTransactionsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	rows, err := s.db.Query(ctx,
		"SELECT "+transactionColumns+` FROM t_transaction
		WHERE transaction_date BETWEEN $1 AND $2
		ORDER BY transaction_date DESC, transaction_id DESC`, from, to)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func collectTransactions(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *tx)
	}
	return transactions, mapError(rows.Err())
}

// UpdateTransactionState moves a transaction between lifecycle states without
// touching the rest of the row.
func (s *Store) UpdateTransactionState(ctx context.Context, guid string, state domain.TransactionState) (*domain.Transaction, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE t_transaction SET transaction_state = $2
		WHERE guid = $1
		RETURNING `+transactionColumns,
		guid, state)
	updated, err := scanTransaction(row)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate(updated.AccountNameOwner)
	return updated, nil
}

func (s *Store) DeleteTransactionByGUID(ctx context.Context, guid string) error {
	var nameOwner string
	err := s.db.QueryRow(ctx,
		"DELETE FROM t_transaction WHERE guid = $1 RETURNING account_name_owner", guid,
	).Scan(&nameOwner)
	if err != nil {
		return mapError(err)
	}
	s.cache.invalidate(nameOwner)
	return nil
}
