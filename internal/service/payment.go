package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"ledgerkeep/internal/domain"
)

var (
	ErrSourceAccountNotFound      = errors.New("source account not found")
	ErrDestinationAccountNotFound = errors.New("destination account not found")
)

// TxBeginner opens database transactions; *pgxpool.Pool satisfies it.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// AccountInvalidator drops cached account state after a write the store did
// not see; *store.Store satisfies it.
type AccountInvalidator interface {
	InvalidateAccount(nameOwner string)
}

// PaymentService executes payments and transfers. Each one creates the two
// ledger transactions and the payment/transfer row inside a single database
// transaction, in FK order: the legs first, then the row referencing their
// GUIDs. Any failure rolls back the whole movement. The account totals are
// rewritten inside the transaction, bypassing the store, so both accounts are
// evicted from the cache once the commit lands.
type PaymentService struct {
	db    TxBeginner
	cache AccountInvalidator
	log   zerolog.Logger
}

func NewPaymentService(db TxBeginner, cache AccountInvalidator, log zerolog.Logger) *PaymentService {
	return &PaymentService{db: db, cache: cache, log: log}
}

func (s *PaymentService) invalidateAccounts(accounts ...string) {
	if s.cache == nil {
		return
	}
	for _, nameOwner := range accounts {
		s.cache.InvalidateAccount(nameOwner)
	}
}

// ProcessPayment records a payment from a debit account toward a credit
// account. Both legs carry a negative amount: money leaves the source, and
// the destination's owed balance shrinks.
func (s *PaymentService) ProcessPayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("tx begin failed: %w", err)
	}
	defer tx.Rollback(ctx)

	source, destination, err := lockAccountPair(ctx, tx, payment.SourceAccount, payment.DestinationAccount)
	if err != nil {
		return nil, err
	}

	legAmount := payment.Amount.Neg()
	payment.GUIDSource, err = insertLeg(ctx, tx, source, payment.TransactionDate, legAmount, "payment")
	if err != nil {
		return nil, err
	}
	payment.GUIDDestination, err = insertLeg(ctx, tx, destination, payment.TransactionDate, legAmount, "payment")
	if err != nil {
		return nil, err
	}
	if err := payment.ValidateGUIDs(); err != nil {
		return nil, err
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO t_payment (source_account, destination_account, transaction_date, amount,
		    guid_source, guid_destination, active_status)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING payment_id, date_added, date_updated`,
		payment.SourceAccount, payment.DestinationAccount, payment.TransactionDate,
		payment.Amount, payment.GUIDSource, payment.GUIDDestination,
	)
	if err := row.Scan(&payment.PaymentID, &payment.DateAdded, &payment.DateUpdated); err != nil {
		return nil, mapPgError(err)
	}
	payment.ActiveStatus = true

	if err := refreshTotals(ctx, tx, payment.SourceAccount, payment.DestinationAccount); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("tx commit failed: %w", err)
	}
	s.invalidateAccounts(payment.SourceAccount, payment.DestinationAccount)

	s.log.Info().
		Str("source", payment.SourceAccount).
		Str("destination", payment.DestinationAccount).
		Str("amount", payment.Amount.String()).
		Msg("payment processed")
	return payment, nil
}

// ProcessTransfer moves money between two debit accounts: negative leg on the
// source, positive leg on the destination.
func (s *PaymentService) ProcessTransfer(ctx context.Context, transfer *domain.Transfer) (*domain.Transfer, error) {
	if err := transfer.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("tx begin failed: %w", err)
	}
	defer tx.Rollback(ctx)

	source, destination, err := lockAccountPair(ctx, tx, transfer.SourceAccount, transfer.DestinationAccount)
	if err != nil {
		return nil, err
	}

	transfer.GUIDSource, err = insertLeg(ctx, tx, source, transfer.TransactionDate, transfer.Amount.Neg(), "transfer")
	if err != nil {
		return nil, err
	}
	transfer.GUIDDestination, err = insertLeg(ctx, tx, destination, transfer.TransactionDate, transfer.Amount, "transfer")
	if err != nil {
		return nil, err
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO t_transfer (source_account, destination_account, transaction_date, amount,
		    guid_source, guid_destination, active_status)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING transfer_id, date_added, date_updated`,
		transfer.SourceAccount, transfer.DestinationAccount, transfer.TransactionDate,
		transfer.Amount, transfer.GUIDSource, transfer.GUIDDestination,
	)
	if err := row.Scan(&transfer.TransferID, &transfer.DateAdded, &transfer.DateUpdated); err != nil {
		return nil, mapPgError(err)
	}
	transfer.ActiveStatus = true

	if err := refreshTotals(ctx, tx, transfer.SourceAccount, transfer.DestinationAccount); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("tx commit failed: %w", err)
	}
	s.invalidateAccounts(transfer.SourceAccount, transfer.DestinationAccount)

	s.log.Info().
		Str("source", transfer.SourceAccount).
		Str("destination", transfer.DestinationAccount).
		Str("amount", transfer.Amount.String()).
		Msg("transfer processed")
	return transfer, nil
}

type lockedAccount struct {
	id        int64
	nameOwner string
	kind      domain.AccountType
}

// lockAccountPair row-locks both accounts for the duration of the
// transaction so concurrent movements against the same accounts serialize at
// the database. Locks are always acquired in name order regardless of
// direction, otherwise two opposing movements could deadlock.
func lockAccountPair(ctx context.Context, tx pgx.Tx, sourceName, destinationName string) (*lockedAccount, *lockedAccount, error) {
	first, second := sourceName, destinationName
	if destinationName < sourceName {
		first, second = destinationName, sourceName
	}

	locked := make(map[string]*lockedAccount, 2)
	for _, nameOwner := range []string{first, second} {
		account, err := lockAccount(ctx, tx, nameOwner)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				if nameOwner == sourceName {
					return nil, nil, ErrSourceAccountNotFound
				}
				return nil, nil, ErrDestinationAccountNotFound
			}
			return nil, nil, err
		}
		locked[nameOwner] = account
	}
	return locked[sourceName], locked[destinationName], nil
}

func lockAccount(ctx context.Context, tx pgx.Tx, nameOwner string) (*lockedAccount, error) {
	var a lockedAccount
	err := tx.QueryRow(ctx, `
		SELECT account_id, account_name_owner, account_type
		FROM t_account WHERE account_name_owner = $1 FOR UPDATE`,
		nameOwner,
	).Scan(&a.id, &a.nameOwner, &a.kind)
	if err != nil {
		return nil, mapPgError(err)
	}
	return &a, nil
}

func insertLeg(ctx context.Context, tx pgx.Tx, account *lockedAccount, date time.Time, amount decimal.Decimal, description string) (string, error) {
	guid := uuid.NewString()
	_, err := tx.Exec(ctx, `
		INSERT INTO t_transaction (guid, account_id, account_type, account_name_owner,
		    transaction_date, description, category, amount, transaction_state,
		    active_status, reoccurring, reoccurring_type, notes)
		VALUES ($1, $2, $3, $4, $5, $6, '', $7, 'outstanding', TRUE, FALSE, 'undefined', $8)`,
		guid, account.id, account.kind, account.nameOwner,
		date, description, amount, "")
	if err != nil {
		return "", mapPgError(err)
	}
	return guid, nil
}

func refreshTotals(ctx context.Context, tx pgx.Tx, accounts ...string) error {
	for _, nameOwner := range accounts {
		_, err := tx.Exec(ctx, `
			UPDATE t_account SET
			    cleared = COALESCE((SELECT SUM(amount) FROM t_transaction
			        WHERE account_name_owner = $1 AND transaction_state = 'cleared' AND active_status = TRUE), 0),
			    outstanding = COALESCE((SELECT SUM(amount) FROM t_transaction
			        WHERE account_name_owner = $1 AND transaction_state = 'outstanding' AND active_status = TRUE), 0),
			    future = COALESCE((SELECT SUM(amount) FROM t_transaction
			        WHERE account_name_owner = $1 AND transaction_state = 'future' AND active_status = TRUE), 0)
			WHERE account_name_owner = $1`, nameOwner)
		if err != nil {
			return mapPgError(err)
		}
	}
	return nil
}

func mapPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w (%s)", domain.ErrConflict, pgErr.ConstraintName)
		case "23503":
			return fmt.Errorf("%w (%s)", domain.ErrForeignKey, pgErr.ConstraintName)
		case "23514":
			return fmt.Errorf("%w (%s)", domain.ErrCheckViolation, pgErr.ConstraintName)
		}
	}
	return err
}
