package store

import (
	"context"

	"ledgerkeep/internal/domain"
)

const paymentColumns = `payment_id, source_account, destination_account, transaction_date,
	amount, guid_source, guid_destination, active_status, date_added, date_updated`

func scanPayment(row interface{ Scan(...any) error }) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.PaymentID, &p.SourceAccount, &p.DestinationAccount, &p.TransactionDate,
		&p.Amount, &p.GUIDSource, &p.GUIDDestination, &p.ActiveStatus,
		&p.DateAdded, &p.DateUpdated,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (s *Store) FetchPaymentByID(ctx context.Context, id int64) (*domain.Payment, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+paymentColumns+" FROM t_payment WHERE payment_id = $1", id)
	return scanPayment(row)
}

func (s *Store) ListPayments(ctx context.Context, activeOnly bool) ([]domain.Payment, error) {
	query := "SELECT " + paymentColumns + " FROM t_payment ORDER BY transaction_date DESC, payment_id DESC"
	if activeOnly {
		query = "SELECT " + paymentColumns + ` FROM t_payment
			WHERE active_status = TRUE ORDER BY transaction_date DESC, payment_id DESC`
	}
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *payment)
	}
	return payments, mapError(rows.Err())
}

// DeletePaymentByID removes only the payment row. The two ledger
// transactions it referenced stay, they still describe money that moved.
func (s *Store) DeletePaymentByID(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM t_payment WHERE payment_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
