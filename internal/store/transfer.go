package store

import (
	"context"

	"ledgerkeep/internal/domain"
)

const transferColumns = `transfer_id, source_account, destination_account, transaction_date,
	amount, guid_source, guid_destination, active_status, date_added, date_updated`

func scanTransfer(row interface{ Scan(...any) error }) (*domain.Transfer, error) {
	var t domain.Transfer
	err := row.Scan(
		&t.TransferID, &t.SourceAccount, &t.DestinationAccount, &t.TransactionDate,
		&t.Amount, &t.GUIDSource, &t.GUIDDestination, &t.ActiveStatus,
		&t.DateAdded, &t.DateUpdated,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &t, nil
}

func (s *Store) FetchTransferByID(ctx context.Context, id int64) (*domain.Transfer, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+transferColumns+" FROM t_transfer WHERE transfer_id = $1", id)
	return scanTransfer(row)
}

func (s *Store) ListTransfers(ctx context.Context) ([]domain.Transfer, error) {
	rows, err := s.db.Query(ctx,
		"SELECT "+transferColumns+" FROM t_transfer ORDER BY transaction_date DESC, transfer_id DESC")
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var transfers []domain.Transfer
	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, *transfer)
	}
	return transfers, mapError(rows.Err())
}

func (s *Store) DeleteTransferByID(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM t_transfer WHERE transfer_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
