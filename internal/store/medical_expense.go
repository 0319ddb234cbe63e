package store

import (
	"context"
	"database/sql"

	"ledgerkeep/internal/domain"
)

const medicalExpenseColumns = `medical_expense_id, transaction_id, family_member_id, service_date,
	service_description, billed_amount, insurance_discount, insurance_paid, paid_date,
	claim_number, claim_status, is_out_of_network, active_status, date_added, date_updated`

func scanMedicalExpense(row interface{ Scan(...any) error }) (*domain.MedicalExpense, error) {
	var m domain.MedicalExpense
	var familyMemberID sql.NullInt64
	var paidDate sql.NullTime
	err := row.Scan(&m.MedicalExpenseID, &m.TransactionID, &familyMemberID, &m.ServiceDate,
		&m.ServiceDescription, &m.BilledAmount, &m.InsuranceDiscount, &m.InsurancePaid, &paidDate,
		&m.ClaimNumber, &m.ClaimStatus, &m.IsOutOfNetwork, &m.ActiveStatus, &m.DateAdded, &m.DateUpdated)
	if err != nil {
		return nil, mapError(err)
	}
	if familyMemberID.Valid {
		m.FamilyMemberID = familyMemberID.Int64
	}
	if paidDate.Valid {
		m.PaidDate = paidDate.Time
	}
	return &m, nil
}

func (s *Store) InsertMedicalExpense(ctx context.Context, expense *domain.MedicalExpense) (*domain.MedicalExpense, error) {
	var familyMemberID any
	if expense.FamilyMemberID > 0 {
		familyMemberID = expense.FamilyMemberID
	}
	var paidDate any
	if !expense.PaidDate.IsZero() {
		paidDate = expense.PaidDate
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO t_medical_expense (transaction_id, family_member_id, service_date,
		    service_description, billed_amount, insurance_discount, insurance_paid,
		    paid_date, claim_number, claim_status, is_out_of_network, active_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+medicalExpenseColumns,
		expense.TransactionID, familyMemberID, expense.ServiceDate,
		expense.ServiceDescription, expense.BilledAmount, expense.InsuranceDiscount,
		expense.InsurancePaid, paidDate, expense.ClaimNumber, expense.ClaimStatus,
		expense.IsOutOfNetwork, expense.ActiveStatus,
	)
	return scanMedicalExpense(row)
}

func (s *Store) FetchMedicalExpenseByTransactionID(ctx context.Context, transactionID int64) (*domain.MedicalExpense, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+medicalExpenseColumns+" FROM t_medical_expense WHERE transaction_id = $1", transactionID)
	return scanMedicalExpense(row)
}

func (s *Store) ListMedicalExpensesByFamilyMember(ctx context.Context, familyMemberID int64) ([]domain.MedicalExpense, error) {
	rows, err := s.db.Query(ctx,
		"SELECT "+medicalExpenseColumns+` FROM t_medical_expense
		WHERE family_member_id = $1 AND active_status = TRUE
		ORDER BY service_date DESC`, familyMemberID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var expenses []domain.MedicalExpense
	for rows.Next() {
		expense, err := scanMedicalExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *expense)
	}
	return expenses, mapError(rows.Err())
}

// UpdateMedicalExpenseClaim advances the claim through its lifecycle.
func (s *Store) UpdateMedicalExpenseClaim(ctx context.Context, id int64, status domain.ClaimStatus, claimNumber string) (*domain.MedicalExpense, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE t_medical_expense SET claim_status = $2, claim_number = $3
		WHERE medical_expense_id = $1
		RETURNING `+medicalExpenseColumns,
		id, status, claimNumber)
	return scanMedicalExpense(row)
}

func (s *Store) DeleteMedicalExpenseByID(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM t_medical_expense WHERE medical_expense_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
