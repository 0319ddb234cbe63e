package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClaimStatus tracks an insurance claim attached to a medical expense.
type ClaimStatus string

const (
	ClaimStatusSubmitted  ClaimStatus = "submitted"
	ClaimStatusProcessing ClaimStatus = "processing"
	ClaimStatusApproved   ClaimStatus = "approved"
	ClaimStatusDenied     ClaimStatus = "denied"
	ClaimStatusPaid       ClaimStatus = "paid"
	ClaimStatusClosed     ClaimStatus = "closed"
)

func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimStatusSubmitted, ClaimStatusProcessing, ClaimStatusApproved,
		ClaimStatusDenied, ClaimStatusPaid, ClaimStatusClosed:
		return true
	}
	return false
}

// MedicalExpense overlays insurance bookkeeping on top of a ledger
// transaction. The FK to t_transaction ties the expense to the money that
// actually moved; the optional family member attributes it to a person.
type MedicalExpense struct {
	MedicalExpenseID   int64           `json:"medicalExpenseId"`
	TransactionID      int64           `json:"transactionId"`
	FamilyMemberID     int64           `json:"familyMemberId,omitempty"`
	ServiceDate        time.Time       `json:"serviceDate"`
	ServiceDescription string          `json:"serviceDescription"`
	BilledAmount       decimal.Decimal `json:"billedAmount"`
	InsuranceDiscount  decimal.Decimal `json:"insuranceDiscount"`
	InsurancePaid      decimal.Decimal `json:"insurancePaid"`
	PaidDate           time.Time       `json:"paidDate"`
	ClaimNumber        string          `json:"claimNumber"`
	ClaimStatus        ClaimStatus     `json:"claimStatus"`
	IsOutOfNetwork     bool            `json:"isOutOfNetwork"`
	ActiveStatus       bool            `json:"activeStatus"`
	DateAdded          time.Time       `json:"dateAdded"`
	DateUpdated        time.Time       `json:"dateUpdated"`
}

func (m *MedicalExpense) Validate() error {
	if m.TransactionID <= 0 {
		return validationErr("transactionId", "must reference a transaction")
	}
	if m.ServiceDate.IsZero() {
		return validationErr("serviceDate", "must be set")
	}
	if err := requireLowercase("serviceDescription", m.ServiceDescription); err != nil {
		return err
	}
	if err := requireLength("serviceDescription", m.ServiceDescription, 0, 200); err != nil {
		return err
	}
	if !m.ClaimStatus.Valid() {
		return validationErr("claimStatus", "unknown claim status")
	}
	for _, a := range []struct {
		field  string
		amount decimal.Decimal
	}{
		{"billedAmount", m.BilledAmount},
		{"insuranceDiscount", m.InsuranceDiscount},
		{"insurancePaid", m.InsurancePaid},
	} {
		if err := requireNonNegative(a.field, a.amount); err != nil {
			return err
		}
		if err := requireMoney(a.field, a.amount, 12); err != nil {
			return err
		}
	}
	return nil
}
