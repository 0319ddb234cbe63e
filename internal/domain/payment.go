package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment models a movement of money between two accounts. It references the
// two ledger transactions that record the movement by their GUIDs, so a
// payment can only exist once both legs do.
type Payment struct {
	PaymentID          int64           `json:"paymentId"`
	SourceAccount      string          `json:"sourceAccount"`
	DestinationAccount string          `json:"destinationAccount"`
	TransactionDate    time.Time       `json:"transactionDate"`
	Amount             decimal.Decimal `json:"amount"`
	GUIDSource         string          `json:"guidSource"`
	GUIDDestination    string          `json:"guidDestination"`
	ActiveStatus       bool            `json:"activeStatus"`
	DateAdded          time.Time       `json:"dateAdded"`
	DateUpdated        time.Time       `json:"dateUpdated"`
}

func (p *Payment) Validate() error {
	if err := requireAccountPair(p.SourceAccount, p.DestinationAccount); err != nil {
		return err
	}
	if p.TransactionDate.IsZero() {
		return validationErr("transactionDate", "must be set")
	}
	if err := requireNonNegative("amount", p.Amount); err != nil {
		return err
	}
	return requireMoney("amount", p.Amount, 8)
}

// ValidateGUIDs checks the two transaction references; split out because a
// payment request arrives without GUIDs and acquires them when its ledger
// legs are created.
func (p *Payment) ValidateGUIDs() error {
	if err := requireGUID("guidSource", p.GUIDSource); err != nil {
		return err
	}
	if err := requireGUID("guidDestination", p.GUIDDestination); err != nil {
		return err
	}
	if p.GUIDSource == p.GUIDDestination {
		return validationErr("guidDestination", "source and destination transactions must differ")
	}
	return nil
}

func requireAccountPair(source, destination string) error {
	if err := requireLowercase("sourceAccount", source); err != nil {
		return err
	}
	if err := requirePattern("sourceAccount", source, AccountNamePattern); err != nil {
		return err
	}
	if err := requireLowercase("destinationAccount", destination); err != nil {
		return err
	}
	if err := requirePattern("destinationAccount", destination, AccountNamePattern); err != nil {
		return err
	}
	if source == destination {
		return validationErr("destinationAccount", "source and destination accounts must differ")
	}
	return nil
}
