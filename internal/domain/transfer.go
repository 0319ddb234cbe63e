package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer moves money between two debit accounts. Same shape as Payment but
// kept as its own entity because the two are persisted and queried separately.
type Transfer struct {
	TransferID         int64           `json:"transferId"`
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

func (t *Transfer) Validate() error {
	if err := requireAccountPair(t.SourceAccount, t.DestinationAccount); err != nil {
		return err
	}
	if t.TransactionDate.IsZero() {
		return validationErr("transactionDate", "must be set")
	}
	if err := requireNonNegative("amount", t.Amount); err != nil {
		return err
	}
	return requireMoney("amount", t.Amount, 8)
}
