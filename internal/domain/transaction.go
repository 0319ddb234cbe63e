package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionState tracks where a transaction sits in its lifecycle.
type TransactionState string

const (
	TransactionStateCleared     TransactionState = "cleared"
	TransactionStateOutstanding TransactionState = "outstanding"
	TransactionStateFuture      TransactionState = "future"
	TransactionStateUndefined   TransactionState = "undefined"
)

func (s TransactionState) Valid() bool {
	switch s {
	case TransactionStateCleared, TransactionStateOutstanding, TransactionStateFuture, TransactionStateUndefined:
		return true
	}
	return false
}

// ReoccurringType marks the repeat cadence of a recurring transaction.
type ReoccurringType string

const (
	ReoccurringOnetime     ReoccurringType = "onetime"
	ReoccurringMonthly     ReoccurringType = "monthly"
	ReoccurringAnnually    ReoccurringType = "annually"
	ReoccurringFortnightly ReoccurringType = "fortnightly"
	ReoccurringQuarterly   ReoccurringType = "quarterly"
	ReoccurringUndefined   ReoccurringType = "undefined"
)

func (r ReoccurringType) Valid() bool {
	switch r {
	case ReoccurringOnetime, ReoccurringMonthly, ReoccurringAnnually,
		ReoccurringFortnightly, ReoccurringQuarterly, ReoccurringUndefined:
		return true
	}
	return false
}

// Transaction is a single ledger row. It references its Account by the full
// (account_id, account_name_owner, account_type) triple and carries a
// globally unique GUID.
type Transaction struct {
	TransactionID    int64            `json:"transactionId"`
	GUID             string           `json:"guid"`
	AccountID        int64            `json:"accountId"`
	AccountType      AccountType      `json:"accountType"`
	AccountNameOwner string           `json:"accountNameOwner"`
	TransactionDate  time.Time        `json:"transactionDate"`
	Description      string           `json:"description"`
	Category         string           `json:"category"`
	Amount           decimal.Decimal  `json:"amount"`
	TransactionState TransactionState `json:"transactionState"`
	ActiveStatus     bool             `json:"activeStatus"`
	Reoccurring      bool             `json:"reoccurring"`
	ReoccurringType  ReoccurringType  `json:"reoccurringType"`
	Notes            string           `json:"notes"`
	DateAdded        time.Time        `json:"dateAdded"`
	DateUpdated      time.Time        `json:"dateUpdated"`
}

func (t *Transaction) Validate() error {
	if err := requireGUID("guid", t.GUID); err != nil {
		return err
	}
	if err := requireLowercase("accountNameOwner", t.AccountNameOwner); err != nil {
		return err
	}
	if err := requirePattern("accountNameOwner", t.AccountNameOwner, AccountNamePattern); err != nil {
		return err
	}
	if !t.AccountType.Valid() {
		return validationErr("accountType", "must be one of credit, debit, undefined")
	}
	if err := requireLowercase("description", t.Description); err != nil {
		return err
	}
	if err := requireLength("description", t.Description, 1, DescriptionMaxLen); err != nil {
		return err
	}
	if err := requireLowercase("category", t.Category); err != nil {
		return err
	}
	if err := requireLength("category", t.Category, 0, CategoryNameMaxLen); err != nil {
		return err
	}
	if err := requireLowercase("notes", t.Notes); err != nil {
		return err
	}
	if err := requireLength("notes", t.Notes, 0, NotesMaxLen); err != nil {
		return err
	}
	if !t.TransactionState.Valid() {
		return validationErr("transactionState", "must be one of cleared, outstanding, future, undefined")
	}
	if !t.ReoccurringType.Valid() {
		return validationErr("reoccurringType", "unknown reoccurring type")
	}
	if t.TransactionDate.IsZero() {
		return validationErr("transactionDate", "must be set")
	}
	return requireMoney("amount", t.Amount, 12)
}
