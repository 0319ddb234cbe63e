package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType distinguishes debit accounts (bank, checking) from credit
// accounts (cards, lines of credit).
type AccountType string

const (
	AccountTypeCredit    AccountType = "credit"
	AccountTypeDebit     AccountType = "debit"
	AccountTypeUndefined AccountType = "undefined"
)

func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeCredit, AccountTypeDebit, AccountTypeUndefined:
		return true
	}
	return false
}

// Account is the root ledger entity. Transactions reference it by the
// (account_id, account_name_owner, account_type) triple.
type Account struct {
	AccountID        int64           `json:"accountId"`
	AccountNameOwner string          `json:"accountNameOwner"`
	AccountType      AccountType     `json:"accountType"`
	ActiveStatus     bool            `json:"activeStatus"`
	Moniker          string          `json:"moniker"`
	Outstanding      decimal.Decimal `json:"outstanding"`
	Future           decimal.Decimal `json:"future"`
	Cleared          decimal.Decimal `json:"cleared"`
	DateClosed       time.Time       `json:"dateClosed"`
	ValidationDate   time.Time       `json:"validationDate"`
	DateAdded        time.Time       `json:"dateAdded"`
	DateUpdated      time.Time       `json:"dateUpdated"`
}

// Validate applies the same constraints the schema enforces, so a bad
// account is rejected before it reaches the database.
func (a *Account) Validate() error {
	if err := requireLowercase("accountNameOwner", a.AccountNameOwner); err != nil {
		return err
	}
	if err := requireLength("accountNameOwner", a.AccountNameOwner, AccountNameMinLen, AccountNameMaxLen); err != nil {
		return err
	}
	if err := requirePattern("accountNameOwner", a.AccountNameOwner, AccountNamePattern); err != nil {
		return err
	}
	if !a.AccountType.Valid() {
		return validationErr("accountType", "must be one of credit, debit, undefined")
	}
	if err := requireLength("moniker", a.Moniker, MonikerLen, MonikerLen); err != nil {
		return err
	}
	for _, m := range []struct {
		field  string
		amount decimal.Decimal
	}{
		{"outstanding", a.Outstanding},
		{"future", a.Future},
		{"cleared", a.Cleared},
	} {
		if err := requireMoney(m.field, m.amount, 12); err != nil {
			return err
		}
	}
	return nil
}
