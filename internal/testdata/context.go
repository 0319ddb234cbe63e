package testdata

import (
	"context"

	"ledgerkeep/internal/domain"
)

// Ledger is the slice of the service layer the fixture context needs. The
// ensure operations must be idempotent: calling them twice never creates
// duplicate rows.
type Ledger interface {
	EnsureAccount(ctx context.Context, nameOwner string, accountType domain.AccountType) (*domain.Account, error)
	EnsureCategory(ctx context.Context, name string) (*domain.Category, error)
	InsertTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
}

// PaymentContext wires the full dependency chain a payment test needs, in FK
// order: accounts first, then category, then the two transactions a payment
// will reference.
type PaymentContext struct {
	TestOwner          string
	SourceAccount      *domain.Account
	DestinationAccount *domain.Account
	Category           *domain.Category
	SourceTransaction  *domain.Transaction
	DestTransaction    *domain.Transaction
}

// NewPaymentContext creates every dependency row for a payment scenario.
// Re-running with the same owner token reuses the existing accounts and
// category; only the transactions are fresh each time.
func NewPaymentContext(ctx context.Context, ledger Ledger, testOwner string) (*PaymentContext, error) {
	pc := &PaymentContext{TestOwner: testOwner}

	var err error
	pc.SourceAccount, err = ledger.EnsureAccount(ctx, UniqueAccountName(testOwner, "bank"), domain.AccountTypeDebit)
	if err != nil {
		return nil, err
	}
	pc.DestinationAccount, err = ledger.EnsureAccount(ctx, UniqueAccountName(testOwner, "card"), domain.AccountTypeCredit)
	if err != nil {
		return nil, err
	}
	pc.Category, err = ledger.EnsureCategory(ctx, UniqueCategoryName(testOwner, "bill"))
	if err != nil {
		return nil, err
	}

	sourceTx, err := NewTransactionBuilder(testOwner).
		WithAccountNameOwner(pc.SourceAccount.AccountNameOwner).
		WithAccountID(pc.SourceAccount.AccountID).
		WithAccountType(pc.SourceAccount.AccountType).
		WithCategory(pc.Category.CategoryName).
		WithDescription("payment source leg").
		BuildValidated()
	if err != nil {
		return nil, err
	}
	pc.SourceTransaction, err = ledger.InsertTransaction(ctx, &sourceTx)
	if err != nil {
		return nil, err
	}

	destTx, err := NewTransactionBuilder(testOwner).
		WithAccountNameOwner(pc.DestinationAccount.AccountNameOwner).
		WithAccountID(pc.DestinationAccount.AccountID).
		WithAccountType(pc.DestinationAccount.AccountType).
		WithCategory(pc.Category.CategoryName).
		WithDescription("payment destination leg").
		BuildValidated()
	if err != nil {
		return nil, err
	}
	pc.DestTransaction, err = ledger.InsertTransaction(ctx, &destTx)
	if err != nil {
		return nil, err
	}

	return pc, nil
}

// Payment builds a payment referencing the context's accounts and
// transactions, ready to persist.
func (pc *PaymentContext) Payment() domain.Payment {
	payment := NewPaymentBuilder(pc.TestOwner).
		WithSourceAccount(pc.SourceAccount.AccountNameOwner).
		WithDestinationAccount(pc.DestinationAccount.AccountNameOwner).
		Build()
	payment.GUIDSource = pc.SourceTransaction.GUID
	payment.GUIDDestination = pc.DestTransaction.GUID
	return payment
}
