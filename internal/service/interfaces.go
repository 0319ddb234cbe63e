package service

import (
	"context"

	"ledgerkeep/internal/domain"
)

// Narrow store views so tests can substitute in-memory fakes.

type AccountStore interface {
	FetchAccountByNameOwner(ctx context.Context, nameOwner string) (*domain.Account, error)
	InsertAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
	DeleteAccountByNameOwner(ctx context.Context, nameOwner string) error
	RefreshAccountTotals(ctx context.Context, nameOwner string) error
}

type CategoryStore interface {
	FetchCategoryByName(ctx context.Context, name string) (*domain.Category, error)
	InsertCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	LinkTransactionCategory(ctx context.Context, categoryID, transactionID int64) error
}

type TransactionStore interface {
	InsertTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	FetchTransactionByGUID(ctx context.Context, guid string) (*domain.Transaction, error)
	UpdateTransactionState(ctx context.Context, guid string, state domain.TransactionState) (*domain.Transaction, error)
	DeleteTransactionByGUID(ctx context.Context, guid string) error
}

type UserStore interface {
	FetchUserByUsername(ctx context.Context, username string) (*domain.User, error)
	InsertUser(ctx context.Context, user *domain.User) (*domain.User, error)
}
