package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"ledgerkeep/internal/domain"
	"ledgerkeep/internal/service"
)

// Store is the persistence surface the read-mostly handlers use directly;
// *store.Store satisfies it.
type Store interface {
	InsertAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FetchAccountByNameOwner(ctx context.Context, nameOwner string) (*domain.Account, error)
	ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
	AccountTotals(ctx context.Context) (map[domain.TransactionState]decimal.Decimal, error)

	FetchTransactionByGUID(ctx context.Context, guid string) (*domain.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, nameOwner string) ([]domain.Transaction, error)
	ListTransactionsByCategory(ctx context.Context, category string) ([]domain.Transaction, error)
	ListTransactionsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)

	ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error)
	DeleteCategoryByName(ctx context.Context, name string) error

	FetchPaymentByID(ctx context.Context, id int64) (*domain.Payment, error)
	ListPayments(ctx context.Context, activeOnly bool) ([]domain.Payment, error)
	DeletePaymentByID(ctx context.Context, id int64) error
	FetchTransferByID(ctx context.Context, id int64) (*domain.Transfer, error)
	ListTransfers(ctx context.Context) ([]domain.Transfer, error)
	DeleteTransferByID(ctx context.Context, id int64) error

	InsertParameter(ctx context.Context, parameter *domain.Parameter) (*domain.Parameter, error)
	FetchParameterByName(ctx context.Context, name string) (*domain.Parameter, error)
	ListParameters(ctx context.Context) ([]domain.Parameter, error)
	UpdateParameter(ctx context.Context, parameter *domain.Parameter) (*domain.Parameter, error)
	DeleteParameterByName(ctx context.Context, name string) error

	InsertFamilyMember(ctx context.Context, member *domain.FamilyMember) (*domain.FamilyMember, error)
	FetchFamilyMemberByID(ctx context.Context, id int64) (*domain.FamilyMember, error)
	ListFamilyMembersByOwner(ctx context.Context, owner string) ([]domain.FamilyMember, error)
	SoftDeleteFamilyMember(ctx context.Context, id int64) error

	InsertMedicalExpense(ctx context.Context, expense *domain.MedicalExpense) (*domain.MedicalExpense, error)
	FetchMedicalExpenseByTransactionID(ctx context.Context, transactionID int64) (*domain.MedicalExpense, error)
	ListMedicalExpensesByFamilyMember(ctx context.Context, familyMemberID int64) ([]domain.MedicalExpense, error)
	UpdateMedicalExpenseClaim(ctx context.Context, id int64, status domain.ClaimStatus, claimNumber string) (*domain.MedicalExpense, error)
	DeleteMedicalExpenseByID(ctx context.Context, id int64) error

	DeleteUserByUsername(ctx context.Context, username string) error
}

// Ledger is the write path for accounts, categories, and transactions;
// *service.LedgerService satisfies it.
type Ledger interface {
	EnsureAccount(ctx context.Context, nameOwner string, accountType domain.AccountType) (*domain.Account, error)
	EnsureCategory(ctx context.Context, name string) (*domain.Category, error)
	InsertTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	UpdateTransactionState(ctx context.Context, guid string, state domain.TransactionState) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, guid string) error
	DeleteAccount(ctx context.Context, nameOwner string) error
}

// Payments executes atomic money movements; *service.PaymentService
// satisfies it.
type Payments interface {
	ProcessPayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ProcessTransfer(ctx context.Context, transfer *domain.Transfer) (*domain.Transfer, error)
}

// Auth registers users and mints tokens; *service.AuthService satisfies it.
type Auth interface {
	Register(ctx context.Context, user *domain.User) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	ParseToken(tokenString string) (jwt.MapClaims, error)
}

type Handler struct {
	store    Store
	ledger   Ledger
	payments Payments
	auth     Auth
	log      zerolog.Logger
}

func NewHandler(store Store, ledger Ledger, payments Payments, auth Auth, log zerolog.Logger) *Handler {
	return &Handler{store: store, ledger: ledger, payments: payments, auth: auth, log: log}
}

func (h *Handler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// respondWithDomainError maps the typed errors produced by the store and
// service layers onto HTTP status codes: validation failures are the client's
// fault, missing rows are 404, uniqueness collisions are 409, and referential
// or check-constraint rejections are 422.
func respondWithDomainError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		respondWithError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, service.ErrSourceAccountNotFound),
		errors.Is(err, service.ErrDestinationAccountNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrForeignKey), errors.Is(err, domain.ErrCheckViolation):
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

const tokenCookieName = "token"

func setTokenCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
