package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router builds the full route table. Everything under /api except login,
// register, and logout requires a valid token.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.instrument, h.logRequests)

	r.HandleFunc("/health", h.HealthCheckHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/api/login", h.LoginHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/register", h.RegisterHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/logout", h.LogoutHandler).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.requireToken)

	api.HandleFunc("/me", h.MeHandler).Methods(http.MethodGet)

	api.HandleFunc("/account/select/active", h.SelectActiveAccountsHandler).Methods(http.MethodGet)
	api.HandleFunc("/account/totals", h.AccountTotalsHandler).Methods(http.MethodGet)
	api.HandleFunc("/account/select/{accountNameOwner}", h.SelectAccountHandler).Methods(http.MethodGet)
	api.HandleFunc("/account/insert", h.InsertAccountHandler).Methods(http.MethodPost)
	api.HandleFunc("/account/update/{accountNameOwner}", h.UpdateAccountHandler).Methods(http.MethodPut)
	api.HandleFunc("/account/delete/{accountNameOwner}", h.DeleteAccountHandler).Methods(http.MethodDelete)

	api.HandleFunc("/transaction/select/{guid}", h.SelectTransactionHandler).Methods(http.MethodGet)
	api.HandleFunc("/transaction/account/select/{accountNameOwner}", h.SelectTransactionsByAccountHandler).Methods(http.MethodGet)
	api.HandleFunc("/transaction/category/{categoryName}", h.SelectTransactionsByCategoryHandler).Methods(http.MethodGet)
	api.HandleFunc("/transaction/date-range", h.SelectTransactionsByDateRangeHandler).Methods(http.MethodGet)
	api.HandleFunc("/transaction/insert", h.InsertTransactionHandler).Methods(http.MethodPost)
	api.HandleFunc("/transaction/state/update/{guid}/{state}", h.UpdateTransactionStateHandler).Methods(http.MethodPut)
	api.HandleFunc("/transaction/delete/{guid}", h.DeleteTransactionHandler).Methods(http.MethodDelete)

	api.HandleFunc("/payment/select", h.SelectPaymentsHandler).Methods(http.MethodGet)
	api.HandleFunc("/payment/select/{paymentId}", h.SelectPaymentHandler).Methods(http.MethodGet)
	api.HandleFunc("/payment/insert", h.InsertPaymentHandler).Methods(http.MethodPost)
	api.HandleFunc("/payment/delete/{paymentId}", h.DeletePaymentHandler).Methods(http.MethodDelete)

	api.HandleFunc("/transfer/select", h.SelectTransfersHandler).Methods(http.MethodGet)
	api.HandleFunc("/transfer/select/{transferId}", h.SelectTransferHandler).Methods(http.MethodGet)
	api.HandleFunc("/transfer/insert", h.InsertTransferHandler).Methods(http.MethodPost)
	api.HandleFunc("/transfer/delete/{transferId}", h.DeleteTransferHandler).Methods(http.MethodDelete)

	api.HandleFunc("/category/select/active", h.SelectActiveCategoriesHandler).Methods(http.MethodGet)
	api.HandleFunc("/category/insert", h.InsertCategoryHandler).Methods(http.MethodPost)
	api.HandleFunc("/category/delete/{categoryName}", h.DeleteCategoryHandler).Methods(http.MethodDelete)

	api.HandleFunc("/parm/select", h.SelectParametersHandler).Methods(http.MethodGet)
	api.HandleFunc("/parm/select/{parameterName}", h.SelectParameterHandler).Methods(http.MethodGet)
	api.HandleFunc("/parm/insert", h.InsertParameterHandler).Methods(http.MethodPost)
	api.HandleFunc("/parm/update", h.UpdateParameterHandler).Methods(http.MethodPut)
	api.HandleFunc("/parm/delete/{parameterName}", h.DeleteParameterHandler).Methods(http.MethodDelete)

	api.HandleFunc("/family-member/insert", h.InsertFamilyMemberHandler).Methods(http.MethodPost)
	api.HandleFunc("/family-member/select/{familyMemberId}", h.SelectFamilyMemberHandler).Methods(http.MethodGet)
	api.HandleFunc("/family-member/owner/{owner}", h.SelectFamilyMembersByOwnerHandler).Methods(http.MethodGet)
	api.HandleFunc("/family-member/delete/{familyMemberId}", h.DeleteFamilyMemberHandler).Methods(http.MethodDelete)

	api.HandleFunc("/medical-expense/insert", h.InsertMedicalExpenseHandler).Methods(http.MethodPost)
	api.HandleFunc("/medical-expense/transaction/{transactionId}", h.SelectMedicalExpenseByTransactionHandler).Methods(http.MethodGet)
	api.HandleFunc("/medical-expense/family-member/{familyMemberId}", h.SelectMedicalExpensesByFamilyMemberHandler).Methods(http.MethodGet)
	api.HandleFunc("/medical-expense/claim/{medicalExpenseId}", h.UpdateMedicalExpenseClaimHandler).Methods(http.MethodPut)
	api.HandleFunc("/medical-expense/delete/{medicalExpenseId}", h.DeleteMedicalExpenseHandler).Methods(http.MethodDelete)

	api.HandleFunc("/user/delete/{username}", h.DeleteUserHandler).Methods(http.MethodDelete)

	return r
}
