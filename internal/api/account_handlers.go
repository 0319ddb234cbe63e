package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"ledgerkeep/internal/domain"
)

func (h *Handler) SelectActiveAccountsHandler(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.store.ListAccounts(r.Context(), true)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, accounts)
}

func (h *Handler) SelectAccountHandler(w http.ResponseWriter, r *http.Request) {
	nameOwner := mux.Vars(r)["accountNameOwner"]

	account, err := h.store.FetchAccountByNameOwner(r.Context(), nameOwner)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, account)
}

func (h *Handler) InsertAccountHandler(w http.ResponseWriter, r *http.Request) {
	var account domain.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	if err := account.Validate(); err != nil {
		respondWithDomainError(w, err)
		return
	}

	inserted, err := h.store.InsertAccount(r.Context(), &account)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, inserted)
}

func (h *Handler) UpdateAccountHandler(w http.ResponseWriter, r *http.Request) {
	nameOwner := mux.Vars(r)["accountNameOwner"]

	var account domain.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	account.AccountNameOwner = nameOwner
	if err := account.Validate(); err != nil {
		respondWithDomainError(w, err)
		return
	}

	updated, err := h.store.UpdateAccount(r.Context(), &account)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	nameOwner := mux.Vars(r)["accountNameOwner"]

	if err := h.ledger.DeleteAccount(r.Context(), nameOwner); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) AccountTotalsHandler(w http.ResponseWriter, r *http.Request) {
	totals, err := h.store.AccountTotals(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, totals)
}
