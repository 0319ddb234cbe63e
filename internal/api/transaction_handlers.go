package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"ledgerkeep/internal/domain"
)

func (h *Handler) SelectTransactionHandler(w http.ResponseWriter, r *http.Request) {
	guid := mux.Vars(r)["guid"]

	tx, err := h.store.FetchTransactionByGUID(r.Context(), guid)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tx)
}

func (h *Handler) SelectTransactionsByAccountHandler(w http.ResponseWriter, r *http.Request) {
	nameOwner := mux.Vars(r)["accountNameOwner"]

	transactions, err := h.store.ListTransactionsByAccount(r.Context(), nameOwner)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, transactions)
}

func (h *Handler) SelectTransactionsByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["categoryName"]

	transactions, err := h.store.ListTransactionsByCategory(r.Context(), category)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, transactions)
}

// SelectTransactionsByDateRangeHandler expects start and end query params in
// YYYY-MM-DD form; the range is inclusive on both ends.
func (h *Handler) SelectTransactionsByDateRangeHandler(w http.ResponseWriter, r *http.Request) {
	const layout = "2006-01-02"
	start, err := time.Parse(layout, r.URL.Query().Get("start"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "start must be a YYYY-MM-DD date")
		return
	}
	end, err := time.Parse(layout, r.URL.Query().Get("end"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "end must be a YYYY-MM-DD date")
		return
	}
	if end.Before(start) {
		respondWithError(w, http.StatusBadRequest, "end must not precede start")
		return
	}

	transactions, err := h.store.ListTransactionsByDateRange(r.Context(), start, end)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, transactions)
}

func (h *Handler) InsertTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var tx domain.Transaction
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	inserted, err := h.ledger.InsertTransaction(r.Context(), &tx)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, inserted)
}

func (h *Handler) UpdateTransactionStateHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	guid := vars["guid"]
	state := domain.TransactionState(vars["state"])

	updated, err := h.ledger.UpdateTransactionState(r.Context(), guid, state)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteTransactionHandler(w http.ResponseWriter, r *http.Request) {
	guid := mux.Vars(r)["guid"]

	if err := h.ledger.DeleteTransaction(r.Context(), guid); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}
