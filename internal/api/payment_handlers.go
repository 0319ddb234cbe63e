package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ledgerkeep/internal/domain"
)

func (h *Handler) SelectPaymentsHandler(w http.ResponseWriter, r *http.Request) {
	payments, err := h.store.ListPayments(r.Context(), false)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, payments)
}

func (h *Handler) InsertPaymentHandler(w http.ResponseWriter, r *http.Request) {
	var payment domain.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	processed, err := h.payments.ProcessPayment(r.Context(), &payment)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, processed)
}

func (h *Handler) SelectPaymentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["paymentId"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "payment id must be an integer")
		return
	}

	payment, err := h.store.FetchPaymentByID(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, payment)
}

func (h *Handler) DeletePaymentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["paymentId"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "payment id must be an integer")
		return
	}

	if err := h.store.DeletePaymentByID(r.Context(), id); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) SelectTransfersHandler(w http.ResponseWriter, r *http.Request) {
	transfers, err := h.store.ListTransfers(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, transfers)
}

func (h *Handler) SelectTransferHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["transferId"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "transfer id must be an integer")
		return
	}

	transfer, err := h.store.FetchTransferByID(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, transfer)
}

func (h *Handler) DeleteTransferHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["transferId"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "transfer id must be an integer")
		return
	}

	if err := h.store.DeleteTransferByID(r.Context(), id); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) InsertTransferHandler(w http.ResponseWriter, r *http.Request) {
	var transfer domain.Transfer
	if err := json.NewDecoder(r.Body).Decode(&transfer); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	processed, err := h.payments.ProcessTransfer(r.Context(), &transfer)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, processed)
}
