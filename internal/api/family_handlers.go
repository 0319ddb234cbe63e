package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ledgerkeep/internal/domain"
)

func (h *Handler) InsertFamilyMemberHandler(w http.ResponseWriter, r *http.Request) {
	var member domain.FamilyMember
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	if err := member.Validate(); err != nil {
		respondWithDomainError(w, err)
		return
	}

	inserted, err := h.store.InsertFamilyMember(r.Context(), &member)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, inserted)
}

func (h *Handler) SelectFamilyMemberHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["familyMemberId"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "family member id must be an integer")
		return
	}

	member, err := h.store.FetchFamilyMemberByID(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, member)
}

func (h *Handler) SelectFamilyMembersByOwnerHandler(w http.ResponseWriter, r *http.Request) {
	owner := mux.Vars(r)["owner"]

	members, err := h.store.ListFamilyMembersByOwner(r.Context(), owner)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, members)
}

func (h *Handler) DeleteFamilyMemberHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["familyMemberId"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "family member id must be an integer")
		return
	}

	if err := h.store.SoftDeleteFamilyMember(r.Context(), id); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) InsertMedicalExpenseHandler(w http.ResponseWriter, r *http.Request) {
	var expense domain.MedicalExpense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	if err := expense.Validate(); err != nil {
		respondWithDomainError(w, err)
		return
	}

	inserted, err := h.store.InsertMedicalExpense(r.Context(), &expense)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, inserted)
}

func (h *Handler) SelectMedicalExpenseByTransactionHandler(w http.ResponseWriter, r *http.Request) {
	transactionID, err := strconv.ParseInt(mux.Vars(r)["transactionId"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "transaction id must be an integer")
		return
	}

	expense, err := h.store.FetchMedicalExpenseByTransactionID(r.Context(), transactionID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, expense)
}

func (h *Handler) SelectMedicalExpensesByFamilyMemberHandler(w http.ResponseWriter, r *http.Request) {
	familyMemberID, err := strconv.ParseInt(mux.Vars(r)["familyMemberId"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "family member id must be an integer")
		return
	}

	expenses, err := h.store.ListMedicalExpensesByFamilyMember(r.Context(), familyMemberID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, expenses)
}

func (h *Handler) UpdateMedicalExpenseClaimHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["medicalExpenseId"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "medical expense id must be an integer")
		return
	}

	var claim struct {
		ClaimStatus domain.ClaimStatus `json:"claimStatus"`
		ClaimNumber string             `json:"claimNumber"`
	}
	if err := json.NewDecoder(r.Body).Decode(&claim); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	updated, err := h.store.UpdateMedicalExpenseClaim(r.Context(), id, claim.ClaimStatus, claim.ClaimNumber)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteMedicalExpenseHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["medicalExpenseId"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "medical expense id must be an integer")
		return
	}

	if err := h.store.DeleteMedicalExpenseByID(r.Context(), id); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}
