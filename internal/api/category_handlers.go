package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"ledgerkeep/internal/domain"
)

func (h *Handler) SelectActiveCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListCategories(r.Context(), true)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, categories)
}

func (h *Handler) InsertCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	created, err := h.ledger.EnsureCategory(r.Context(), category.CategoryName)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["categoryName"]

	if err := h.store.DeleteCategoryByName(r.Context(), name); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}
