package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"ledgerkeep/internal/domain"
)

func (h *Handler) SelectParametersHandler(w http.ResponseWriter, r *http.Request) {
	parameters, err := h.store.ListParameters(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, parameters)
}

func (h *Handler) SelectParameterHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["parameterName"]

	parameter, err := h.store.FetchParameterByName(r.Context(), name)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, parameter)
}

func (h *Handler) InsertParameterHandler(w http.ResponseWriter, r *http.Request) {
	var parameter domain.Parameter
	if err := json.NewDecoder(r.Body).Decode(&parameter); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	if err := parameter.Validate(); err != nil {
		respondWithDomainError(w, err)
		return
	}

	inserted, err := h.store.InsertParameter(r.Context(), &parameter)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, inserted)
}

func (h *Handler) UpdateParameterHandler(w http.ResponseWriter, r *http.Request) {
	var parameter domain.Parameter
	if err := json.NewDecoder(r.Body).Decode(&parameter); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	if err := parameter.Validate(); err != nil {
		respondWithDomainError(w, err)
		return
	}

	updated, err := h.store.UpdateParameter(r.Context(), &parameter)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteParameterHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["parameterName"]

	if err := h.store.DeleteParameterByName(r.Context(), name); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}
