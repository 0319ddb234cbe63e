package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"ledgerkeep/internal/domain"
)

func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	registered, err := h.auth.Register(r.Context(), &user)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, registered)
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	token, err := h.auth.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	setTokenCookie(w, token, time.Now().Add(24*time.Hour))
	respondWithJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	setTokenCookie(w, "", time.Unix(0, 0))
	respondWithJSON(w, http.StatusNoContent, nil)
}

// DeleteUserHandler removes an account holder; only the authenticated user
// can delete themselves.
func (h *Handler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	if UsernameFromContext(r.Context()) != username {
		respondWithError(w, http.StatusForbidden, "users can only delete their own account")
		return
	}

	if err := h.store.DeleteUserByUsername(r.Context(), username); err != nil {
		respondWithDomainError(w, err)
		return
	}
	setTokenCookie(w, "", time.Unix(0, 0))
	respondWithJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	username := UsernameFromContext(r.Context())
	if username == "" {
		respondWithError(w, http.StatusUnauthorized, "missing authentication token")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"username": username})
}
