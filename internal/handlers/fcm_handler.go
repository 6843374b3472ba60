package handlers

import (
	"encoding/json"
	"net/http"

	"auctionBack/internal/services"
)

type FCMHandler struct {
	Service *services.NotifyService
}

type tokenRequest struct {
	Token string `json:"token"`
}

func (h *FCMHandler) CreateToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.RegisterToken(r.Context(), userID, req.Token); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *FCMHandler) DeleteToken(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get(":token")
	if token == "" {
		http.Error(w, "Missing token", http.StatusBadRequest)
		return
	}

	if err := h.Service.RemoveToken(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
