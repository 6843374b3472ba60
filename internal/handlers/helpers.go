package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"auctionBack/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses: unknown entities are 404,
// state conflicts are 409, bad input is 400, everything else is 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrItemNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrParticipantNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrNotRecruiting),
		errors.Is(err, models.ErrRecruitmentClosed),
		errors.Is(err, models.ErrAlreadyJoined),
		errors.Is(err, models.ErrSellerJoin),
		errors.Is(err, models.ErrAuctionNotActive),
		errors.Is(err, models.ErrAuctionEnded),
		errors.Is(err, models.ErrNotParticipant),
		errors.Is(err, models.ErrItemNotEditable),
		errors.Is(err, models.ErrNotOwner):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, models.ErrBidTooLow),
		errors.Is(err, models.ErrInvalidTimeWindow),
		errors.Is(err, models.ErrInsufficientBalance),
		errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrDuplicateUsername),
		errors.Is(err, models.ErrDuplicateEmail):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// userIDFromContext reads the authenticated user id set by the JWT middleware.
func userIDFromContext(r *http.Request) (int, bool) {
	id, ok := r.Context().Value("user_id").(int)
	return id, ok
}

func roleFromContext(r *http.Request) string {
	role, _ := r.Context().Value("role").(string)
	return role
}
