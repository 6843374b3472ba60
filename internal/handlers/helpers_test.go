package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"auctionBack/internal/models"
)

func TestWriteErrorStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown item", models.ErrItemNotFound, http.StatusNotFound},
		{"unknown user", models.ErrUserNotFound, http.StatusNotFound},
		{"recruitment closed", models.ErrRecruitmentClosed, http.StatusConflict},
		{"already joined", models.ErrAlreadyJoined, http.StatusConflict},
		{"seller joins own auction", models.ErrSellerJoin, http.StatusConflict},
		{"auction not active", models.ErrAuctionNotActive, http.StatusConflict},
		{"not a participant", models.ErrNotParticipant, http.StatusConflict},
		{"bid too low", models.ErrBidTooLow, http.StatusBadRequest},
		{"end before recruitment end", models.ErrInvalidTimeWindow, http.StatusBadRequest},
		{"duplicate username", models.ErrDuplicateUsername, http.StatusBadRequest},
		{"wrapped sentinel", errors.Join(errors.New("context"), models.ErrItemNotFound), http.StatusNotFound},
		{"unexpected error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tc.err)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
		})
	}
}
