package auction

import (
	"errors"
	"testing"
	"time"

	"auctionBack/internal/models"
)

func TestValidateJoin(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	item := models.Item{
		ID:                 1,
		SellerID:           10,
		Status:             StatusRecruiting,
		RecruitmentEndTime: now.Add(10 * time.Minute),
	}
	user := models.User{ID: 20}

	if err := ValidateJoin(item, user, false, now); err != nil {
		t.Fatalf("join during recruitment should pass: %v", err)
	}

	started := item
	started.Status = StatusAuctionStarted
	if err := ValidateJoin(started, user, false, now); !errors.Is(err, models.ErrNotRecruiting) {
		t.Fatalf("expected ErrNotRecruiting, got %v", err)
	}

	if err := ValidateJoin(item, user, false, now.Add(11*time.Minute)); !errors.Is(err, models.ErrRecruitmentClosed) {
		t.Fatalf("expected ErrRecruitmentClosed, got %v", err)
	}

	if err := ValidateJoin(item, user, true, now); !errors.Is(err, models.ErrAlreadyJoined) {
		t.Fatalf("expected ErrAlreadyJoined, got %v", err)
	}

	seller := models.User{ID: 10}
	if err := ValidateJoin(item, seller, false, now); !errors.Is(err, models.ErrSellerJoin) {
		t.Fatalf("expected ErrSellerJoin, got %v", err)
	}
}

func TestValidateBid(t *testing.T) {
	now := time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)
	item := models.Item{
		ID:           1,
		SellerID:     10,
		Status:       StatusAuctionStarted,
		CurrentPrice: 1000,
		EndTime:      now.Add(time.Hour),
	}
	user := models.User{ID: 20, Balance: 5000}

	if err := ValidateBid(item, user, true, 1500, now); err != nil {
		t.Fatalf("valid bid should pass: %v", err)
	}

	recruiting := item
	recruiting.Status = StatusRecruiting
	if err := ValidateBid(recruiting, user, true, 1500, now); !errors.Is(err, models.ErrAuctionNotActive) {
		t.Fatalf("expected ErrAuctionNotActive, got %v", err)
	}

	if err := ValidateBid(item, user, true, 1500, now.Add(2*time.Hour)); !errors.Is(err, models.ErrAuctionEnded) {
		t.Fatalf("expected ErrAuctionEnded, got %v", err)
	}

	if err := ValidateBid(item, user, false, 1500, now); !errors.Is(err, models.ErrNotParticipant) {
		t.Fatalf("expected ErrNotParticipant, got %v", err)
	}

	if err := ValidateBid(item, user, true, 1000, now); !errors.Is(err, models.ErrBidTooLow) {
		t.Fatalf("bid equal to current price must be rejected, got %v", err)
	}

	poor := models.User{ID: 21, Balance: 1000}
	if err := ValidateBid(item, poor, true, 1500, now); !errors.Is(err, models.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
}

func TestValidateWindow(t *testing.T) {
	recruitmentEnd := time.Date(2025, 3, 1, 12, 10, 0, 0, time.UTC)

	if err := ValidateWindow(recruitmentEnd, recruitmentEnd.Add(time.Hour)); err != nil {
		t.Fatalf("end after recruitment should pass: %v", err)
	}
	// the auction phase may be empty, but never negative
	if err := ValidateWindow(recruitmentEnd, recruitmentEnd); err != nil {
		t.Fatalf("end equal to recruitment end should pass: %v", err)
	}
	if err := ValidateWindow(recruitmentEnd, recruitmentEnd.Add(-time.Minute)); !errors.Is(err, models.ErrInvalidTimeWindow) {
		t.Fatalf("expected ErrInvalidTimeWindow, got %v", err)
	}
}

func TestValidateUpdate(t *testing.T) {
	item := models.Item{ID: 1, SellerID: 10, Status: StatusRecruiting}

	if err := ValidateUpdate(item, 10); err != nil {
		t.Fatalf("owner edit during recruitment should pass: %v", err)
	}
	if err := ValidateUpdate(item, 20); !errors.Is(err, models.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	item.Status = StatusAuctionStarted
	if err := ValidateUpdate(item, 10); !errors.Is(err, models.ErrItemNotEditable) {
		t.Fatalf("expected ErrItemNotEditable, got %v", err)
	}
}
