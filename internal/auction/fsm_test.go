package auction

import (
	"testing"
	"time"

	"auctionBack/internal/models"
)

func TestCanTransition(t *testing.T) {
	if !CanTransition(StatusRecruiting, StatusAuctionStarted) {
		t.Fatal("expected RECRUITING -> AUCTION_STARTED to be allowed")
	}
	if !CanTransition(StatusAuctionStarted, StatusAuctionEnded) {
		t.Fatal("expected AUCTION_STARTED -> AUCTION_ENDED to be allowed")
	}
	if !CanTransition(StatusAuctionEnded, StatusSold) {
		t.Fatal("expected AUCTION_ENDED -> SOLD to be allowed")
	}
	if CanTransition(StatusAuctionEnded, StatusRecruiting) {
		t.Fatal("transitions must not be reversible")
	}
	if CanTransition(StatusRecruiting, StatusAuctionEnded) {
		t.Fatal("RECRUITING must not skip straight to AUCTION_ENDED")
	}
	if CanTransition(StatusDeleted, StatusRecruiting) {
		t.Fatal("DELETED is terminal")
	}
	for _, from := range []string{StatusRecruiting, StatusAuctionStarted, StatusAuctionEnded, StatusSold} {
		if !CanTransition(from, StatusDeleted) {
			t.Fatalf("expected %s -> DELETED to be allowed", from)
		}
	}
}

func TestNextStatus(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	item := models.Item{
		Status:             StatusRecruiting,
		RecruitmentEndTime: created.Add(10 * time.Minute),
		EndTime:            created.Add(time.Hour),
	}

	if got := NextStatus(item, created.Add(5*time.Minute)); got != "" {
		t.Fatalf("nothing due during recruitment, got %q", got)
	}
	if got := NextStatus(item, created.Add(11*time.Minute)); got != StatusAuctionStarted {
		t.Fatalf("expected AUCTION_STARTED due, got %q", got)
	}

	item.Status = StatusAuctionStarted
	if got := NextStatus(item, created.Add(30*time.Minute)); got != "" {
		t.Fatalf("nothing due mid-auction, got %q", got)
	}
	if got := NextStatus(item, created.Add(61*time.Minute)); got != StatusAuctionEnded {
		t.Fatalf("expected AUCTION_ENDED due, got %q", got)
	}

	// Once advanced, the same clock reading must not produce another transition.
	item.Status = StatusAuctionEnded
	if got := NextStatus(item, created.Add(61*time.Minute)); got != "" {
		t.Fatalf("sweeper must be idempotent, got %q", got)
	}
}
