package auction

import (
	"errors"
	"testing"
	"time"

	"auctionBack/internal/models"
)

func TestSettlePicksMostRecentBid(t *testing.T) {
	now := time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC)
	item := models.Item{ID: 1, CurrentPrice: 1500}
	bids := []models.Bid{
		{ItemID: 1, BidderID: 30, BidAmount: 1500, BidTime: now},
		{ItemID: 1, BidderID: 20, BidAmount: 1200, BidTime: now.Add(-time.Minute)},
		{ItemID: 1, BidderID: 30, BidAmount: 1100, BidTime: now.Add(-2 * time.Minute)},
	}

	s := Settle(item, bids, 5000)
	if !s.HasWinner {
		t.Fatal("expected a winner")
	}
	if s.WinnerID != 30 {
		t.Fatalf("expected bidder 30 to win, got %d", s.WinnerID)
	}
	if s.Price != 1500 {
		t.Fatalf("expected settlement price 1500, got %d", s.Price)
	}
	if !s.Debit {
		t.Fatal("expected debit with sufficient balance")
	}
}

func TestSettleNoBids(t *testing.T) {
	s := Settle(models.Item{ID: 1, CurrentPrice: 1000}, nil, 0)
	if s.HasWinner {
		t.Fatal("no bids must settle without a winner")
	}
	if s.Debit {
		t.Fatal("no bids must not debit anyone")
	}
}

func TestSettleInsufficientBalanceSkipsDebit(t *testing.T) {
	item := models.Item{ID: 1, CurrentPrice: 2000}
	bids := []models.Bid{{ItemID: 1, BidderID: 20, BidAmount: 2000}}

	s := Settle(item, bids, 500)
	if !s.HasWinner || s.WinnerID != 20 {
		t.Fatalf("winner must still be recorded, got %+v", s)
	}
	if s.Debit {
		t.Fatal("debit must be skipped when the balance no longer covers the price")
	}
}

// Full walkthrough: registration at T, sweeper start at T+11m, a 1500 bid
// accepted, a 1200 bid rejected, settlement at end time.
func TestAuctionWalkthrough(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	item := models.Item{
		ID:                 7,
		SellerID:           1,
		Status:             StatusRecruiting,
		StartPrice:         1000,
		CurrentPrice:       1000,
		RecruitmentEndTime: createdAt.Add(10 * time.Minute),
		EndTime:            createdAt.Add(time.Hour),
	}
	bidder := models.User{ID: 2, Balance: 5000}

	// T+11m: sweeper starts the auction.
	next := NextStatus(item, createdAt.Add(11*time.Minute))
	if next != StatusAuctionStarted {
		t.Fatalf("expected auction start due, got %q", next)
	}
	if !CanTransition(item.Status, next) {
		t.Fatal("transition table must allow the due transition")
	}
	item.Status = next

	// Accepted bid raises the current price.
	bidTime := createdAt.Add(20 * time.Minute)
	if err := ValidateBid(item, bidder, true, 1500, bidTime); err != nil {
		t.Fatalf("1500 bid should be accepted: %v", err)
	}
	var bids []models.Bid
	bids = append([]models.Bid{{ItemID: item.ID, BidderID: bidder.ID, BidAmount: 1500, BidTime: bidTime}}, bids...)
	item.CurrentPrice = 1500
	if item.CurrentPrice < item.StartPrice {
		t.Fatal("current price must never fall below start price")
	}

	// A lower follow-up bid is rejected and leaves the price untouched.
	if err := ValidateBid(item, models.User{ID: 3, Balance: 9000}, true, 1200, bidTime.Add(time.Minute)); !errors.Is(err, models.ErrBidTooLow) {
		t.Fatalf("expected ErrBidTooLow, got %v", err)
	}
	if item.CurrentPrice != 1500 {
		t.Fatalf("rejected bid must not move the price, got %d", item.CurrentPrice)
	}

	// End time passes, sweeper settles.
	next = NextStatus(item, createdAt.Add(61*time.Minute))
	if next != StatusAuctionEnded {
		t.Fatalf("expected auction end due, got %q", next)
	}
	item.Status = next
	s := Settle(item, bids, bidder.Balance)
	if !s.HasWinner || s.WinnerID != bidder.ID {
		t.Fatalf("expected bidder %d to win, got %+v", bidder.ID, s)
	}
	if !s.Debit || s.Price != 1500 {
		t.Fatalf("expected a 1500 debit, got %+v", s)
	}
	bidder.Balance -= s.Price
	if bidder.Balance != 3500 {
		t.Fatalf("expected balance 3500 after debit, got %d", bidder.Balance)
	}

	// A second sweep with the same clock finds nothing to do.
	if next = NextStatus(item, createdAt.Add(61*time.Minute)); next != "" {
		t.Fatalf("second sweep must be a no-op, got %q", next)
	}
}
