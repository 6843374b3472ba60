package auction

import (
	"auctionBack/internal/models"
)

// Settlement is the outcome decided when an auction transitions to AUCTION_ENDED.
type Settlement struct {
	WinnerID  int
	Price     int64
	Debit     bool // false when the winner's balance no longer covers the price
	HasWinner bool
}

// Settle picks the winner from the bid ledger. Bids are expected newest first
// (the repository ordering); the most recent accepted bid is by construction
// also the highest one, since every accepted bid had to exceed the price before it.
func Settle(item models.Item, bids []models.Bid, winnerBalance int64) Settlement {
	if len(bids) == 0 {
		return Settlement{}
	}
	top := bids[0]
	return Settlement{
		WinnerID:  top.BidderID,
		Price:     item.CurrentPrice,
		Debit:     winnerBalance >= item.CurrentPrice,
		HasWinner: true,
	}
}
