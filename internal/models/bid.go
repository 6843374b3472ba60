package models

import "time"

type Bid struct {
	ID        int       `json:"id"`
	ItemID    int       `json:"item_id"`
	BidderID  int       `json:"bidder_id"`
	BidAmount int64     `json:"bid_amount"`
	BidTime   time.Time `json:"bid_time"`
}

type PlaceBidRequest struct {
	BidAmount int64 `json:"bid_amount"`
}

// BidMessage is broadcast to every subscriber of an item's auction channel
// after a bid attempt, successful or not.
type BidMessage struct {
	ItemID         int    `json:"item_id"`
	BidAmount      int64  `json:"bid_amount,omitempty"`
	BidderUsername string `json:"bidder_username,omitempty"`
	BidderName     string `json:"bidder_name,omitempty"`
	BidTime        string `json:"bid_time,omitempty"`
	Success        bool   `json:"success"`
	ErrorMessage   string `json:"error_message,omitempty"`
}
