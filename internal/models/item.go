package models

import "time"

type Item struct {
	ID                 int        `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	StartPrice         int64      `json:"start_price"`
	CurrentPrice       int64      `json:"current_price"`
	ImageURL           string     `json:"image_url,omitempty"`
	Status             string     `json:"status"`
	RecruitmentEndTime time.Time  `json:"recruitment_end_time"`
	AuctionStartTime   time.Time  `json:"auction_start_time"`
	EndTime            time.Time  `json:"end_time"`
	SellerID           int        `json:"seller_id"`
	WinnerID           *int       `json:"winner_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

type ItemRequest struct {
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	StartPrice         int64      `json:"start_price"`
	ImageURL           string     `json:"image_url"`
	RecruitmentEndTime *time.Time `json:"recruitment_end_time,omitempty"`
	EndTime            time.Time  `json:"end_time"`
}

type PriceSuggestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PriceSuggestion struct {
	RecommendedPrice int64  `json:"recommended_price"`
	AveragePrice     int64  `json:"average_price"`
	MinPrice         int64  `json:"min_price"`
	MaxPrice         int64  `json:"max_price"`
	Count            int    `json:"count"`
	Message          string `json:"message"`
}
