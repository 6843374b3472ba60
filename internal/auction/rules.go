package auction

import (
	"time"

	"auctionBack/internal/models"
)

// ValidateJoin checks the join preconditions in order; the first violated rule wins.
func ValidateJoin(item models.Item, user models.User, alreadyJoined bool, now time.Time) error {
	if item.Status != StatusRecruiting {
		return models.ErrNotRecruiting
	}
	if now.After(item.RecruitmentEndTime) {
		return models.ErrRecruitmentClosed
	}
	if alreadyJoined {
		return models.ErrAlreadyJoined
	}
	if item.SellerID == user.ID {
		return models.ErrSellerJoin
	}
	return nil
}

// ValidateBid checks the bid preconditions in order; the first violated rule wins.
// The balance is checked against the bid amount here, the debit itself happens at
// settlement.
func ValidateBid(item models.Item, user models.User, isParticipant bool, amount int64, now time.Time) error {
	if item.Status != StatusAuctionStarted {
		return models.ErrAuctionNotActive
	}
	if now.After(item.EndTime) {
		return models.ErrAuctionEnded
	}
	if !isParticipant {
		return models.ErrNotParticipant
	}
	if amount <= item.CurrentPrice {
		return models.ErrBidTooLow
	}
	if user.Balance < amount {
		return models.ErrInsufficientBalance
	}
	return nil
}

// ValidateWindow rejects listings whose auction would end before the
// recruitment window closes.
func ValidateWindow(recruitmentEnd, endTime time.Time) error {
	if endTime.Before(recruitmentEnd) {
		return models.ErrInvalidTimeWindow
	}
	return nil
}

// ValidateUpdate gates owner edits: only the seller may edit, and only while
// the item is still recruiting.
func ValidateUpdate(item models.Item, userID int) error {
	if item.SellerID != userID {
		return models.ErrNotOwner
	}
	if item.Status != StatusRecruiting {
		return models.ErrItemNotEditable
	}
	return nil
}
