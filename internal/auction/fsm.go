package auction

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"auctionBack/internal/models"
)

// Status constants used by the auction item state machine.
const (
	StatusRecruiting     = "RECRUITING"
	StatusAuctionStarted = "AUCTION_STARTED"
	StatusAuctionEnded   = "AUCTION_ENDED"
	StatusSold           = "SOLD"
	StatusDeleted        = "DELETED"
)

var transitions = map[string]map[string]struct{}{
	StatusRecruiting: {
		StatusAuctionStarted: {},
		StatusDeleted:        {},
	},
	StatusAuctionStarted: {
		StatusAuctionEnded: {},
		StatusDeleted:      {},
	},
	StatusAuctionEnded: {
		StatusSold:    {},
		StatusDeleted: {},
	},
	StatusSold: {
		StatusDeleted: {},
	},
	StatusDeleted: {},
}

var ErrInvalidTransition = errors.New("auction: invalid status transition")

// CanTransition returns whether an item can move from the current status to the target status.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// NextStatus returns the time-driven transition due for an item, or "" when
// nothing is due. Only the sweeper transitions are time-driven; SOLD and
// DELETED are reached through explicit owner actions.
func NextStatus(item models.Item, now time.Time) string {
	switch item.Status {
	case StatusRecruiting:
		if now.After(item.RecruitmentEndTime) {
			return StatusAuctionStarted
		}
	case StatusAuctionStarted:
		if now.After(item.EndTime) {
			return StatusAuctionEnded
		}
	}
	return ""
}

// Apply flips an item status using optimistic validation. The WHERE clause on
// the previous status makes re-application a no-op, which is what keeps the
// sweeper idempotent across overlapping runs.
func Apply(ctx context.Context, tx *sql.Tx, itemID int, fromStatus, toStatus string) error {
	if !CanTransition(fromStatus, toStatus) {
		return ErrInvalidTransition
	}
	res, err := tx.ExecContext(ctx, `UPDATE items SET status = ? WHERE id = ? AND status = ?`, toStatus, itemID, fromStatus)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
