package repositories

import (
	"context"
	"database/sql"

	"auctionBack/internal/models"
)

type BidRepository struct {
	DB *sql.DB
}

// CreateBidTx appends a bid inside the caller's transaction, so the ledger
// entry and the price update commit or roll back together.
func (r *BidRepository) CreateBidTx(ctx context.Context, tx *sql.Tx, bid models.Bid) (models.Bid, error) {
	query := `
        INSERT INTO bids (item_id, bidder_id, bid_amount, bid_time)
        VALUES (?, ?, ?, ?)
    `
	result, err := tx.ExecContext(ctx, query, bid.ItemID, bid.BidderID, bid.BidAmount, bid.BidTime)
	if err != nil {
		return models.Bid{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Bid{}, err
	}
	bid.ID = int(id)
	return bid, nil
}

func (r *BidRepository) GetBidsByItemID(ctx context.Context, itemID int) ([]models.Bid, error) {
	query := `
        SELECT id, item_id, bidder_id, bid_amount, bid_time
        FROM bids
        WHERE item_id = ?
        ORDER BY bid_time DESC, id DESC
    `
	return r.queryBids(ctx, r.DB.QueryContext, query, itemID)
}

// GetBidsByItemIDTx is the settlement read: it runs inside the transaction
// that flips the item to AUCTION_ENDED, so a late bid cannot slip in between.
func (r *BidRepository) GetBidsByItemIDTx(ctx context.Context, tx *sql.Tx, itemID int) ([]models.Bid, error) {
	query := `
        SELECT id, item_id, bidder_id, bid_amount, bid_time
        FROM bids
        WHERE item_id = ?
        ORDER BY bid_time DESC, id DESC
    `
	return r.queryBids(ctx, tx.QueryContext, query, itemID)
}

func (r *BidRepository) GetBidsByBidderID(ctx context.Context, bidderID int) ([]models.Bid, error) {
	query := `
        SELECT id, item_id, bidder_id, bid_amount, bid_time
        FROM bids
        WHERE bidder_id = ?
        ORDER BY bid_time DESC, id DESC
    `
	return r.queryBids(ctx, r.DB.QueryContext, query, bidderID)
}

type queryFunc func(ctx context.Context, query string, args ...any) (*sql.Rows, error)

func (r *BidRepository) queryBids(ctx context.Context, q queryFunc, query string, args ...any) ([]models.Bid, error) {
	rows, err := q(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bids []models.Bid
	for rows.Next() {
		var bid models.Bid
		if err := rows.Scan(&bid.ID, &bid.ItemID, &bid.BidderID, &bid.BidAmount, &bid.BidTime); err != nil {
			return nil, err
		}
		bids = append(bids, bid)
	}
	return bids, rows.Err()
}
