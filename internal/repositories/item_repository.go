package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"auctionBack/internal/auction"
	"auctionBack/internal/models"
)

type ItemRepository struct {
	DB *sql.DB
}

const itemColumns = `id, title, description, start_price, current_price, image_url, status,
        recruitment_end_time, auction_start_time, end_time, seller_id, winner_id, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (models.Item, error) {
	var item models.Item
	var imageURL sql.NullString
	err := row.Scan(
		&item.ID, &item.Title, &item.Description, &item.StartPrice, &item.CurrentPrice,
		&imageURL, &item.Status, &item.RecruitmentEndTime, &item.AuctionStartTime,
		&item.EndTime, &item.SellerID, &item.WinnerID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return models.Item{}, err
	}
	item.ImageURL = imageURL.String
	return item, nil
}

func (r *ItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `
        INSERT INTO items (title, description, start_price, current_price, image_url, status,
            recruitment_end_time, auction_start_time, end_time, seller_id, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	item.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		item.Title, item.Description, item.StartPrice, item.CurrentPrice, item.ImageURL,
		item.Status, item.RecruitmentEndTime, item.AuctionStartTime, item.EndTime,
		item.SellerID, item.CreatedAt,
	)
	if err != nil {
		return models.Item{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Item{}, err
	}
	item.ID = int(id)
	return item, nil
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ? AND status != ?`
	item, err := scanItem(r.DB.QueryRowContext(ctx, query, id, auction.StatusDeleted))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, models.ErrItemNotFound
	}
	return item, err
}

// GetItemForUpdateTx loads an item with its row locked; concurrent bids on the
// same item serialize here.
func (r *ItemRepository) GetItemForUpdateTx(ctx context.Context, tx *sql.Tx, id int) (models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ? AND status != ? FOR UPDATE`
	item, err := scanItem(tx.QueryRowContext(ctx, query, id, auction.StatusDeleted))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, models.ErrItemNotFound
	}
	return item, err
}

func (r *ItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]models.Item, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetAllItems returns every non-deleted item, newest first.
func (r *ItemRepository) GetAllItems(ctx context.Context) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE status != ? ORDER BY created_at DESC`
	return r.queryItems(ctx, query, auction.StatusDeleted)
}

func (r *ItemRepository) GetItemsByStatus(ctx context.Context, status string) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE status = ? ORDER BY created_at DESC`
	return r.queryItems(ctx, query, status)
}

// GetActiveItems returns items still open to joining or bidding, newest first.
func (r *ItemRepository) GetActiveItems(ctx context.Context) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE status IN (?, ?) ORDER BY created_at DESC`
	return r.queryItems(ctx, query, auction.StatusRecruiting, auction.StatusAuctionStarted)
}

func (r *ItemRepository) GetItemsBySellerID(ctx context.Context, sellerID int) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE seller_id = ? AND status != ? ORDER BY created_at DESC`
	return r.queryItems(ctx, query, sellerID, auction.StatusDeleted)
}

func (r *ItemRepository) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `
        UPDATE items
        SET title = ?, description = ?, start_price = ?, current_price = ?, image_url = ?,
            recruitment_end_time = ?, auction_start_time = ?, end_time = ?, updated_at = ?
        WHERE id = ? AND status != ?
    `
	updatedAt := time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		item.Title, item.Description, item.StartPrice, item.CurrentPrice, item.ImageURL,
		item.RecruitmentEndTime, item.AuctionStartTime, item.EndTime, updatedAt,
		item.ID, auction.StatusDeleted,
	)
	if err != nil {
		return models.Item{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Item{}, err
	}
	if rowsAffected == 0 {
		return models.Item{}, models.ErrItemNotFound
	}
	return r.GetItemByID(ctx, item.ID)
}

func (r *ItemRepository) SetImageURL(ctx context.Context, id int, imageURL string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE items SET image_url = ?, updated_at = ? WHERE id = ?`,
		imageURL, time.Now(), id,
	)
	return err
}

// RaiseCurrentPriceTx is the compare-and-set half of bid acceptance: the price
// only moves when the new amount still exceeds the stored one.
func (r *ItemRepository) RaiseCurrentPriceTx(ctx context.Context, tx *sql.Tx, id int, amount int64) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE items SET current_price = ? WHERE id = ? AND current_price < ?`,
		amount, id, amount,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrBidTooLow
	}
	return nil
}

func (r *ItemRepository) SetWinnerTx(ctx context.Context, tx *sql.Tx, id, winnerID int) error {
	_, err := tx.ExecContext(ctx, `UPDATE items SET winner_id = ? WHERE id = ?`, winnerID, id)
	return err
}

// SoftDelete marks the item DELETED; bids and participants stay referable.
func (r *ItemRepository) SoftDelete(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE items SET status = ?, updated_at = ? WHERE id = ? AND status != ?`,
		auction.StatusDeleted, time.Now(), id, auction.StatusDeleted,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) MarkSold(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE items SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
		auction.StatusSold, time.Now(), id, auction.StatusAuctionEnded,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrItemNotFound
	}
	return nil
}

// SettledPricesByKeyword feeds the price suggester: final prices of ended
// auctions whose titles match the keyword.
func (r *ItemRepository) SettledPricesByKeyword(ctx context.Context, keyword string, limit int) ([]int64, error) {
	query := `
        SELECT current_price FROM items
        WHERE status IN (?, ?) AND winner_id IS NOT NULL AND title LIKE ?
        ORDER BY created_at DESC
        LIMIT ?
    `
	rows, err := r.DB.QueryContext(ctx, query,
		auction.StatusAuctionEnded, auction.StatusSold, "%"+keyword+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []int64
	for rows.Next() {
		var p int64
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}
