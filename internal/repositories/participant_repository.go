package repositories

import (
	"context"
	"database/sql"
	"time"

	"auctionBack/internal/models"
)

type ParticipantRepository struct {
	DB *sql.DB
}

func (r *ParticipantRepository) CreateParticipant(ctx context.Context, p models.Participant) (models.Participant, error) {
	query := `
        INSERT INTO participants (item_id, user_id, joined_at)
        VALUES (?, ?, ?)
    `
	p.JoinedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query, p.ItemID, p.UserID, p.JoinedAt)
	if err != nil {
		return models.Participant{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Participant{}, err
	}
	p.ID = int(id)
	return p, nil
}

func (r *ParticipantRepository) ExistsByItemAndUser(ctx context.Context, itemID, userID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM participants WHERE item_id = ? AND user_id = ?)`,
		itemID, userID).Scan(&exists)
	return exists, err
}

func (r *ParticipantRepository) DeleteByItemAndUser(ctx context.Context, itemID, userID int) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM participants WHERE item_id = ? AND user_id = ?`, itemID, userID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrParticipantNotFound
	}
	return nil
}

// GetParticipantsByItemID joins in the user columns the participant list shows.
func (r *ParticipantRepository) GetParticipantsByItemID(ctx context.Context, itemID int) ([]models.ParticipantInfo, error) {
	query := `
        SELECT p.user_id, u.username, u.name, p.joined_at
        FROM participants p
        JOIN users u ON u.id = p.user_id
        WHERE p.item_id = ?
        ORDER BY p.joined_at ASC
    `
	rows, err := r.DB.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []models.ParticipantInfo
	for rows.Next() {
		var info models.ParticipantInfo
		if err := rows.Scan(&info.UserID, &info.Username, &info.Name, &info.JoinedAt); err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// GetParticipantsByUserID lists the auctions a user joined, most recent first.
func (r *ParticipantRepository) GetParticipantsByUserID(ctx context.Context, userID int) ([]models.Participant, error) {
	query := `
        SELECT id, item_id, user_id, joined_at
        FROM participants
        WHERE user_id = ?
        ORDER BY joined_at DESC
    `
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.ItemID, &p.UserID, &p.JoinedAt); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *ParticipantRepository) GetUserIDsByItemID(ctx context.Context, itemID int) ([]int, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT user_id FROM participants WHERE item_id = ?`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
