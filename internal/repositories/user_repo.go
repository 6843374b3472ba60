package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"auctionBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
        INSERT INTO users (username, email, password, name, balance, role, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `
	user.CreatedAt = time.Now()
	user.UpdatedAt = &user.CreatedAt
	result, err := r.DB.ExecContext(ctx, query,
		user.Username, user.Email, user.Password, user.Name, user.Balance, user.Role,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	var user models.User
	query := `
        SELECT id, username, email, password, name, balance, role, created_at, updated_at
        FROM users
        WHERE id = ?
    `
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.Name,
		&user.Balance, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	query := `
        SELECT id, username, email, password, name, balance, role, created_at, updated_at
        FROM users
        WHERE username = ?
    `
	err := r.DB.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.Name,
		&user.Balance, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`, username).Scan(&exists)
	return exists, err
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`, email).Scan(&exists)
	return exists, err
}

func (r *UserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
        UPDATE users
        SET email = ?, name = ?, balance = ?, updated_at = ?
        WHERE id = ?
    `
	updatedAt := time.Now()
	user.UpdatedAt = &updatedAt
	result, err := r.DB.ExecContext(ctx, query,
		user.Email, user.Name, user.Balance, user.UpdatedAt, user.ID,
	)
	if err != nil {
		return models.User{}, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if rowsAffected == 0 {
		return models.User{}, models.ErrUserNotFound
	}
	return r.GetUserByID(ctx, user.ID)
}

// GetBalanceForUpdateTx reads a user's balance with the row locked for the
// duration of the settlement transaction.
func (r *UserRepository) GetBalanceForUpdateTx(ctx context.Context, tx *sql.Tx, id int) (int64, error) {
	var balance int64
	err := tx.QueryRowContext(ctx, `SELECT balance FROM users WHERE id = ? FOR UPDATE`, id).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, models.ErrUserNotFound
	}
	return balance, err
}

// DebitBalanceTx subtracts amount from the user's balance inside the caller's
// transaction. The guard in the WHERE clause keeps the balance non-negative.
func (r *UserRepository) DebitBalanceTx(ctx context.Context, tx *sql.Tx, id int, amount int64) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE users SET balance = balance - ?, updated_at = ? WHERE id = ? AND balance >= ?`,
		amount, time.Now(), id, amount,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrInsufficientBalance
	}
	return nil
}

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	query := `
        INSERT INTO sessions (user_id, role, refresh_token, expires_at)
        VALUES (?, ?, ?, ?)
        ON DUPLICATE KEY UPDATE role = VALUES(role), refresh_token = VALUES(refresh_token), expires_at = VALUES(expires_at)
    `
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.Role, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session
	query := `
        SELECT user_id, role, refresh_token, expires_at
        FROM sessions
        WHERE refresh_token = ?
    `
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}
