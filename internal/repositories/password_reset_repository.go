package repositories

import (
	"database/sql"
	"time"

	"github.com/renan-throsa/Golden-leaf/internal/models"
)

type PasswordResetRepository interface {
	Create(clerkID int, tokenID string, expiresAt time.Time) (*models.PasswordReset, error)
	GetByTokenID(tokenID string) (*models.PasswordReset, error)
	MarkUsed(id int) error
}

type passwordResetRepository struct {
	DB *sql.DB
}

func NewPasswordResetRepository(db *sql.DB) PasswordResetRepository {
	return &passwordResetRepository{DB: db}
}

func (r *passwordResetRepository) Create(clerkID int, tokenID string, expiresAt time.Time) (*models.PasswordReset, error) {
	const q = `
                INSERT INTO password_resets (clerk_id, token_id, expires_at)
                VALUES ($1, $2, $3)
                RETURNING id, created_at
        `
	pr := &models.PasswordReset{ClerkID: clerkID, TokenID: tokenID, ExpiresAt: expiresAt}
	if err := r.DB.QueryRow(q, clerkID, tokenID, expiresAt).Scan(&pr.ID, &pr.CreatedAt); err != nil {
		return nil, err
	}
	return pr, nil
}

func (r *passwordResetRepository) GetByTokenID(tokenID string) (*models.PasswordReset, error) {
	const q = `
                SELECT id, clerk_id, token_id, expires_at, used_at, created_at
                FROM password_resets
                WHERE token_id = $1
        `
	pr := &models.PasswordReset{}
	var usedAt sql.NullTime
	if err := r.DB.QueryRow(q, tokenID).Scan(&pr.ID, &pr.ClerkID, &pr.TokenID, &pr.ExpiresAt, &usedAt, &pr.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if usedAt.Valid {
		pr.UsedAt = &usedAt.Time
	}
	return pr, nil
}

func (r *passwordResetRepository) MarkUsed(id int) error {
	const q = `
                UPDATE password_resets SET used_at = NOW() WHERE id = $1
        `
	_, err := r.DB.Exec(q, id)
	return err
}
