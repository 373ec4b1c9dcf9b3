package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/renan-throsa/Golden-leaf/internal/models"
)

type ClerkRepository interface {
	Create(clerk *models.Clerk) error
	GetByID(id int) (*models.Clerk, error)
	GetByEmail(email string) (*models.Clerk, error)
	UpdateEmail(id int, email string) error
	UpdatePassword(id int, passwordHash string) error

	// refresh helpers
	UpdateRefresh(clerkID int, token string, expiresAt time.Time) error
	RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.Clerk, error)
	ClearRefresh(clerkID int) error
	GetByRefreshToken(token string) (*models.Clerk, error)
}

type clerkRepository struct {
	DB *sql.DB
}

func NewClerkRepository(db *sql.DB) ClerkRepository {
	return &clerkRepository{DB: db}
}

const uniqueViolation = "23505"

func translateUnique(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return models.ErrEmailTaken
	}
	return err
}

func (r *clerkRepository) Create(clerk *models.Clerk) error {
	const q = `
                INSERT INTO clerks (name, phone_number, email, password_hash)
                VALUES ($1, $2, $3, $4)
                RETURNING id
        `
	err := r.DB.QueryRow(q, clerk.Name, clerk.PhoneNumber, clerk.Email, clerk.PasswordHash).Scan(&clerk.ID)
	if err != nil {
		return translateUnique(err)
	}
	return nil
}

const clerkColumns = `
                SELECT id, name, phone_number, email, password_hash,
                       refresh_token, refresh_expires_at, refresh_revoked
                FROM clerks
`

func (r *clerkRepository) scanClerk(row *sql.Row) (*models.Clerk, error) {
	c := &models.Clerk{}
	var (
		rt  sql.NullString
		rte sql.NullTime
		rr  sql.NullBool
	)
	err := row.Scan(&c.ID, &c.Name, &c.PhoneNumber, &c.Email, &c.PasswordHash, &rt, &rte, &rr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get clerk: %w", err)
	}
	if rt.Valid {
		s := rt.String
		c.RefreshToken = &s
	}
	if rte.Valid {
		t := rte.Time
		c.RefreshExpiresAt = &t
	}
	if rr.Valid {
		c.RefreshRevoked = rr.Bool
	}
	return c, nil
}

func (r *clerkRepository) GetByID(id int) (*models.Clerk, error) {
	return r.scanClerk(r.DB.QueryRow(clerkColumns+`WHERE id = $1`, id))
}

func (r *clerkRepository) GetByEmail(email string) (*models.Clerk, error) {
	return r.scanClerk(r.DB.QueryRow(clerkColumns+`WHERE email = $1`, email))
}

func (r *clerkRepository) UpdateEmail(id int, email string) error {
	if _, err := r.DB.Exec(`UPDATE clerks SET email=$1 WHERE id=$2`, email, id); err != nil {
		return translateUnique(err)
	}
	return nil
}

func (r *clerkRepository) UpdatePassword(id int, passwordHash string) error {
	_, err := r.DB.Exec(`UPDATE clerks SET password_hash=$1 WHERE id=$2`, passwordHash, id)
	return err
}

// ===== refresh helpers =====

func (r *clerkRepository) UpdateRefresh(clerkID int, token string, expiresAt time.Time) error {
	const q = `
                UPDATE clerks
                SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=FALSE
                WHERE id=$3
        `
	_, err := r.DB.Exec(q, token, expiresAt, clerkID)
	return err
}

func (r *clerkRepository) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.Clerk, error) {
	const q = `
                UPDATE clerks
                SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=FALSE
                WHERE refresh_token=$3
                RETURNING id, name, phone_number, email, password_hash,
                          refresh_token, refresh_expires_at, refresh_revoked
        `
	return r.scanClerk(r.DB.QueryRow(q, newToken, newExpiresAt, oldToken))
}

func (r *clerkRepository) ClearRefresh(clerkID int) error {
	_, err := r.DB.Exec(`
                UPDATE clerks
                SET refresh_token=NULL, refresh_expires_at=NULL, refresh_revoked=TRUE
                WHERE id=$1
        `, clerkID)
	return err
}

func (r *clerkRepository) GetByRefreshToken(token string) (*models.Clerk, error) {
	return r.scanClerk(r.DB.QueryRow(clerkColumns+`WHERE refresh_token = $1`, token))
}
