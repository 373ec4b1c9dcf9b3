package services

import (
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/renan-throsa/Golden-leaf/internal/middleware"
	"github.com/renan-throsa/Golden-leaf/internal/models"
	"github.com/renan-throsa/Golden-leaf/internal/repositories"
	"github.com/renan-throsa/Golden-leaf/internal/utils"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
)

// Session is the authenticated state handed back on login: the clerk plus the
// token pair the caller presents on subsequent requests.
type Session struct {
	Clerk        *models.Clerk `json:"clerk"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresAt    time.Time     `json:"expires_at"`
}

type AuthService interface {
	HashPassword(plain string) (string, error)
	VerifyPassword(hash, plain string) bool
	Login(email, password string) (*Session, error)
	Refresh(refreshToken string) (*Session, error)
	Logout(clerkID int) error
}

type authService struct {
	clerks repositories.ClerkRepository
	jwtKey []byte
}

func NewAuthService(clerks repositories.ClerkRepository, jwtKey []byte) AuthService {
	return &authService{clerks: clerks, jwtKey: jwtKey}
}

func (s *authService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *authService) VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Login verifies credentials and issues a fresh token pair. Unknown email and
// wrong password both surface models.ErrInvalidCredentials so callers cannot
// probe which emails are registered.
func (s *authService) Login(email, password string) (*Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	clerk, err := s.clerks.GetByEmail(email)
	if err != nil {
		log.Printf("[auth][login] lookup failed for email=%q: %v", email, err)
		return nil, models.ErrInvalidCredentials
	}
	if clerk == nil || clerk.PasswordHash == "" {
		log.Printf("[auth][login] no clerk for email=%q", email)
		return nil, models.ErrInvalidCredentials
	}
	if !s.VerifyPassword(clerk.PasswordHash, strings.TrimSpace(password)) {
		log.Printf("[auth][login] password mismatch for clerkID=%d", clerk.ID)
		return nil, models.ErrInvalidCredentials
	}

	return s.issueSession(clerk)
}

func (s *authService) issueSession(clerk *models.Clerk) (*Session, error) {
	expiresAt := time.Now().Add(accessTokenTTL)
	claims := &middleware.Claims{
		ClerkID: clerk.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, err
	}

	refresh, err := utils.NewOpaqueToken(32)
	if err != nil {
		return nil, err
	}
	if err := s.clerks.UpdateRefresh(clerk.ID, refresh, time.Now().Add(refreshTokenTTL)); err != nil {
		return nil, err
	}

	log.Printf("[auth][login] session issued for clerkID=%d exp=%s", clerk.ID, expiresAt.Format(time.RFC3339))
	return &Session{
		Clerk:        clerk,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	}, nil
}

// Refresh rotates a valid refresh token and returns a new session.
func (s *authService) Refresh(refreshToken string) (*Session, error) {
	old := strings.TrimSpace(refreshToken)
	clerk, err := s.clerks.GetByRefreshToken(old)
	if err != nil || clerk == nil || clerk.RefreshToken == nil || clerk.RefreshExpiresAt == nil || clerk.RefreshRevoked {
		return nil, models.ErrInvalidToken
	}
	if time.Now().After(*clerk.RefreshExpiresAt) {
		return nil, models.ErrInvalidToken
	}

	newToken, err := utils.NewOpaqueToken(32)
	if err != nil {
		return nil, err
	}
	rotated, err := s.clerks.RotateRefresh(old, newToken, time.Now().Add(refreshTokenTTL))
	if err != nil || rotated == nil {
		return nil, models.ErrInvalidToken
	}

	expiresAt := time.Now().Add(accessTokenTTL)
	claims := &middleware.Claims{
		ClerkID: rotated.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, err
	}
	return &Session{
		Clerk:        rotated,
		AccessToken:  access,
		RefreshToken: newToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// Logout revokes the clerk's refresh token. Safe to call for a clerk with no
// active session.
func (s *authService) Logout(clerkID int) error {
	return s.clerks.ClearRefresh(clerkID)
}
