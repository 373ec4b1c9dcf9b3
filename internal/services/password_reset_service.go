package services

import (
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/renan-throsa/Golden-leaf/internal/models"
	"github.com/renan-throsa/Golden-leaf/internal/repositories"
	"github.com/renan-throsa/Golden-leaf/internal/utils"
)

const resetTokenTTL = 1 * time.Hour

type PasswordResetService interface {
	RequestReset(email string) error
	VerifyToken(token string) (int, error)
	ResetPassword(token, newPassword string) error
}

type resetClaims struct {
	ClerkID int `json:"clerk_id"`
	jwt.RegisteredClaims
}

type passwordResetService struct {
	clerks repositories.ClerkRepository
	resets repositories.PasswordResetRepository
	emails EmailService
	auth   AuthService
	jwtKey []byte
	ttl    time.Duration
}

func NewPasswordResetService(
	clerks repositories.ClerkRepository,
	resets repositories.PasswordResetRepository,
	emails EmailService,
	auth AuthService,
	jwtKey []byte,
) PasswordResetService {
	return &passwordResetService{
		clerks: clerks,
		resets: resets,
		emails: emails,
		auth:   auth,
		// reset tokens are signed with a dedicated key so they can never
		// pass the access-token middleware
		jwtKey: append(append([]byte{}, jwtKey...), []byte(":password-reset")...),
		ttl:    resetTokenTTL,
	}
}

// RequestReset issues a reset token for the clerk behind email and mails it.
// The outcome is identical whether or not the email is registered.
func (s *passwordResetService) RequestReset(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return &models.ValidationError{Field: "email", Message: "email is required"}
	}
	clerk, err := s.clerks.GetByEmail(email)
	if err != nil || clerk == nil {
		// don't leak existence
		log.Printf("[password-reset] request for %q: clerk not found or error: %v", email, err)
		return nil
	}

	jti, err := utils.NewOpaqueToken(16)
	if err != nil {
		return err
	}
	expires := time.Now().Add(s.ttl)
	claims := &resetClaims{
		ClerkID: clerk.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return err
	}
	if _, err := s.resets.Create(clerk.ID, jti, expires); err != nil {
		return err
	}

	if s.emails != nil {
		if err := s.emails.SendPasswordResetEmail(clerk.Email, token); err != nil {
			log.Printf("[password-reset] failed to send email to %s: %v", clerk.Email, err)
		}
	}
	return nil
}

// verify checks signature, expiry and single-use state. Every failure mode
// collapses into models.ErrInvalidToken.
func (s *passwordResetService) verify(token string) (*models.PasswordReset, *resetClaims, error) {
	claims := &resetClaims{}
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(token), claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.jwtKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, nil, models.ErrInvalidToken
	}

	pr, err := s.resets.GetByTokenID(claims.ID)
	if err != nil || pr == nil {
		return nil, nil, models.ErrInvalidToken
	}
	if pr.UsedAt != nil {
		return nil, nil, models.ErrInvalidToken
	}
	if pr.ClerkID != claims.ClerkID || time.Now().After(pr.ExpiresAt) {
		return nil, nil, models.ErrInvalidToken
	}
	return pr, claims, nil
}

func (s *passwordResetService) VerifyToken(token string) (int, error) {
	_, claims, err := s.verify(token)
	if err != nil {
		return 0, err
	}
	return claims.ClerkID, nil
}

// ResetPassword replaces the clerk's password hash and consumes the token.
func (s *passwordResetService) ResetPassword(token, newPassword string) error {
	newPassword = strings.TrimSpace(newPassword)
	if len(newPassword) < 6 {
		return &models.ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}

	pr, claims, err := s.verify(token)
	if err != nil {
		return err
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.clerks.UpdatePassword(claims.ClerkID, hash); err != nil {
		return err
	}
	return s.resets.MarkUsed(pr.ID)
}
