package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/renan-throsa/Golden-leaf/internal/models"
)

func newResetFixture(t *testing.T) (*fakeClerkRepo, *fakeResetRepo, *fakeEmailService, AuthService, PasswordResetService) {
	t.Helper()
	clerks := newFakeClerkRepo()
	resets := newFakeResetRepo()
	emails := &fakeEmailService{}
	auth := NewAuthService(clerks, testJWTKey)
	svc := NewPasswordResetService(clerks, resets, emails, auth, testJWTKey)
	return clerks, resets, emails, auth, svc
}

func TestResetTokenRoundTrip(t *testing.T) {
	clerks, _, emails, _, svc := newResetFixture(t)
	clerk := seedClerk(t, clerks, "joao@goldenleaf.local", "senha-antiga")

	require.NoError(t, svc.RequestReset("joao@goldenleaf.local"))
	require.Equal(t, "joao@goldenleaf.local", emails.resetTo)
	require.NotEmpty(t, emails.resetToken)

	clerkID, err := svc.VerifyToken(emails.resetToken)
	require.NoError(t, err)
	require.Equal(t, clerk.ID, clerkID)
}

func TestResetRequestDoesNotLeakExistence(t *testing.T) {
	_, resets, emails, _, svc := newResetFixture(t)

	require.NoError(t, svc.RequestReset("ghost@goldenleaf.local"))
	require.Empty(t, emails.resetToken)
	require.Empty(t, resets.byToken)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	clerks, _, emails, _, svc := newResetFixture(t)
	seedClerk(t, clerks, "joao@goldenleaf.local", "senha-antiga")
	require.NoError(t, svc.RequestReset("joao@goldenleaf.local"))

	token := emails.resetToken
	last := token[len(token)-1]
	flip := byte('A')
	if last == 'A' {
		flip = 'B'
	}
	tampered := token[:len(token)-1] + string(flip)

	_, err := svc.VerifyToken(tampered)
	require.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	clerks := newFakeClerkRepo()
	resets := newFakeResetRepo()
	emails := &fakeEmailService{}
	auth := NewAuthService(clerks, testJWTKey)
	seedClerk(t, clerks, "joao@goldenleaf.local", "senha-antiga")

	svc := NewPasswordResetService(clerks, resets, emails, auth, testJWTKey).(*passwordResetService)
	svc.ttl = -time.Minute // issue already-expired tokens

	require.NoError(t, svc.RequestReset("joao@goldenleaf.local"))
	_, err := svc.VerifyToken(emails.resetToken)
	require.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestResetPasswordConsumesToken(t *testing.T) {
	clerks, _, emails, auth, svc := newResetFixture(t)
	clerk := seedClerk(t, clerks, "joao@goldenleaf.local", "senha-antiga")
	require.NoError(t, svc.RequestReset("joao@goldenleaf.local"))
	token := emails.resetToken

	require.NoError(t, svc.ResetPassword(token, "senha-nova-123"))

	stored, err := clerks.GetByID(clerk.ID)
	require.NoError(t, err)
	require.True(t, auth.VerifyPassword(stored.PasswordHash, "senha-nova-123"))
	require.False(t, auth.VerifyPassword(stored.PasswordHash, "senha-antiga"))

	// the token is single-use
	require.ErrorIs(t, svc.ResetPassword(token, "outra-senha-456"), models.ErrInvalidToken)
	_, err = svc.VerifyToken(token)
	require.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestResetPasswordRejectsShortPassword(t *testing.T) {
	clerks, _, emails, _, svc := newResetFixture(t)
	seedClerk(t, clerks, "joao@goldenleaf.local", "senha-antiga")
	require.NoError(t, svc.RequestReset("joao@goldenleaf.local"))

	err := svc.ResetPassword(emails.resetToken, "abc")
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "password", ve.Field)
}
