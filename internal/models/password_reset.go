package models

import "time"

// PasswordReset tracks one issued reset token so it can be expired and
// consumed at most once. TokenID is the jti of the signed token, not the
// token itself.
type PasswordReset struct {
	ID        int        `json:"id"`
	ClerkID   int        `json:"clerk_id"`
	TokenID   string     `json:"token_id"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
