package model

import "time"

// TokenPayload is the decoded session token attached to an authenticated request.
type TokenPayload struct {
	UserID    uint64    `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}
