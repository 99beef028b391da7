package model

import "time"

// Identity is the authenticated caller, as proven by a verified session token.
type Identity struct {
	UserID    int64     `json:"userId"`
	Role      Role      `json:"role"`
	TokenID   string    `json:"-"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
