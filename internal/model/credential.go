package model

import "time"

// DefaultUserID identifies the single tenant this deployment serves.
// Every credential record is keyed by it.
const DefaultUserID = "de3208ff-d59b-405e-ad9a-76fc6bee30d2"

type Credential struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	AccessToken  string    `db:"access_token"`
	RefreshToken string    `db:"refresh_token"`
	ExpiresAt    time.Time `db:"expires_at"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
