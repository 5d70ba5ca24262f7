package database

import (
	"database/sql"
	"main/internal/model"
	"time"

	"github.com/google/uuid"
)

// CredentialStore persists the single OAuth grant this service holds.
type CredentialStore interface {
	UpsertCredential(cred *model.Credential) error
	LatestCredential() (*model.Credential, error)
}

type credentialStore struct {
	db *sql.DB
}

func NewCredentialStore(db *sql.DB) CredentialStore {
	return &credentialStore{db: db}
}

// UpsertCredential writes the record keyed by user_id, overwriting any
// previous grant for that user.
func (s *credentialStore) UpsertCredential(cred *model.Credential) error {
	now := time.Now()
	_, err := s.db.Exec(`INSERT INTO calendar_credentials (id, user_id, access_token, refresh_token, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET access_token = EXCLUDED.access_token, refresh_token = EXCLUDED.refresh_token, expires_at = EXCLUDED.expires_at, updated_at = EXCLUDED.updated_at`,
		uuid.New().String(), cred.UserID, cred.AccessToken, cred.RefreshToken, cred.ExpiresAt, now, now)
	return err
}

// LatestCredential returns the stored record, or (nil, nil) when the user has
// never completed the OAuth flow.
func (s *credentialStore) LatestCredential() (*model.Credential, error) {
	cred := &model.Credential{}
	var refreshToken sql.NullString

	err := s.db.QueryRow("SELECT id, user_id, access_token, refresh_token, expires_at, created_at, updated_at FROM calendar_credentials ORDER BY updated_at DESC LIMIT 1").
		Scan(&cred.ID, &cred.UserID, &cred.AccessToken, &refreshToken, &cred.ExpiresAt, &cred.CreatedAt, &cred.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No credential stored is not an error
		}
		return nil, err
	}

	cred.RefreshToken = refreshToken.String

	return cred, nil
}
