package auth

import (
	"net/http"

	"github.com/antonlindstrom/pgstore"
	"github.com/gorilla/sessions"
)

// NewStore builds the Postgres-backed session store gothic uses to hold the
// state token for in-flight logins. Sessions only need to outlive one trip
// through Google's consent page, so they expire quickly.
func NewStore(dbURL string, keyPairs ...[]byte) (*pgstore.PGStore, error) {
	store, err := pgstore.NewPGStore(dbURL, keyPairs...)
	if err != nil {
		return nil, err
	}

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   600, // 10 minutes
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}

	return store, nil
}
