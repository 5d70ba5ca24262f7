package auth

import (
	"net/http"

	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
)

// GothicAuthenticator is the real implementation of the Authenticator interface.
type GothicAuthenticator struct{}

// NewGothicAuthenticator creates a new GothicAuthenticator.
func NewGothicAuthenticator() *GothicAuthenticator {
	return &GothicAuthenticator{}
}

// BeginAuth wraps gothic.BeginAuthHandler, which issues the state token and
// redirects to Google's consent page.
func (a *GothicAuthenticator) BeginAuth(w http.ResponseWriter, r *http.Request) {
	gothic.BeginAuthHandler(w, r)
}

// CompleteUserAuth wraps gothic.CompleteUserAuth, which validates the state
// parameter against the session and exchanges the authorization code.
func (a *GothicAuthenticator) CompleteUserAuth(w http.ResponseWriter, r *http.Request) (goth.User, error) {
	return gothic.CompleteUserAuth(w, r)
}
