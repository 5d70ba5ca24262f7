package auth

import (
	"net/http"

	"github.com/markbates/goth"
)

// Authenticator describes an object that can drive the Google OAuth flow:
// redirecting the browser to the consent page and completing the code
// exchange on the way back.
type Authenticator interface {
	BeginAuth(w http.ResponseWriter, r *http.Request)
	CompleteUserAuth(w http.ResponseWriter, r *http.Request) (goth.User, error)
}
