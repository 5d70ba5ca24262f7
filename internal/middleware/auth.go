package middleware

import (
	"log"
	"main/internal/database"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CredentialKey is the gin context key the fetched credential is stored
// under, so handlers behind this middleware don't hit the store again.
const CredentialKey = "credential"

// RequireCredential protects routes that need a stored OAuth grant. Requests
// are rejected with 401 before any outbound Google call when no grant exists.
func RequireCredential(store database.CredentialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cred, err := store.LatestCredential()
		if err != nil {
			log.Printf("Failed to fetch credentials: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Failed to fetch credentials"})
			return
		}

		if cred == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "No credentials found"})
			return
		}

		c.Set(CredentialKey, cred)
		c.Next()
	}
}
