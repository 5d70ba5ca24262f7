package handler

import (
	"log"
	"main/internal/auth"
	"main/internal/calendar"
	"main/internal/config"
	"main/internal/database"
	"main/internal/middleware"
	"main/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store     database.CredentialStore
	cfg       *config.Config
	auth      auth.Authenticator
	scheduler calendar.Scheduler
}

func New(store database.CredentialStore, cfg *config.Config, auth auth.Authenticator, scheduler calendar.Scheduler) *Handler {
	return &Handler{store, cfg, auth, scheduler}
}

func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "API is running"})
}

// AuthStatus reports whether a credential record exists. Store failures are
// deliberately downgraded to "not authenticated" so a flaky store doesn't
// look like a crash to the frontend.
func (h *Handler) AuthStatus(c *gin.Context) {
	cred, err := h.store.LatestCredential()
	if err != nil {
		log.Printf("Error checking auth status: %v", err)
		c.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isAuthenticated": cred != nil})
}

// Login redirects the browser to Google's consent page.
func (h *Handler) Login(c *gin.Context) {
	q := c.Request.URL.Query()
	q.Add("provider", "google")
	c.Request.URL.RawQuery = q.Encode()

	h.auth.BeginAuth(c.Writer, c.Request)
}

// Callback exchanges the authorization code Google sent back, persists the
// resulting tokens under the tenant's user id and bounces the browser to the
// frontend.
func (h *Handler) Callback(c *gin.Context) {
	if c.Query("code") == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "No code in query parameters"})
		return
	}

	q := c.Request.URL.Query()
	q.Add("provider", "google")
	q.Del("scope")
	c.Request.URL.RawQuery = q.Encode()

	gothUser, err := h.auth.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		log.Printf("Failed to exchange authorization code: %v", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Failed to fetch credentials"})
		return
	}

	if gothUser.AccessToken == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Failed to fetch credentials"})
		return
	}

	err = h.store.UpsertCredential(&model.Credential{
		UserID:       model.DefaultUserID,
		AccessToken:  gothUser.AccessToken,
		RefreshToken: gothUser.RefreshToken,
		ExpiresAt:    gothUser.ExpiresAt,
	})
	if err != nil {
		log.Printf("Failed to store tokens: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Failed to store credentials"})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, h.cfg.FrontendURL)
}

// CreateMeeting schedules one calendar event with a Meet link from the JSON
// body. The credential is supplied by middleware.RequireCredential.
func (h *Handler) CreateMeeting(c *gin.Context) {
	cred := c.MustGet(middleware.CredentialKey).(*model.Credential)

	var req model.MeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	result, err := h.scheduler.CreateMeeting(c.Request.Context(), cred, &req)
	if err != nil {
		log.Printf("Error creating meeting: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Meeting created successfully",
		"meetingLink": result.MeetingLink,
		"eventId":     result.EventID,
	})
}
