package server

import (
	"database/sql"
	"main/internal/auth"
	"main/internal/calendar"
	"main/internal/config"
	"main/internal/database"
	"main/internal/handler"
	"main/internal/middleware"

	"github.com/antonlindstrom/pgstore"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
	gcal "google.golang.org/api/calendar/v3"
)

type Server struct {
	*gin.Engine
	db    *sql.DB
	store *pgstore.PGStore
}

func New(cfg *config.Config, db *sql.DB) (*Server, error) {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	store, err := auth.NewStore(cfg.DatabaseURL, []byte(cfg.SessionSecret))
	if err != nil {
		return nil, err
	}

	// gothic keeps the per-login state token in this store.
	gothic.Store = store

	gp := google.New(cfg.ClientID, cfg.ClientSecret, cfg.RedirectURL(), gcal.CalendarScope)

	// offline + consent so Google hands out a refresh token on every login,
	// not just the first one.
	gp.SetAccessType("offline")
	gp.SetPrompt("consent")

	goth.UseProviders(gp)

	credStore := database.NewCredentialStore(db)

	h := handler.New(credStore, cfg, auth.NewGothicAuthenticator(), calendar.NewClient())

	r.GET("/", h.Home)
	r.GET("/auth/status", h.AuthStatus)
	r.GET("/login", h.Login)
	r.GET("/callback", h.Callback)

	meetings := r.Group("/meetings")
	meetings.Use(middleware.RequireCredential(credStore))
	{
		meetings.POST("/create", h.CreateMeeting)
	}

	return &Server{r, db, store}, nil
}
