// Package app wires configuration, storage, services and the HTTP router
// into one runnable unit.
package app

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	intconfig "carbooking/internal/config"
	api "carbooking/internal/http"
	"carbooking/internal/http/handlers"
	"carbooking/internal/repositories"
	"carbooking/internal/services"

	"github.com/gin-gonic/gin"
)

type App struct {
	DB     *sql.DB
	Router *gin.Engine
	Auth   services.AuthService
	Trips  services.TripService
	Stats  services.StatsService
}

// New opens the store, seeds the admin account and builds the router.
func New(ctx context.Context, env intconfig.Env, logger *slog.Logger) (*App, error) {
	db, err := intconfig.OpenDB(ctx, env.DBDriver, env.DBDSN)
	if err != nil {
		return nil, err
	}

	a := Build(db, env, logger, time.Now)

	if env.AdminPassword == "" {
		logger.Warn("ADMIN_PASSWORD kosong, seeding admin dilewati", "username", env.AdminUsername)
	} else if _, err := a.Auth.SeedAdmin(ctx, env.AdminUsername, env.AdminPassword); err != nil {
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

// Build assembles the services around an already migrated db.
func Build(db *sql.DB, env intconfig.Env, logger *slog.Logger, now func() time.Time) *App {
	auth := services.AuthService{
		Admins: repositories.AdminRepository{DB: db, Driver: env.DBDriver},
		Secret: []byte(env.JWTSecret),
		TTL:    env.TokenTTL,
		Now:    now,
		Log:    logger,
	}
	trips := services.TripService{
		Trips:    repositories.TripRepository{DB: db},
		Now:      now,
		Location: env.Location,
		Log:      logger,
	}
	stats := services.StatsService{
		Stats:    repositories.StatsRepository{DB: db},
		Now:      now,
		Location: env.Location,
	}
	tickets := services.TicketService{Trips: trips, Location: env.Location}

	hd := &handlers.Handler{
		Auth:    auth,
		Trips:   trips,
		Stats:   stats,
		Tickets: tickets,
		DB:      db,
		Log:     logger,
	}

	return &App{
		DB:     db,
		Router: api.NewRouter(env, hd, auth, logger),
		Auth:   auth,
		Trips:  trips,
		Stats:  stats,
	}
}

func (a *App) Close() error {
	return a.DB.Close()
}
