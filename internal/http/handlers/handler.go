package handlers

import (
	"context"
	"database/sql"
	"log/slog"

	"carbooking/internal/domain/models"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type TripService interface {
	Create(ctx context.Context, in models.NewTrip) (int64, error)
	ListRecent(ctx context.Context, search string, limit int) ([]models.Trip, error)
	Cancel(ctx context.Context, id int64) error
}

type StatsService interface {
	Compute(ctx context.Context) (models.Stats, error)
}

type TicketService interface {
	Render(ctx context.Context, id int64) ([]byte, string, error)
}

// Handler groups the HTTP endpoints with the services they call.
type Handler struct {
	Auth    AuthService
	Trips   TripService
	Stats   StatsService
	Tickets TicketService
	DB      *sql.DB
	Log     *slog.Logger
}
