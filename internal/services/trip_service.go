package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"carbooking/internal/domain"
	"carbooking/internal/domain/models"
	"carbooking/internal/repositories"
	"carbooking/internal/utils"
)

// MaxRecentTrips caps every trip listing.
const MaxRecentTrips = 10

type TripService struct {
	Trips    repositories.TripRepository
	Now      func() time.Time
	Location *time.Location
	Log      *slog.Logger
}

func (s TripService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s TripService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

// Create stores a new active trip and returns its id.
func (s TripService) Create(ctx context.Context, in models.NewTrip) (int64, error) {
	in = models.NewTrip{
		Name:        utils.NormalizeSpace(in.Name),
		Phone:       strings.TrimSpace(in.Phone),
		StartDate:   strings.TrimSpace(in.StartDate),
		EndDate:     strings.TrimSpace(in.EndDate),
		Destination: utils.NormalizeSpace(in.Destination),
	}
	if err := s.validate(in); err != nil {
		return 0, err
	}

	id, err := s.Trips.Insert(ctx, in, s.now())
	if err != nil {
		return 0, domain.StorageError{Op: "insert trip", Err: err}
	}
	utils.LogEvent(ctx, s.Log, "trips", "create", "trip created", "trip_id", id)
	return id, nil
}

func (s TripService) validate(in models.NewTrip) error {
	required := []struct{ field, value string }{
		{"name", in.Name},
		{"phone", in.Phone},
		{"startDate", in.StartDate},
		{"endDate", in.EndDate},
		{"destination", in.Destination},
	}
	for _, r := range required {
		if r.value == "" {
			return domain.ValidationError{Field: r.field, Msg: "is required"}
		}
	}

	// Dates that are not YYYY-MM-DD are stored as given.
	start, errStart := utils.ParseDate(in.StartDate, s.location())
	end, errEnd := utils.ParseDate(in.EndDate, s.location())
	if errStart == nil && errEnd == nil && start.After(end) {
		return domain.ValidationError{Field: "endDate", Msg: "must not be before startDate"}
	}
	return nil
}

// ListRecent returns the newest trips first. limit is clamped to
// [1, MaxRecentTrips]; zero means the maximum.
func (s TripService) ListRecent(ctx context.Context, search string, limit int) ([]models.Trip, error) {
	if limit <= 0 || limit > MaxRecentTrips {
		limit = MaxRecentTrips
	}
	trips, err := s.Trips.ListRecent(ctx, strings.TrimSpace(search), limit)
	if err != nil {
		return nil, domain.StorageError{Op: "list trips", Err: err}
	}
	return trips, nil
}

func (s TripService) Get(ctx context.Context, id int64) (models.Trip, error) {
	t, err := s.Trips.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Trip{}, domain.NotFoundError{Resource: "trip", Err: err}
		}
		return models.Trip{}, domain.StorageError{Op: "get trip", Err: err}
	}
	return t, nil
}

// Cancel marks a trip cancelled. Cancelling an already cancelled trip or an
// id that does not exist succeeds without effect; a completed trip cannot be
// cancelled.
func (s TripService) Cancel(ctx context.Context, id int64) error {
	matched, err := s.Trips.SetStatus(ctx, id, models.TripCancelled, models.SourcesFor(models.TripCancelled))
	if err != nil {
		return domain.StorageError{Op: "cancel trip", Err: err}
	}
	if matched {
		utils.LogEvent(ctx, s.Log, "trips", "cancel", "trip cancelled", "trip_id", id)
		return nil
	}

	t, err := s.Trips.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return domain.StorageError{Op: "get trip", Err: err}
	}
	return domain.ConflictError{
		Resource: "trip",
		Msg:      fmt.Sprintf("cannot cancel a %s trip", t.Status),
	}
}
