package services

import (
	"context"
	"time"

	"carbooking/internal/domain"
	"carbooking/internal/domain/models"
	"carbooking/internal/repositories"
	"carbooking/internal/utils"
)

// TrendDays is the length of the booking trend window, today included.
const TrendDays = 7

type StatsService struct {
	Stats    repositories.StatsRepository
	Now      func() time.Time
	Location *time.Location
}

func (s StatsService) Compute(ctx context.Context) (models.Stats, error) {
	counts, err := s.Stats.Counts(ctx)
	if err != nil {
		return models.Stats{}, domain.StorageError{Op: "count trips", Err: err}
	}

	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	// bounds[i] is local midnight of day i; bounds[TrendDays] is tomorrow.
	today := utils.StartOfDay(now, loc)
	bounds := make([]time.Time, TrendDays+1)
	for i := range bounds {
		bounds[i] = today.AddDate(0, 0, i-(TrendDays-1))
	}

	created, err := s.Stats.CreatedBetween(ctx, bounds[0], bounds[TrendDays])
	if err != nil {
		return models.Stats{}, domain.StorageError{Op: "trend trips", Err: err}
	}

	trend := make([]models.TrendPoint, TrendDays)
	for i := range trend {
		trend[i].Date = utils.DayLabel(bounds[i])
	}
	for _, t := range created {
		for i := 0; i < TrendDays; i++ {
			if !t.Before(bounds[i]) && t.Before(bounds[i+1]) {
				trend[i].Bookings++
				break
			}
		}
	}

	return models.Stats{
		TotalBookings:  counts.Total,
		ActiveTrips:    counts.Active,
		CompletedTrips: counts.Completed,
		BookingTrends:  trend,
	}, nil
}
