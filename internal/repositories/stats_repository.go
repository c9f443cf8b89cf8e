package repositories

import (
	"context"
	"time"

	intdb "carbooking/internal/db"
	"carbooking/internal/domain/models"
)

type StatsRepository struct {
	DB intdb.DBTX
}

type TripCounts struct {
	Total     int64
	Active    int64
	Completed int64
}

func (r StatsRepository) Counts(ctx context.Context) (TripCounts, error) {
	var c TripCounts
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		FROM trips
	`, string(models.TripActive), string(models.TripCompleted)).Scan(&c.Total, &c.Active, &c.Completed)
	return c, err
}

// CreatedBetween returns the creation times of trips created in [from, to).
func (r StatsRepository) CreatedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT created_at FROM trips WHERE created_at >= ? AND created_at < ?`,
		intdb.Millis(from), intdb.Millis(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []time.Time{}
	for rows.Next() {
		var ms int64
		if err := rows.Scan(&ms); err != nil {
			return nil, err
		}
		out = append(out, intdb.FromMillis(ms))
	}
	return out, rows.Err()
}
