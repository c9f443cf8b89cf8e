package repositories

import (
	"context"
	"strings"
	"time"

	intdb "carbooking/internal/db"
	"carbooking/internal/domain/models"
	"carbooking/internal/utils"
)

type TripRepository struct {
	DB intdb.DBTX
}

const tripColumns = `id, name, phone, start_date, end_date, destination, created_at, status`

func (r TripRepository) Insert(ctx context.Context, in models.NewTrip, createdAt time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO trips (name, phone, start_date, end_date, destination, created_at, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, in.Name, in.Phone, in.StartDate, in.EndDate, in.Destination, intdb.Millis(createdAt), string(models.TripActive))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListRecent returns up to limit trips, newest first. A non-empty search
// keeps only trips whose name, phone or destination contains it. Case is
// folded in Go; SQLite's LOWER folds ASCII only.
func (r TripRepository) ListRecent(ctx context.Context, search string, limit int) ([]models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY created_at DESC, id DESC`
	args := []any{}
	if search == "" {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	q := strings.ToLower(search)
	out := []models.Trip{}
	for len(out) < limit && rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		if q != "" && !utils.ContainsFold(t.Name, q) && !utils.ContainsFold(t.Phone, q) && !utils.ContainsFold(t.Destination, q) {
			continue
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetByID returns sql.ErrNoRows when the trip does not exist.
func (r TripRepository) GetByID(ctx context.Context, id int64) (models.Trip, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = ?`, id)
	return scanTrip(row)
}

// SetStatus moves trip id to next if its current status is one of from.
// It reports whether a row matched; an unknown id is not an error.
func (r TripRepository) SetStatus(ctx context.Context, id int64, next models.TripStatus, from []models.TripStatus) (bool, error) {
	args := []any{string(next), id}
	for _, s := range from {
		args = append(args, string(s))
	}
	res, err := r.DB.ExecContext(ctx,
		`UPDATE trips SET status = ? WHERE id = ? AND status IN (`+intdb.Placeholders(len(from))+`)`,
		args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(s rowScanner) (models.Trip, error) {
	var (
		t         models.Trip
		createdAt int64
		status    string
	)
	if err := s.Scan(&t.ID, &t.Name, &t.Phone, &t.StartDate, &t.EndDate, &t.Destination, &createdAt, &status); err != nil {
		return models.Trip{}, err
	}
	st, err := models.ParseTripStatus(status)
	if err != nil {
		return models.Trip{}, err
	}
	t.CreatedAt = intdb.FromMillis(createdAt)
	t.Status = st
	return t, nil
}
