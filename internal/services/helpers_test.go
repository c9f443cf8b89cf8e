package services

import (
	"context"
	"database/sql"
	"io"
	"path/filepath"
	"testing"
	"time"

	intconfig "carbooking/internal/config"
	"carbooking/internal/domain/models"
	"carbooking/internal/repositories"
	"carbooking/internal/utils"

	"github.com/stretchr/testify/require"
)

// clock is a settable time source for services under test.
type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := intconfig.OpenDB(context.Background(), intconfig.DriverSQLite, filepath.Join(t.TempDir(), "trips.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newTripService(db *sql.DB, c *clock) TripService {
	return TripService{
		Trips:    repositories.TripRepository{DB: db},
		Now:      c.Now,
		Location: time.UTC,
		Log:      utils.NewLogger(io.Discard, "error"),
	}
}

func sampleTrip(name string) models.NewTrip {
	return models.NewTrip{
		Name:        name,
		Phone:       "0800123",
		StartDate:   "2026-10-20",
		EndDate:     "2026-10-22",
		Destination: "Bali",
	}
}
