package models

import (
	"fmt"
	"time"
)

type TripStatus string

const (
	TripActive    TripStatus = "active"
	TripCompleted TripStatus = "completed"
	TripCancelled TripStatus = "cancelled"
)

func ParseTripStatus(s string) (TripStatus, error) {
	switch st := TripStatus(s); st {
	case TripActive, TripCompleted, TripCancelled:
		return st, nil
	}
	return "", fmt.Errorf("unknown trip status %q", s)
}

// CanTransition reports whether a trip in status s may move to next.
// Staying in the same status is always allowed. Active may become completed
// or cancelled; completed and cancelled are terminal.
func (s TripStatus) CanTransition(next TripStatus) bool {
	if s == next {
		return true
	}
	return s == TripActive && (next == TripCompleted || next == TripCancelled)
}

// SourcesFor lists the statuses from which next is reachable.
func SourcesFor(next TripStatus) []TripStatus {
	out := []TripStatus{}
	for _, s := range []TripStatus{TripActive, TripCompleted, TripCancelled} {
		if s.CanTransition(next) {
			out = append(out, s)
		}
	}
	return out
}

type Trip struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Destination string     `json:"destination"`
	CreatedAt   time.Time  `json:"createdAt"`
	Status      TripStatus `json:"status"`
}

// NewTrip is the caller-supplied part of a booking.
type NewTrip struct {
	Name        string
	Phone       string
	StartDate   string
	EndDate     string
	Destination string
}
