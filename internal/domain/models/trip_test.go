package models

import "testing"

func TestTripStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to TripStatus
		want     bool
	}{
		{TripActive, TripActive, true},
		{TripActive, TripCompleted, true},
		{TripActive, TripCancelled, true},
		{TripCompleted, TripCompleted, true},
		{TripCompleted, TripCancelled, false},
		{TripCompleted, TripActive, false},
		{TripCancelled, TripCancelled, true},
		{TripCancelled, TripActive, false},
		{TripCancelled, TripCompleted, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.want {
			t.Fatalf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestSourcesForCancelled(t *testing.T) {
	got := SourcesFor(TripCancelled)
	if len(got) != 2 || got[0] != TripActive || got[1] != TripCancelled {
		t.Fatalf("SourcesFor(cancelled) = %v", got)
	}
}

func TestParseTripStatus(t *testing.T) {
	for _, s := range []string{"active", "completed", "cancelled"} {
		if _, err := ParseTripStatus(s); err != nil {
			t.Fatalf("ParseTripStatus(%q) error: %v", s, err)
		}
	}
	if _, err := ParseTripStatus("Active"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}
