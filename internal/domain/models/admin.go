package models

type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalBookings  int64        `json:"totalBookings"`
	ActiveTrips    int64        `json:"activeTrips"`
	CompletedTrips int64        `json:"completedTrips"`
	BookingTrends  []TrendPoint `json:"bookingTrends"`
}

type TrendPoint struct {
	Date     string `json:"date"`
	Bookings int64  `json:"bookings"`
}
