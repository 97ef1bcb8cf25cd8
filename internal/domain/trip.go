package domain

import "time"

// TripRequest is the planning form input. It exists only for the duration of
// one planning call.
type TripRequest struct {
	StartDestination string `json:"startDestination"`
	EndDestination   string `json:"endDestination"`
	TravelHours      int    `json:"travelHours"`
	TravelMood       string `json:"travelMood"`
	TravelDate       string `json:"travelDate,omitempty"`
}

// ActiveTrip is a TravelPlan the user has committed to, stamped with a start
// time and the request it came from. At most one exists per user.
type ActiveTrip struct {
	TravelPlan
	StartDate        time.Time `json:"startDate"`
	StartDestination string    `json:"startDestination"`
	EndDestination   string    `json:"endDestination"`
	TravelHours      int       `json:"travelHours"`
	TravelMood       string    `json:"travelMood"`
}

// TripStats accumulates across ended trips. DaysTraveled counts half days,
// so it is fractional.
type TripStats struct {
	TripsTaken       int     `json:"tripsTaken"`
	CountriesVisited int     `json:"countriesVisited"`
	DaysTraveled     float64 `json:"daysTraveled"`
}
