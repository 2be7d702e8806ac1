package internals

import (
	"fmt"
	"time"

	"airline-ops-server/model"
)

const DateLayout = "2006-01-02"
const TimeLayout = "15:04"

// ValidateFlightTimes checks the date and time fields of a flight instance:
// all three must parse and the arrival must be strictly after the departure
// on the given date.
func ValidateFlightTimes(date, departureTime, arrivalTime string) error {
	_, err := time.Parse(DateLayout, date)
	if err != nil {
		return model.NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date))
	}

	departure, err := time.Parse(TimeLayout, departureTime)
	if err != nil {
		return model.NewValidationError(fmt.Sprintf("invalid departure time %q, expected HH:MM", departureTime))
	}
	arrival, err := time.Parse(TimeLayout, arrivalTime)
	if err != nil {
		return model.NewValidationError(fmt.Sprintf("invalid arrival time %q, expected HH:MM", arrivalTime))
	}

	if !arrival.After(departure) {
		return model.NewValidationError("arrival time must be after departure time")
	}

	return nil
}

// DepartureInstant combines the flight date and departure time into a single
// instant, used by the past-departure scheduling policy.
func DepartureInstant(date, departureTime string) (time.Time, error) {
	return time.Parse(DateLayout+" "+TimeLayout, date+" "+departureTime)
}
