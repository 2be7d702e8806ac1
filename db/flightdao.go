package db

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"airline-ops-server/internals"
	"airline-ops-server/model"
)

type FlightDAO struct {
	db *gorm.DB
}

func NewFlightDAO(db *gorm.DB) *FlightDAO {
	return &FlightDAO{db: db}
}

// validateFlightReferences checks route and aircraft references inside the
// given transaction, so scheduling observes a consistent registry state.
func validateFlightReferences(transaction *gorm.DB, flight model.FlightInstance) error {
	var route model.Route
	result := transaction.First(&route, flight.RouteID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.NewValidationError("route does not exist")
		}
		return result.Error
	}

	var aircraft model.Aircraft
	result = transaction.Where("registration_number = ?", flight.AircraftRegistration).First(&aircraft)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.NewValidationError("aircraft " + flight.AircraftRegistration + " does not exist")
		}
		return result.Error
	}
	if aircraft.Status == model.AircraftStatusRetired {
		return model.NewValidationError("aircraft " + flight.AircraftRegistration + " is retired")
	}

	return nil
}

func (flightDAO *FlightDAO) ScheduleFlight(flight model.FlightInstance, rejectPastDeparture bool) (model.FlightInstance, error) {
	if err := internals.ValidateFlightTimes(flight.Date, flight.ScheduledDepartureTime, flight.ScheduledArrivalTime); err != nil {
		return model.FlightInstance{}, err
	}

	if rejectPastDeparture {
		departure, err := internals.DepartureInstant(flight.Date, flight.ScheduledDepartureTime)
		if err != nil {
			return model.FlightInstance{}, model.NewValidationError("invalid departure date or time")
		}
		if departure.Before(time.Now()) {
			return model.FlightInstance{}, model.NewValidationError("departure time is in the past")
		}
	}

	// create transaction
	transaction := flightDAO.db.Begin()
	if transaction.Error != nil {
		return model.FlightInstance{}, transaction.Error
	}

	defer func() {
		if r := recover(); r != nil {
			transaction.Rollback()
			panic(r)
		} else if transaction.Error != nil {
			transaction.Rollback()
		}
	}()

	if err := validateFlightReferences(transaction, flight); err != nil {
		transaction.Rollback()
		return model.FlightInstance{}, err
	}

	// check (flight number, date) unused
	var existing model.FlightInstance
	result := transaction.Where("flight_number = ? AND flight_date = ?", flight.FlightNumber, flight.Date).First(&existing)
	if result.Error == nil {
		transaction.Rollback()
		return model.FlightInstance{}, model.NewConflictError("flight " + flight.FlightNumber + " on " + flight.Date + " already exists")
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		transaction.Rollback()
		return model.FlightInstance{}, result.Error
	}

	result = transaction.Create(&flight)
	if result.Error != nil {
		return model.FlightInstance{}, result.Error
	}

	result = transaction.Commit()
	if result.Error != nil {
		return model.FlightInstance{}, result.Error
	}

	return flight, nil
}

func (flightDAO *FlightDAO) UpdateFlight(flight model.FlightInstance) (model.FlightInstance, error) {
	if err := internals.ValidateFlightTimes(flight.Date, flight.ScheduledDepartureTime, flight.ScheduledArrivalTime); err != nil {
		return model.FlightInstance{}, err
	}

	// create transaction
	transaction := flightDAO.db.Begin()
	if transaction.Error != nil {
		return model.FlightInstance{}, transaction.Error
	}

	defer func() {
		if r := recover(); r != nil {
			transaction.Rollback()
			panic(r)
		} else if transaction.Error != nil {
			transaction.Rollback()
		}
	}()

	var existing model.FlightInstance
	result := transaction.Where("flight_number = ? AND flight_date = ?", flight.FlightNumber, flight.Date).First(&existing)
	if result.Error != nil {
		transaction.Rollback()
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.FlightInstance{}, model.NewNotFoundError("flight " + flight.FlightNumber + " on " + flight.Date + " not found")
		}
		return model.FlightInstance{}, result.Error
	}

	if err := validateFlightReferences(transaction, flight); err != nil {
		transaction.Rollback()
		return model.FlightInstance{}, err
	}

	result = transaction.Save(&flight)
	if result.Error != nil {
		return model.FlightInstance{}, result.Error
	}

	result = transaction.Commit()
	if result.Error != nil {
		return model.FlightInstance{}, result.Error
	}

	return flight, nil
}

// DeleteFlight removes the flight and, in the same transaction, its crew
// assignment rows.
func (flightDAO *FlightDAO) DeleteFlight(flightNumber, date string) error {
	// create transaction
	transaction := flightDAO.db.Begin()
	if transaction.Error != nil {
		return transaction.Error
	}

	defer func() {
		if r := recover(); r != nil {
			transaction.Rollback()
			panic(r)
		} else if transaction.Error != nil {
			transaction.Rollback()
		}
	}()

	result := transaction.Where("flight_number = ? AND flight_date = ?", flightNumber, date).Delete(&model.CrewAssignmentMember{})
	if result.Error != nil {
		return result.Error
	}

	result = transaction.Where("flight_number = ? AND flight_date = ?", flightNumber, date).Delete(&model.FlightInstance{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// manually rollback
		transaction.Rollback()
		return model.NewNotFoundError("flight " + flightNumber + " on " + date + " not found")
	}

	result = transaction.Commit()
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (flightDAO *FlightDAO) GetFlightByKey(flightNumber, date string) (model.FlightInstance, error) {
	var flight model.FlightInstance
	result := flightDAO.db.Where("flight_number = ? AND flight_date = ?", flightNumber, date).First(&flight)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.FlightInstance{}, model.NewNotFoundError("flight " + flightNumber + " on " + date + " not found")
		}
		return model.FlightInstance{}, result.Error
	}
	return flight, nil
}

func (flightDAO *FlightDAO) GetFlights() ([]model.FlightInstance, error) {
	var flights []model.FlightInstance
	result := flightDAO.db.Find(&flights)
	return flights, result.Error
}

// GetFlightsByCrewEmail returns every flight the given crew member is
// rostered on, in any role.
func (flightDAO *FlightDAO) GetFlightsByCrewEmail(email string) ([]model.FlightInstance, error) {
	var members []model.CrewAssignmentMember
	result := flightDAO.db.Where("email = ?", email).Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}

	var flights []model.FlightInstance
	for _, member := range members {
		flight, err := flightDAO.GetFlightByKey(member.FlightNumber, member.Date)
		if err != nil {
			return nil, err
		}
		flights = append(flights, flight)
	}

	return flights, nil
}
