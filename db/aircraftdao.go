package db

import (
	"errors"

	"gorm.io/gorm"

	"airline-ops-server/model"
)

type AircraftDAO struct {
	db *gorm.DB
}

func NewAircraftDAO(db *gorm.DB) *AircraftDAO {
	return &AircraftDAO{db: db}
}

func validateAircraftFields(aircraft model.Aircraft) error {
	if aircraft.Capacity <= 0 {
		return model.NewValidationError("aircraft capacity must be positive")
	}
	if !model.IsValidAircraftStatus(aircraft.Status) {
		return model.NewValidationError("invalid aircraft status: " + aircraft.Status)
	}
	return nil
}

func (aircraftDAO *AircraftDAO) CreateAircraft(aircraft model.Aircraft) (model.Aircraft, error) {
	if err := validateAircraftFields(aircraft); err != nil {
		return model.Aircraft{}, err
	}

	// check unique registration
	var existing model.Aircraft
	result := aircraftDAO.db.Where("registration_number = ?", aircraft.RegistrationNumber).First(&existing)
	if result.Error == nil {
		return model.Aircraft{}, model.NewConflictError("aircraft " + aircraft.RegistrationNumber + " already exists")
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return model.Aircraft{}, result.Error
	}

	result = aircraftDAO.db.Create(&aircraft)
	if result.Error != nil {
		return model.Aircraft{}, result.Error
	}

	return aircraft, nil
}

func (aircraftDAO *AircraftDAO) GetAllAircraft() ([]model.Aircraft, error) {
	var aircraft []model.Aircraft
	result := aircraftDAO.db.Find(&aircraft)
	return aircraft, result.Error
}

func (aircraftDAO *AircraftDAO) GetAircraftByRegistration(registration string) (model.Aircraft, error) {
	var aircraft model.Aircraft
	result := aircraftDAO.db.Where("registration_number = ?", registration).First(&aircraft)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Aircraft{}, model.NewNotFoundError("aircraft " + registration + " not found")
		}
		return model.Aircraft{}, result.Error
	}
	return aircraft, nil
}

func (aircraftDAO *AircraftDAO) UpdateAircraft(aircraft model.Aircraft) (model.Aircraft, error) {
	if err := validateAircraftFields(aircraft); err != nil {
		return model.Aircraft{}, err
	}

	// must already exist, update is not upsert
	_, err := aircraftDAO.GetAircraftByRegistration(aircraft.RegistrationNumber)
	if err != nil {
		return model.Aircraft{}, err
	}

	result := aircraftDAO.db.Save(&aircraft)
	if result.Error != nil {
		return model.Aircraft{}, result.Error
	}

	return aircraft, nil
}

// DeleteAircraft refuses to delete an aircraft that scheduled flights still
// reference; the aircraft should be retired instead.
func (aircraftDAO *AircraftDAO) DeleteAircraft(registration string) error {
	_, err := aircraftDAO.GetAircraftByRegistration(registration)
	if err != nil {
		return err
	}

	var flightCount int64
	result := aircraftDAO.db.Model(&model.FlightInstance{}).
		Where("aircraft_registration = ?", registration).
		Count(&flightCount)
	if result.Error != nil {
		return result.Error
	}
	if flightCount > 0 {
		return model.NewConflictError("aircraft " + registration + " is referenced by scheduled flights")
	}

	result = aircraftDAO.db.Where("registration_number = ?", registration).Delete(&model.Aircraft{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.NewNotFoundError("aircraft " + registration + " not found")
	}

	return nil
}
