package db

import (
	"errors"

	"gorm.io/gorm"

	"airline-ops-server/model"
)

type PartDAO struct {
	db *gorm.DB
}

func NewPartDAO(db *gorm.DB) *PartDAO {
	return &PartDAO{db: db}
}

func (partDAO *PartDAO) AddPart(part model.Part) (model.Part, error) {
	if part.PartNumber == "" {
		return model.Part{}, model.NewValidationError("part number is required")
	}

	aircraftDAO := NewAircraftDAO(partDAO.db)
	_, err := aircraftDAO.GetAircraftByRegistration(part.AircraftRegistration)
	if err != nil {
		var notFound *model.NotFoundError
		if errors.As(err, &notFound) {
			return model.Part{}, model.NewValidationError("aircraft " + part.AircraftRegistration + " does not exist")
		}
		return model.Part{}, err
	}

	// part numbers are unique per aircraft
	var existing model.Part
	result := partDAO.db.Where("aircraft_registration = ? AND part_number = ?", part.AircraftRegistration, part.PartNumber).First(&existing)
	if result.Error == nil {
		return model.Part{}, model.NewConflictError("part " + part.PartNumber + " already exists for aircraft " + part.AircraftRegistration)
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return model.Part{}, result.Error
	}

	result = partDAO.db.Create(&part)
	if result.Error != nil {
		return model.Part{}, result.Error
	}

	return part, nil
}

func (partDAO *PartDAO) GetPartsByAircraft(registration string) ([]model.Part, error) {
	aircraftDAO := NewAircraftDAO(partDAO.db)
	_, err := aircraftDAO.GetAircraftByRegistration(registration)
	if err != nil {
		return nil, err
	}

	var parts []model.Part
	result := partDAO.db.Where("aircraft_registration = ?", registration).Find(&parts)
	return parts, result.Error
}

// GetPartsByJob lists the parts of the job's aircraft: parts belong to the
// aircraft, so every job on it sees the same list.
func (partDAO *PartDAO) GetPartsByJob(jobID int) ([]model.Part, error) {
	maintenanceDAO := NewMaintenanceDAO(partDAO.db)
	job, err := maintenanceDAO.GetJobById(jobID)
	if err != nil {
		return nil, err
	}

	return partDAO.GetPartsByAircraft(job.AircraftRegistration)
}
