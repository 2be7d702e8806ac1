package db

import (
	"errors"

	"gorm.io/gorm"

	"airline-ops-server/internals"
	"airline-ops-server/model"
)

type CrewDAO struct {
	db *gorm.DB
}

func NewCrewDAO(db *gorm.DB) *CrewDAO {
	return &CrewDAO{db: db}
}

func (crewDAO *CrewDAO) CreateCrewMember(member model.CrewMember) (model.CrewMember, error) {
	// check unique email
	var existing model.CrewMember
	result := crewDAO.db.Where("email = ?", member.Email).First(&existing)
	if result.Error == nil {
		return model.CrewMember{}, model.NewConflictError("crew member " + member.Email + " already exists")
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return model.CrewMember{}, result.Error
	}

	result = crewDAO.db.Create(&member)
	if result.Error != nil {
		return model.CrewMember{}, result.Error
	}

	return member, nil
}

func (crewDAO *CrewDAO) GetCrewMembers() ([]model.CrewMember, error) {
	var members []model.CrewMember
	result := crewDAO.db.Find(&members)
	return members, result.Error
}

func (crewDAO *CrewDAO) GetCrewMemberByEmail(email string) (model.CrewMember, error) {
	var member model.CrewMember
	result := crewDAO.db.Where("email = ?", email).First(&member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.CrewMember{}, model.NewNotFoundError("crew member " + email + " not found")
		}
		return model.CrewMember{}, result.Error
	}
	return member, nil
}

// resolveCrewMember loads a roster member inside the assignment transaction.
// An unknown email is a validation failure of the submitted roster, not a
// missing resource.
func resolveCrewMember(transaction *gorm.DB, email string) (model.CrewMember, error) {
	var member model.CrewMember
	result := transaction.Where("email = ?", email).First(&member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.CrewMember{}, model.NewValidationError("crew member " + email + " does not exist")
		}
		return model.CrewMember{}, result.Error
	}
	return member, nil
}

// AssignCrew validates and stores the full roster for a flight, replacing
// any existing assignment wholesale. The same operation serves first
// assignment and later updates.
func (crewDAO *CrewDAO) AssignCrew(flightNumber, date, pilotEmail, coPilotEmail string, cabinCrewEmails []string) (model.CrewAssignmentDetails, error) {
	// create transaction
	transaction := crewDAO.db.Begin()
	if transaction.Error != nil {
		return model.CrewAssignmentDetails{}, transaction.Error
	}

	defer func() {
		if r := recover(); r != nil {
			transaction.Rollback()
			panic(r)
		} else if transaction.Error != nil {
			transaction.Rollback()
		}
	}()

	// the flight must exist
	var flight model.FlightInstance
	result := transaction.Where("flight_number = ? AND flight_date = ?", flightNumber, date).First(&flight)
	if result.Error != nil {
		transaction.Rollback()
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.CrewAssignmentDetails{}, model.NewNotFoundError("flight " + flightNumber + " on " + date + " not found")
		}
		return model.CrewAssignmentDetails{}, result.Error
	}

	// resolve the roster against the crew registry
	pilot, err := resolveCrewMember(transaction, pilotEmail)
	if err != nil {
		transaction.Rollback()
		return model.CrewAssignmentDetails{}, err
	}
	coPilot, err := resolveCrewMember(transaction, coPilotEmail)
	if err != nil {
		transaction.Rollback()
		return model.CrewAssignmentDetails{}, err
	}
	var cabinCrew []model.CrewMember
	for _, email := range cabinCrewEmails {
		member, err := resolveCrewMember(transaction, email)
		if err != nil {
			transaction.Rollback()
			return model.CrewAssignmentDetails{}, err
		}
		cabinCrew = append(cabinCrew, member)
	}

	if err := internals.ValidateCrewComposition(pilot, coPilot, cabinCrew); err != nil {
		transaction.Rollback()
		return model.CrewAssignmentDetails{}, err
	}

	// replace any previous assignment
	result = transaction.Where("flight_number = ? AND flight_date = ?", flightNumber, date).Delete(&model.CrewAssignmentMember{})
	if result.Error != nil {
		return model.CrewAssignmentDetails{}, result.Error
	}

	rows := []model.CrewAssignmentMember{
		{FlightNumber: flightNumber, Date: date, Email: pilot.Email, Role: model.CrewRolePilot},
		{FlightNumber: flightNumber, Date: date, Email: coPilot.Email, Role: model.CrewRoleCoPilot},
	}
	for _, member := range cabinCrew {
		rows = append(rows, model.CrewAssignmentMember{
			FlightNumber: flightNumber, Date: date, Email: member.Email, Role: model.CrewRoleCabin,
		})
	}
	for i := range rows {
		result = transaction.Create(&rows[i])
		if result.Error != nil {
			return model.CrewAssignmentDetails{}, result.Error
		}
	}

	result = transaction.Commit()
	if result.Error != nil {
		return model.CrewAssignmentDetails{}, result.Error
	}

	return model.CrewAssignmentDetails{
		FlightNumber: flightNumber,
		Date:         date,
		Pilot:        pilot,
		CoPilot:      coPilot,
		CabinCrew:    cabinCrew,
	}, nil
}

// GetCrewAssignment returns the roster of a flight. "No crew assigned yet"
// is reported as a NotFoundError, distinct from an error state.
func (crewDAO *CrewDAO) GetCrewAssignment(flightNumber, date string) (model.CrewAssignmentDetails, error) {
	var rows []model.CrewAssignmentMember
	result := crewDAO.db.Where("flight_number = ? AND flight_date = ?", flightNumber, date).Find(&rows)
	if result.Error != nil {
		return model.CrewAssignmentDetails{}, result.Error
	}
	if len(rows) == 0 {
		return model.CrewAssignmentDetails{}, model.NewNotFoundError("no crew assignment for flight " + flightNumber + " on " + date)
	}

	details := model.CrewAssignmentDetails{
		FlightNumber: flightNumber,
		Date:         date,
	}
	for _, row := range rows {
		member, err := crewDAO.GetCrewMemberByEmail(row.Email)
		if err != nil {
			return model.CrewAssignmentDetails{}, err
		}
		switch row.Role {
		case model.CrewRolePilot:
			details.Pilot = member
		case model.CrewRoleCoPilot:
			details.CoPilot = member
		case model.CrewRoleCabin:
			details.CabinCrew = append(details.CabinCrew, member)
		}
	}

	return details, nil
}
