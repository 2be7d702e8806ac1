package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline-ops-server/model"
)

func TestCreateAircraft_Invalid(t *testing.T) {
	gdb := setupTestDB(t)
	seedReference(t, gdb)

	aircraftDAO := NewAircraftDAO(gdb)

	_, err := aircraftDAO.CreateAircraft(model.Aircraft{
		RegistrationNumber: "N200CD", Company: "Airbus", Model: "A320",
		Capacity: 0, Status: model.AircraftStatusActive,
	})
	assert.IsType(t, &model.ValidationError{}, err)

	_, err = aircraftDAO.CreateAircraft(model.Aircraft{
		RegistrationNumber: "N200CD", Company: "Airbus", Model: "A320",
		Capacity: 150, Status: "grounded",
	})
	assert.IsType(t, &model.ValidationError{}, err)

	// seeded registration is taken
	_, err = aircraftDAO.CreateAircraft(model.Aircraft{
		RegistrationNumber: "N123AB", Company: "Boeing", Model: "B737",
		Capacity: 180, Status: model.AircraftStatusActive,
	})
	assert.IsType(t, &model.ConflictError{}, err)
}

func TestUpdateAircraft_StatusTransitions(t *testing.T) {
	gdb := setupTestDB(t)
	seedReference(t, gdb)

	aircraftDAO := NewAircraftDAO(gdb)

	// status moves freely among the three values
	for _, status := range []string{
		model.AircraftStatusMaintenance,
		model.AircraftStatusRetired,
		model.AircraftStatusActive,
	} {
		updated, err := aircraftDAO.UpdateAircraft(model.Aircraft{
			RegistrationNumber: "N123AB", Company: "Boeing", Model: "B737",
			Capacity: 180, Status: status,
		})
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestUpdateAircraft_NotFound(t *testing.T) {
	gdb := setupTestDB(t)

	aircraftDAO := NewAircraftDAO(gdb)
	_, err := aircraftDAO.UpdateAircraft(model.Aircraft{
		RegistrationNumber: "N999ZZ", Company: "Boeing", Model: "B737",
		Capacity: 180, Status: model.AircraftStatusActive,
	})
	assert.Error(t, err)
	assert.IsType(t, &model.NotFoundError{}, err)
}

func TestDeleteAircraft(t *testing.T) {
	gdb := setupTestDB(t)
	seedReference(t, gdb)

	aircraftDAO := NewAircraftDAO(gdb)
	err := aircraftDAO.DeleteAircraft("N123AB")
	require.NoError(t, err)

	_, err = aircraftDAO.GetAircraftByRegistration("N123AB")
	assert.IsType(t, &model.NotFoundError{}, err)

	err = aircraftDAO.DeleteAircraft("N123AB")
	assert.IsType(t, &model.NotFoundError{}, err)
}

func TestDeleteAircraft_ReferencedByFlight(t *testing.T) {
	gdb := setupTestDB(t)
	route := seedReference(t, gdb)

	flightDAO := NewFlightDAO(gdb)
	scheduleTestFlight(t, flightDAO, route.RouteID)

	// the aircraft is referenced by a scheduled flight, deletion is refused
	aircraftDAO := NewAircraftDAO(gdb)
	err := aircraftDAO.DeleteAircraft("N123AB")
	assert.Error(t, err)
	assert.IsType(t, &model.ConflictError{}, err)

	// after the flight is gone the aircraft can be deleted
	err = flightDAO.DeleteFlight("UA100", "2030-06-01")
	require.NoError(t, err)
	err = aircraftDAO.DeleteAircraft("N123AB")
	assert.NoError(t, err)
}
