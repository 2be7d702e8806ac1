package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline-ops-server/model"
)

func TestAddPart(t *testing.T) {
	gdb := setupTestDB(t)
	seedReference(t, gdb)

	partDAO := NewPartDAO(gdb)
	part, err := partDAO.AddPart(model.Part{
		AircraftRegistration: "N123AB",
		PartNumber:           "PN-001",
		Manufacturer:         "CFM",
		Model:                "LEAP-1B",
		ManufacturingDate:    "2024-03-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "PN-001", part.PartNumber)

	parts, err := partDAO.GetPartsByAircraft("N123AB")
	require.NoError(t, err)
	require.Len(t, parts, 1)
}

func TestAddPart_DuplicatePerAircraft(t *testing.T) {
	gdb := setupTestDB(t)
	seedReference(t, gdb)

	partDAO := NewPartDAO(gdb)
	_, err := partDAO.AddPart(model.Part{
		AircraftRegistration: "N123AB",
		PartNumber:           "PN-001",
		Manufacturer:         "CFM",
		Model:                "LEAP-1B",
	})
	require.NoError(t, err)

	_, err = partDAO.AddPart(model.Part{
		AircraftRegistration: "N123AB",
		PartNumber:           "PN-001",
		Manufacturer:         "CFM",
		Model:                "LEAP-1B",
	})
	assert.Error(t, err)
	assert.IsType(t, &model.ConflictError{}, err)
}

func TestAddPart_UnknownAircraft(t *testing.T) {
	gdb := setupTestDB(t)
	seedReference(t, gdb)

	partDAO := NewPartDAO(gdb)
	_, err := partDAO.AddPart(model.Part{
		AircraftRegistration: "N999ZZ",
		PartNumber:           "PN-001",
	})
	assert.Error(t, err)
	assert.IsType(t, &model.ValidationError{}, err)
}

func TestGetPartsByJob_SharedAcrossJobs(t *testing.T) {
	gdb := setupTestDB(t)
	seedReference(t, gdb)

	maintenanceDAO := NewMaintenanceDAO(gdb)
	first, err := maintenanceDAO.CreateJob("N123AB", model.JobTypeRepair, "")
	require.NoError(t, err)
	second, err := maintenanceDAO.CreateJob("N123AB", model.JobTypeInspection, "")
	require.NoError(t, err)

	// record a part while the first job is open
	partDAO := NewPartDAO(gdb)
	_, err = partDAO.AddPart(model.Part{
		AircraftRegistration: "N123AB",
		PartNumber:           "PN-001",
		Manufacturer:         "CFM",
		Model:                "LEAP-1B",
	})
	require.NoError(t, err)

	// the part belongs to the aircraft, so both jobs see it
	parts, err := partDAO.GetPartsByJob(first.JobID)
	require.NoError(t, err)
	assert.Len(t, parts, 1)

	parts, err = partDAO.GetPartsByJob(second.JobID)
	require.NoError(t, err)
	assert.Len(t, parts, 1)
}

func TestGetPartsByJob_NotFound(t *testing.T) {
	gdb := setupTestDB(t)
	seedReference(t, gdb)

	partDAO := NewPartDAO(gdb)
	_, err := partDAO.GetPartsByJob(99999)
	assert.Error(t, err)
	assert.IsType(t, &model.NotFoundError{}, err)
}
